package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// FacilityClient implements ports.FacilityBackend against /facility.
type FacilityClient struct {
	c *Client
}

func NewFacilityClient(c *Client) *FacilityClient {
	return &FacilityClient{c: c}
}

func (f *FacilityClient) UpdateDetails(ctx context.Context, input ports.FacilityDetailsInput) error {
	return f.c.putJSON(ctx, "/facility/details", input, nil)
}

// UploadPhotos streams facility photos and returns the stored URLs.
// filenames and photos are parallel slices.
func (f *FacilityClient) UploadPhotos(ctx context.Context, filenames []string, photos []io.Reader) ([]string, error) {
	if len(filenames) != len(photos) {
		return nil, fmt.Errorf("upload photos: %d names for %d files", len(filenames), len(photos))
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for i, photo := range photos {
		part, err := mw.CreateFormFile("photos", filenames[i])
		if err != nil {
			return nil, fmt.Errorf("encode form: %w", err)
		}
		if _, err := io.Copy(part, photo); err != nil {
			return nil, fmt.Errorf("encode form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}

	var resp struct {
		Photos []string `json:"photos"`
	}
	if err := f.c.doMultipart(ctx, "POST", "/facility/photos", mw.FormDataContentType(), &buf, &resp); err != nil {
		return nil, err
	}
	return resp.Photos, nil
}

func (f *FacilityClient) AddCourt(ctx context.Context, input ports.CourtInput) (*ports.Court, error) {
	var court ports.Court
	if err := f.c.postJSON(ctx, "/facility/courts", input, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (f *FacilityClient) UpdateCourt(ctx context.Context, courtID int64, input ports.CourtInput) (*ports.Court, error) {
	var court ports.Court
	if err := f.c.putJSON(ctx, fmt.Sprintf("/facility/courts/%d", courtID), input, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (f *FacilityClient) DeleteCourt(ctx context.Context, courtID int64) error {
	return f.c.deleteJSON(ctx, fmt.Sprintf("/facility/courts/%d", courtID), nil)
}

func (f *FacilityClient) AcceptBooking(ctx context.Context, bookingID int64) error {
	return f.c.putJSON(ctx, fmt.Sprintf("/facility/bookings/%d/accept", bookingID), nil, nil)
}

func (f *FacilityClient) RejectBooking(ctx context.Context, bookingID int64) error {
	return f.c.putJSON(ctx, fmt.Sprintf("/facility/bookings/%d/reject", bookingID), nil, nil)
}
