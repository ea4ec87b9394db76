package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// ProfileClient implements ports.ProfileBackend against /user.
type ProfileClient struct {
	c *Client
}

func NewProfileClient(c *Client) *ProfileClient {
	return &ProfileClient{c: c}
}

func (p *ProfileClient) Get(ctx context.Context) (*ports.Profile, error) {
	var profile ports.Profile
	if err := p.c.getJSON(ctx, "/user/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *ProfileClient) Update(ctx context.Context, input ports.UpdateProfileInput) (*ports.Profile, error) {
	var profile ports.Profile
	if err := p.c.putJSON(ctx, "/user/profile", input, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UploadAvatar streams the avatar file and returns the stored URL.
func (p *ProfileClient) UploadAvatar(ctx context.Context, filename string, avatar io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		return "", fmt.Errorf("encode form: %w", err)
	}
	if _, err := io.Copy(part, avatar); err != nil {
		return "", fmt.Errorf("encode form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("encode form: %w", err)
	}

	var resp struct {
		Avatar string `json:"avatar"`
	}
	if err := p.c.doMultipart(ctx, "POST", "/user/avatar", mw.FormDataContentType(), &buf, &resp); err != nil {
		return "", err
	}
	return resp.Avatar, nil
}
