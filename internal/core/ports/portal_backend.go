package ports

import (
	"context"
	"io"
	"time"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
)

// Venue is the upstream venue view consumed by the browsing pages.
type Venue struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location"`
	Sports      []string `json:"sports"`
	Amenities   []string `json:"amenities,omitempty"`
	Photos      []string `json:"photos,omitempty"`
	Rating      float64  `json:"rating"`
	Courts      []Court  `json:"courts,omitempty"`
}

// Court is a bookable unit inside a venue.
type Court struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Sport        string  `json:"sport"`
	PricePerHour float64 `json:"price_per_hour"`
}

// VenueSearch carries the optional search filters.
type VenueSearch struct {
	Sport    string
	Location string
	Date     string
}

// VenueBackend lists and searches venues upstream.
type VenueBackend interface {
	List(ctx context.Context) ([]Venue, error)
	Get(ctx context.Context, venueID int64) (*Venue, error)
	Search(ctx context.Context, q VenueSearch) ([]Venue, error)
}

// CreateBookingInput mirrors the booking form.
type CreateBookingInput struct {
	VenueID     int64   `json:"venueId"`
	CourtID     int64   `json:"courtId"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"timeSlot"`
	Duration    int     `json:"duration"`
	TotalAmount float64 `json:"totalAmount"`
}

// Booking is the upstream booking record.
type Booking struct {
	ID          int64     `json:"id"`
	VenueID     int64     `json:"venue_id"`
	VenueName   string    `json:"venue_name,omitempty"`
	CourtID     int64     `json:"court_id"`
	CourtName   string    `json:"court_name,omitempty"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	Duration    int       `json:"duration"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingBackend drives the booking form and the user's booking list.
type BookingBackend interface {
	Create(ctx context.Context, input CreateBookingInput) (*Booking, error)
	ListForUser(ctx context.Context) ([]Booking, error)
	Cancel(ctx context.Context, bookingID int64) error
	AvailableSlots(ctx context.Context, venueID, courtID int64, date string) ([]string, error)
}

// Profile is the account view behind /user/profile.
type Profile struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ProfileBackend reads and writes the signed-in user's profile.
type ProfileBackend interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, input UpdateProfileInput) (*Profile, error)
	UploadAvatar(ctx context.Context, filename string, avatar io.Reader) (string, error)
}

// CreateReviewInput mirrors the review form.
type CreateReviewInput struct {
	VenueID int64  `json:"venueId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Review is the upstream review record.
type Review struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewBackend submits and lists venue reviews.
type ReviewBackend interface {
	Create(ctx context.Context, input CreateReviewInput) (*Review, error)
	ListByVenue(ctx context.Context, venueID int64) ([]Review, error)
}

// FacilityDetailsInput carries the owner-editable facility fields.
type FacilityDetailsInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Amenities   []string `json:"amenities"`
	Sports      []string `json:"sports"`
}

// CourtInput carries the court create/update form.
type CourtInput struct {
	Name         string  `json:"name"`
	Sport        string  `json:"sport"`
	PricePerHour float64 `json:"pricePerHour"`
}

// FacilityBackend is the owner-dashboard surface.
type FacilityBackend interface {
	UpdateDetails(ctx context.Context, input FacilityDetailsInput) error
	UploadPhotos(ctx context.Context, filenames []string, photos []io.Reader) ([]string, error)
	AddCourt(ctx context.Context, input CourtInput) (*Court, error)
	UpdateCourt(ctx context.Context, courtID int64, input CourtInput) (*Court, error)
	DeleteCourt(ctx context.Context, courtID int64) error
	AcceptBooking(ctx context.Context, bookingID int64) error
	RejectBooking(ctx context.Context, bookingID int64) error
}

// AdminStats is the aggregate view on the admin dashboard.
type AdminStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalFacilities   int64 `json:"total_facilities"`
	TotalBookings     int64 `json:"total_bookings"`
	PendingFacilities int64 `json:"pending_facilities"`
}

// PendingFacility is a facility awaiting admin approval.
type PendingFacility struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerName string    `json:"owner_name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminUser is the account row in the admin user list.
type AdminUser struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Banned bool   `json:"banned"`
}

// AdminBackend is the admin-console surface. Login uses the admin identifier,
// not an email.
type AdminBackend interface {
	Login(ctx context.Context, adminID, password string) (*domain.Identity, error)
	Stats(ctx context.Context) (*AdminStats, error)
	PendingFacilities(ctx context.Context) ([]PendingFacility, error)
	ApproveFacility(ctx context.Context, facilityID int64, comments string) error
	RejectFacility(ctx context.Context, facilityID int64, comments string) error
	ListUsers(ctx context.Context) ([]AdminUser, error)
	BanUser(ctx context.Context, userID int64) error
	UnbanUser(ctx context.Context, userID int64) error
}
