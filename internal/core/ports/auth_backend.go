package ports

import (
	"context"
	"io"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
)

// RegisterInput carries the multipart registration form. Avatar is optional.
type RegisterInput struct {
	FullName   string
	Email      string
	Password   string
	Phone      string
	Role       domain.Role
	Avatar     io.Reader // nil when no file was attached
	AvatarName string
}

// AuthBackend is the upstream authentication endpoint. Errors carry the
// upstream-supplied human-readable message; Logout failures are advisory.
type AuthBackend interface {
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	Register(ctx context.Context, input RegisterInput) error
	VerifyOTP(ctx context.Context, email, otp string) (*domain.Identity, error)
	ResendOTP(ctx context.Context, email string) error
	Logout(ctx context.Context) error
}
