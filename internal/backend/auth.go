package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// AuthClient implements ports.AuthBackend against the upstream /auth surface.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// wireIdentity is the upstream user record. The upstream speaks camelCase;
// the domain type is deliberately decoupled from that contract.
type wireIdentity struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Avatar     string `json:"avatar"`
	IsVerified bool   `json:"isVerified"`
	FacilityID int64  `json:"facilityId"`
}

func (w wireIdentity) toDomain() (*domain.Identity, error) {
	role, err := domain.ParseRole(w.Role)
	if err != nil {
		return nil, fmt.Errorf("upstream identity: %w", err)
	}
	return &domain.Identity{
		ID:         w.ID,
		Email:      w.Email,
		Name:       w.Name,
		Phone:      w.Phone,
		Role:       role,
		Avatar:     w.Avatar,
		IsVerified: w.IsVerified,
		FacilityID: w.FacilityID,
	}, nil
}

type authEnvelope struct {
	User wireIdentity `json:"user"`
}

func (a *AuthClient) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	body := map[string]string{"email": email, "password": password}
	var envelope authEnvelope
	if err := a.c.postJSON(ctx, "/auth/login", body, &envelope); err != nil {
		return nil, err
	}
	return envelope.User.toDomain()
}

// Register forwards the multipart registration form, avatar included.
func (a *AuthClient) Register(ctx context.Context, input ports.RegisterInput) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"fullName": input.FullName,
		"email":    input.Email,
		"password": input.Password,
		"phone":    input.Phone,
		"role":     string(input.Role),
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("encode form: %w", err)
		}
	}

	if input.Avatar != nil {
		part, err := mw.CreateFormFile("avatar", input.AvatarName)
		if err != nil {
			return fmt.Errorf("encode form: %w", err)
		}
		if _, err := io.Copy(part, input.Avatar); err != nil {
			return fmt.Errorf("encode form: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("encode form: %w", err)
	}

	return a.c.doMultipart(ctx, "POST", "/auth/register", mw.FormDataContentType(), &buf, nil)
}

func (a *AuthClient) VerifyOTP(ctx context.Context, email, otp string) (*domain.Identity, error) {
	body := map[string]string{"email": email, "otp": otp}
	var envelope authEnvelope
	if err := a.c.postJSON(ctx, "/auth/verify-otp", body, &envelope); err != nil {
		return nil, err
	}
	return envelope.User.toDomain()
}

func (a *AuthClient) ResendOTP(ctx context.Context, email string) error {
	return a.c.postJSON(ctx, "/auth/resend-otp", map[string]string{"email": email}, nil)
}

func (a *AuthClient) Logout(ctx context.Context) error {
	return a.c.postJSON(ctx, "/auth/logout", nil, nil)
}
