package handler

import "github.com/Sonalgupta2005/game-time-go/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for acknowledgement-only successes.
type messageResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type otpRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp"   validate:"required,len=6"`
}

type resendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type sessionResponse struct {
	User *domain.Identity `json:"user"`
}

type adminLoginRequest struct {
	AdminID  string `json:"adminId"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

type adminAccessRequest struct {
	AccessKey string `json:"access_key" validate:"required"`
}
