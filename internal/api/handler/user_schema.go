package handler

type updateProfileRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,min=7,max=20"`
}

type avatarResponse struct {
	Avatar string `json:"avatar"`
}
