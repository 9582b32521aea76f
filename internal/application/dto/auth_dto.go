package dto

import "github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"

// LoginRequest credenciales de POST /super-admin/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse data de la respuesta de login.
type LoginResponse struct {
	User  entity.User `json:"user"`
	Token string      `json:"token" validate:"required"`
}

// UpdateProfileRequest entrada de PUT /super-admin/profile.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

// UpdatePasswordRequest entrada de PUT /super-admin/password.
type UpdatePasswordRequest struct {
	CurrentPassword      string `json:"current_password" validate:"required"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// AvatarResponse data de POST /super-admin/avatar.
type AvatarResponse struct {
	AvatarURL string `json:"avatar_url" validate:"required"`
}
