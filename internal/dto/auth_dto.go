package dto

type LoginRequest struct {
	Email    string `json:"cus_email" validate:"required,email"`
	Password string `json:"cus_password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"cus_email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"reset_token" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,min=8"`
}

type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Customer     CustomerResponse `json:"customer"`
}

// ForgotPasswordResponse returns the reset token directly; delivery by
// email is out of scope.
type ForgotPasswordResponse struct {
	ResetToken string `json:"reset_token"`
	ExpiresAt  string `json:"expires_at"`
}
