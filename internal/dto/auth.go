package dto

// LoginRequest carries username/password credentials for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest carries a password change for an existing account.
type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// GoogleCallbackRequest carries the authorization code posted back by the
// frontend after the Google consent screen.
type GoogleCallbackRequest struct {
	Code string `json:"code" binding:"required"`
}
