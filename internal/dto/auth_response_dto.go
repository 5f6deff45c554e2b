package dto

// LoginRequest defines the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccountID string `json:"accountID"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // Seconds until expiry
}
