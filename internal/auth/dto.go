package auth

import "github.com/bhamfoods/invoicetrack-backend/internal/users"

// SessionResponse is returned after a session is established or refreshed.
type SessionResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         *users.UserDTO  `json:"user,omitempty"`
}

// RefreshRequest carries the expired access token plus the refresh secret.
type RefreshRequest struct {
	AccessToken  string
	RefreshToken string
}
