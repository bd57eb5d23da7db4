package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenPayload captures the data available when minting an app JWT.
type AccessTokenPayload struct {
	UserID string
	JTI    string
}

// AccessTokenClaims represents the typed JWT issued to clients. UserID is the
// identity provider's subject; the jti doubles as the Redis session id.
type AccessTokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// IdentityClaims is the token minted by the external identity provider after
// it authenticates the user. This service verifies the signature and trusts
// the subject; it never authenticates credentials itself.
type IdentityClaims struct {
	Email           *string `json:"email,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	jwt.RegisteredClaims
}
