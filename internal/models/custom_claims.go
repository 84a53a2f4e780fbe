package models

import "github.com/golang-jwt/jwt/v5"

const TokenTypeAccess = "access"

// IdentityClaims are the claims carried by access tokens issued by the
// external identity provider.
type IdentityClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
