package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims of a guest session token. The token only
// carries a display identity; holding one proves nothing about the holder.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}
