package session

import (
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session"

// Store maps opaque session tokens to user ids. No expiry.
type Store interface {
	Set(token string, userID uint) error
	Get(token string) (uint, bool)
	Delete(token string) error
}

// NewToken returns a fresh opaque session token.
func NewToken() string {
	return uuid.NewString()
}
