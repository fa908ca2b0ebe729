package domain

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the caller's authentication state. The zero value is an
// anonymous session.
type Session struct {
	Token    string
	UserID   string
	Username string
}

// Anonymous reports whether the session carries no credential at all.
func (s Session) Anonymous() bool {
	return strings.TrimSpace(s.Token) == ""
}

// IsActive reports whether the session carries a usable credential. A
// token with a parseable exp claim in the past is treated the same as an
// absent token, so mutations can short-circuit without a round trip. The
// backend remains the authority on token validity.
func (s Session) IsActive() bool {
	if s.Anonymous() {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		// Opaque tokens are passed through untouched.
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return time.Now().Before(exp.Time)
}
