package domain

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestSessionIsActive(t *testing.T) {
	cases := []struct {
		name    string
		session Session
		want    bool
	}{
		{
			name:    "anonymous",
			session: Session{},
			want:    false,
		},
		{
			name:    "whitespace_token",
			session: Session{Token: "   "},
			want:    false,
		},
		{
			name:    "opaque_token",
			session: Session{Token: "not-a-jwt"},
			want:    true,
		},
		{
			name:    "jwt_not_expired",
			session: Session{Token: signedToken(t, time.Now().Add(time.Hour))},
			want:    true,
		},
		{
			name:    "jwt_expired",
			session: Session{Token: signedToken(t, time.Now().Add(-time.Hour))},
			want:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.session.IsActive())
		})
	}
}
