package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	accessSecret  = []byte("access-secret")
	refreshSecret = []byte("refresh-secret")
)

func TestAccessToken_RoundTrip(t *testing.T) {
	tok, err := NewAccessToken(7, "user1@shop.com", "user", time.Now(), time.Minute, accessSecret)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(tok, accessSecret)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "user1@shop.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestAccessToken_Rejected(t *testing.T) {
	expired, err := NewAccessToken(1, "a@b.c", "user", time.Now().Add(-time.Hour), time.Minute, accessSecret)
	require.NoError(t, err)
	refresh, err := NewRefreshToken(1, "a@b.c", "user", "jti", time.Now(), time.Hour, refreshSecret)
	require.NoError(t, err)
	refreshSameSecret, err := NewRefreshToken(1, "a@b.c", "user", "jti", time.Now(), 7*24*time.Hour, accessSecret)
	require.NoError(t, err)
	otherSecret, err := NewAccessToken(1, "a@b.c", "user", time.Now(), time.Minute, []byte("other"))
	require.NoError(t, err)
	noSubject, err := sign(AccessClaims{Role: "user", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}, accessSecret)
	require.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, AccessClaims{
		RegisteredClaims: registered(1, "", time.Now(), time.Minute),
	}).SignedString(accessSecret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"refresh token as access", refresh},
		{"refresh token signed with the access secret", refreshSameSecret},
		{"wrong secret", otherSecret},
		{"no subject", noSubject},
		{"wrong algorithm", hs512},
		{"garbage", "not.a.jwt"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := AccessClaimsFromToken(tt.token, accessSecret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	tok, err := NewRefreshToken(3, "admin@shop.com", "admin", "jti-1", time.Now(), time.Hour, refreshSecret)
	require.NoError(t, err)

	claims, err := RefreshClaimsFromToken(tok, refreshSecret)
	require.NoError(t, err)
	assert.Equal(t, "jti-1", claims.ID)
	assert.Equal(t, "admin", claims.Role)

	_, err = RefreshClaimsFromToken(tok, accessSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	tok, err := NewAccessToken(3, "a@b.c", "user", time.Now(), time.Hour, refreshSecret)
	require.NoError(t, err)

	_, err = RefreshClaimsFromToken(tok, refreshSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDigest(t *testing.T) {
	assert.Len(t, Digest("abc"), 64)
	assert.Equal(t, Digest("abc"), Digest("abc"))
	assert.NotEqual(t, Digest("abc"), Digest("abd"))
}
