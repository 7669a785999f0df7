package tokens

import (
	"time"
)

func NewRefreshToken(userID uint, email, role, jti string, now time.Time, ttl time.Duration, secret []byte) (string, error) {
	return sign(RefreshClaims{
		Type:             refreshType,
		Email:            email,
		Role:             role,
		RegisteredClaims: registered(userID, jti, now, ttl),
	}, secret)
}

func RefreshClaimsFromToken(tokenStr string, refreshSecret []byte) (*RefreshClaims, error) {
	var claims RefreshClaims
	if err := parse(tokenStr, &claims, refreshSecret); err != nil {
		return nil, err
	}
	if claims.Type != refreshType || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return &claims, nil
}
