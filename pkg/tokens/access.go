package tokens

import (
	"time"
)

func NewAccessToken(userID uint, email, role string, now time.Time, ttl time.Duration, secret []byte) (string, error) {
	return sign(AccessClaims{
		Email:            email,
		Role:             role,
		RegisteredClaims: registered(userID, "", now, ttl),
	}, secret)
}

func AccessClaimsFromToken(tokenStr string, accessSecret []byte) (*AccessClaims, error) {
	var claims AccessClaims
	if err := parse(tokenStr, &claims, accessSecret); err != nil {
		return nil, err
	}
	if claims.Type != "" {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return &claims, nil
}
