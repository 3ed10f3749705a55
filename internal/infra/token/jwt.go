package token

import (
	"errors"
	"time"

	"storefront/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

// JWTIssuer signs HS256 access tokens carrying sub, role and tv (token version).
type JWTIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func NewJWTIssuer(secret string, accessTTL time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if accessTTL <= 0 {
		return nil, errors.New("access ttl must be positive")
	}
	return &JWTIssuer{secret: []byte(secret), accessTTL: accessTTL}, nil
}

func (i *JWTIssuer) Issue(userID string, role model.Role, tokenVersion int, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"tv":   tokenVersion,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
