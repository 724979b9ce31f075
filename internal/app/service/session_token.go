package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func signSessionToken(secret []byte, session domain.Session) (string, error) {
	claims := sessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Email,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// parseSessionToken checks signature and expiry and returns the session id and email it carries.
func parseSessionToken(secret []byte, raw string, now func() time.Time) (string, string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", fmt.Errorf("%w: session expired", domain.ErrUnauthorized)
		}
		return "", "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.SessionID == "" || claims.Subject == "" {
		return "", "", domain.ErrUnauthorized
	}
	return claims.SessionID, claims.Subject, nil
}
