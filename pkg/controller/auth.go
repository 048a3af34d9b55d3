package controller

import (
	"context"
	"crypto/rsa"
	"fmt"
	"recap/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// SubjectKey is the context key under which the verified token subject is stored.
	SubjectKey CtxKey = "Subject"
)

// ParsePublicKey parses a PEM encoded RSA public key. An empty string yields a
// nil key, which disables authentication.
func ParsePublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	if strings.TrimSpace(publicKeyPEM) == "" {
		return nil, nil //nolint: nilnil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return key, nil
}

// VerifyToken validates an RS256 token against key and returns its claims.
func VerifyToken(key *rsa.PublicKey, token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	return claims, nil
}

// Subject returns the verified token subject stored in ctx, or "".
func Subject(ctx context.Context) string {
	sub, _ := ctx.Value(SubjectKey).(string)

	return sub
}
