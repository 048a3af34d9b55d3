package controller_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"recap/pkg/controller"
	"recap/pkg/serrors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return key
}

func sign(t *testing.T, key *rsa.PrivateKey, subject string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestParsePublicKey(t *testing.T) {
	key, err := controller.ParsePublicKey("")
	require.NoError(t, err)
	require.Nil(t, key)

	_, err = controller.ParsePublicKey("not a pem")
	require.Error(t, err)

	priv := newKey(t)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pemKey := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	key, err = controller.ParsePublicKey(pemKey)
	require.NoError(t, err)
	require.True(t, priv.PublicKey.Equal(key))
}

func TestVerifyToken(t *testing.T) {
	priv := newKey(t)
	other := newKey(t)

	claims, err := controller.VerifyToken(&priv.PublicKey, sign(t, priv, "ext-1", time.Hour))
	require.NoError(t, err)
	require.Equal(t, "ext-1", claims.Subject)

	_, err = controller.VerifyToken(&priv.PublicKey, sign(t, priv, "ext-1", -time.Hour))
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = controller.VerifyToken(&priv.PublicKey, sign(t, other, "ext-1", time.Hour))
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestSubject(t *testing.T) {
	require.Empty(t, controller.Subject(context.Background()))

	ctx := context.WithValue(context.Background(), controller.SubjectKey, "ext-1")
	require.Equal(t, "ext-1", controller.Subject(ctx))
}

func TestVerifyToken_UnauthorizedKind(t *testing.T) {
	priv := newKey(t)
	_, err := controller.VerifyToken(&priv.PublicKey, "garbage")
	require.True(t, errors.Is(err, serrors.ErrUnauthorized))
}
