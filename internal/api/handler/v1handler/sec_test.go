package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"recap/internal/api/handler/v1handler"
	"recap/internal/api/specs/v1specs"
	"recap/internal/config"
	"recap/pkg/controller"
	"recap/pkg/serrors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ogen-go/ogen/middleware"
	"github.com/stretchr/testify/require"
)

// genRSAKeys returns a private key and its PEM encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWT(tb testing.TB, method jwt.SigningMethod, key any, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	})
	signed, err := token.SignedString(key)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestNewSecHandlerOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.PublicKey = "pem"
	require.Equal(t, "pem", v1handler.NewSecHandlerOptions(cfg).PublicKey)
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	require.True(t, sh.Enabled())

	now := time.Now()
	tkn := signJWT(t, jwt.SigningMethodRS256, priv, "extension", now, now.Add(time.Hour))

	ctx, err := sh.HandleBearerAuth(context.Background(), "ListCourts", v1specs.BearerAuth{Token: tkn})
	require.NoError(t, err)
	require.Equal(t, "extension", controller.Subject(ctx))
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	privOther, _ := genRSAKeys(t)
	now := time.Now()

	cases := map[string]string{
		"invalid signature": signJWT(t, jwt.SigningMethodRS256, privOther, "extension", now, now.Add(time.Hour)),
		"expired":           signJWT(t, jwt.SigningMethodRS256, priv, "extension", now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"wrong algorithm":   signJWT(t, jwt.SigningMethodHS256, []byte("secret"), "extension", now, now.Add(time.Hour)),
		"garbage":           "not-a-token",
	}

	for name, tkn := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), "ListCourts", v1specs.BearerAuth{Token: tkn})
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestHandleBearerAuth_Disabled(t *testing.T) {
	sh := newSecHandlerForTest(t, "")
	require.False(t, sh.Enabled())

	ctx, err := sh.HandleBearerAuth(context.Background(), "ListCourts", v1specs.BearerAuth{Token: "anything"})
	require.NoError(t, err)
	require.Empty(t, controller.Subject(ctx))
}

func TestRequireToken(t *testing.T) {
	next := func(req middleware.Request) (middleware.Response, error) {
		return middleware.Response{Type: controller.Subject(req.Context)}, nil
	}

	_, pubPEM := genRSAKeys(t)
	mw := newSecHandlerForTest(t, pubPEM).RequireToken()

	_, err := mw(middleware.Request{Context: context.Background()}, next)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	ctx := context.WithValue(context.Background(), controller.SubjectKey, "extension")
	res, err := mw(middleware.Request{Context: ctx}, next)
	require.NoError(t, err)
	require.Equal(t, "extension", res.Type)

	open := newSecHandlerForTest(t, "").RequireToken()
	_, err = open(middleware.Request{Context: context.Background()}, next)
	require.NoError(t, err)
}
