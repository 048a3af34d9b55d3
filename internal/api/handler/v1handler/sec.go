package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"recap/internal/api/specs/v1specs"
	"recap/internal/config"
	"recap/pkg/controller"
	"recap/pkg/logger"
	"recap/pkg/serrors"

	"github.com/ogen-go/ogen/middleware"
	"go.uber.org/zap"
)

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with. Empty
	// disables authentication.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

type SecHandler struct {
	key *rsa.PublicKey
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := controller.ParsePublicKey(options.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("could not load jwt public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

// Enabled reports whether tokens are verified at all.
func (s SecHandler) Enabled() bool {
	return s.key != nil
}

// HandleBearerAuth verifies an RS256 token and stores its subject in ctx.
// Without a key every token is accepted.
func (s SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	if s.key == nil {
		return ctx, nil
	}

	claims, err := controller.VerifyToken(s.key, t.Token)
	if err != nil {
		logger.Debug(ctx, "rejected bearer token", zap.String("operation", operationName), zap.Error(err))

		return ctx, err //nolint: wrapcheck
	}

	ctx = context.WithValue(ctx, controller.SubjectKey, claims.Subject)

	return logger.WithFields(ctx, zap.String("subject", claims.Subject)), nil
}

// RequireToken rejects operations that reached the handler without a verified
// token while authentication is enabled. Requests without an Authorization
// header never reach HandleBearerAuth.
func (s SecHandler) RequireToken() middleware.Middleware {
	return func(req middleware.Request, next middleware.Next) (middleware.Response, error) {
		if s.key != nil && controller.Subject(req.Context) == "" {
			return middleware.Response{}, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
		}

		return next(req)
	}
}
