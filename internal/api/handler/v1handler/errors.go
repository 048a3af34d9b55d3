package v1handler

import (
	"context"
	"errors"
	"net/http"
	"recap/internal/api/specs/v1specs"
	"recap/pkg/logger"
	"recap/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

func statusOf(kind serrors.Kind) int {
	switch kind {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func kindOf(status int) serrors.Kind {
	switch status {
	case http.StatusBadRequest:
		return serrors.ErrBadRequest
	case http.StatusUnauthorized:
		return serrors.ErrUnauthorized
	case http.StatusNotFound:
		return serrors.ErrNotFound
	case http.StatusServiceUnavailable:
		return serrors.ErrUnavailable
	default:
		return serrors.ErrInternal
	}
}

func defaultMessage(kind serrors.Kind) string {
	switch kind {
	case serrors.ErrBadRequest:
		return "bad request"
	case serrors.ErrUnauthorized:
		return "unauthorized"
	case serrors.ErrNotFound:
		return "resource not found"
	case serrors.ErrUnavailable:
		return "service unavailable"
	default:
		return "internal error"
	}
}

// NewError maps err to a status code and the {"code","message"} body. Only
// client errors expose their message; everything else is logged.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ServerErrorStatusCode {
	kind := serrors.KindOf(err)
	status := statusOf(kind)
	if status == http.StatusInternalServerError {
		kind = serrors.ErrInternal
	}

	message := defaultMessage(kind)
	var se *serrors.Error
	if status < http.StatusInternalServerError && errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &v1specs.ServerErrorStatusCode{
		StatusCode: status,
		Response: v1specs.ServerError{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

// ErrorHandler writes errors the generated server raises before a handler runs,
// such as undecodable bodies or rejected tokens, in the shape NewError uses.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	status := http.StatusInternalServerError
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		status = coded.Code()
	}
	kind := kindOf(status)

	message := defaultMessage(kind)
	var secErr *ogenerrors.SecurityError
	switch {
	case errors.As(err, &secErr):
		message = "invalid bearer token"
		w.Header().Set("WWW-Authenticate", "Bearer")
	case status == http.StatusBadRequest:
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	var e jx.Encoder
	res := v1specs.ServerError{Code: kind.Error(), Message: message}
	res.Encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
