package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"enricher/pkg/logger"
	"enricher/pkg/serrors"

	"go.uber.org/zap"
)

// maxRequestBody caps JSON request bodies accepted by DecodeJSON.
const maxRequestBody = 1 << 20

// ErrorBody is the JSON body written by WriteError.
type ErrorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusCode maps the semantic kind of err to an HTTP status code.
func StatusCode(err error) int {
	switch serrors.KindOf(err) {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrUnprocessable:
		return http.StatusUnprocessableEntity
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// WriteError writes err as an ErrorBody. Errors without a client facing kind
// are logged and reported with a generic message.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status := StatusCode(err)
	body := ErrorBody{Code: "INTERNAL", Message: "internal server error"}
	if k := serrors.KindOf(err); k != nil && status != http.StatusInternalServerError {
		body.Code = k.Error()
		body.Message = err.Error()
	} else {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	WriteJSON(ctx, w, status, body)
}

// DecodeJSON decodes the JSON request body into v. Malformed bodies produce a
// serrors.ErrBadRequest error.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is empty")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
