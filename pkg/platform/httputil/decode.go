package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	dErrors "cadastro/pkg/domain-errors"
)

// List query binding limits. Callers may ask for fewer rows but never more
// than MaxPageLimit per page.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 100
)

// DecodeJSON decodes a JSON request body into the target type.
// Returns the decoded value and true on success.
// On failure, writes an error response and returns nil, false.
//
// A body that is well-formed JSON but carries a wrong field type (string
// where a number belongs) is a validation failure; a body that is not JSON
// at all is a bad request.
//
// Usage:
//
//	req, ok := httputil.DecodeJSON[CreatePersonRequest](w, r, h.logger, ctx, requestID)
//	if !ok {
//	    return
//	}
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"error", err,
			"request_id", requestID,
		)
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			WriteError(w, dErrors.New(dErrors.CodeValidation, "field "+typeErr.Field+" has invalid type"))
			return nil, false
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	return &req, true
}

// Validatable is implemented by request types that support validation.
type Validatable interface {
	Validate() error
}

// Normalizable is implemented by request types that support normalization.
type Normalizable interface {
	Normalize()
}

// PrepareRequest normalizes and validates a request.
// This is a helper for the common pattern of request preparation.
func PrepareRequest(req any) error {
	if n, ok := req.(Normalizable); ok {
		n.Normalize()
	}
	if v, ok := req.(Validatable); ok {
		return v.Validate()
	}
	return nil
}

// DecodeAndPrepare combines JSON decoding with request preparation.
// It decodes the JSON body, then calls Normalize() and Validate() if the
// target type implements those interfaces.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	req, ok := DecodeJSON[T](w, r, logger, ctx, requestID)
	if !ok {
		return nil, false
	}

	if err := PrepareRequest(req); err != nil {
		logger.WarnContext(ctx, "invalid request",
			"error", err,
			"request_id", requestID,
		)
		// Preserve original error code if it's already a domain error
		var domainErr *dErrors.Error
		if errors.As(err, &domainErr) {
			WriteError(w, err)
		} else {
			WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		}
		return nil, false
	}

	return req, true
}

// ParsePage binds the offset/limit query parameters of a list request.
// offset defaults to 0, limit defaults to DefaultPageLimit and is capped at
// MaxPageLimit. Non-integer or negative values fail validation.
func ParsePage(r *http.Request) (offset, limit int64, err error) {
	offset, err = parsePageParam(r, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = parsePageParam(r, "limit", DefaultPageLimit)
	if err != nil {
		return 0, 0, err
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return offset, limit, nil
}

func parsePageParam(r *http.Request, name string, fallback int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeValidation, name+" must be an integer")
	}
	if value < 0 {
		return 0, dErrors.New(dErrors.CodeValidation, name+" must not be negative")
	}
	return value, nil
}
