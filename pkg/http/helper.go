package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "splendico/pkg/errors"
)

// DecodeJSON decodes a single JSON value from the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return apperrors.PayloadTooLarge(maxErr.Limit)
	case errors.Is(err, io.EOF):
		return apperrors.InvalidInput("request body is empty")
	default:
		return apperrors.InvalidInput("invalid request body")
	}
}
