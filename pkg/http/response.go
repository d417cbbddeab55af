package http

import (
	"encoding/json"
	"net/http"

	apperrors "splendico/pkg/errors"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) error {
	return apperrors.WriteError(w, err)
}

// WriteOK writes data as the bare response body.
func WriteOK(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, data)
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, data)
}

func WriteSuccess(w http.ResponseWriter) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func WriteCount(w http.ResponseWriter, count int64) error {
	return WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
