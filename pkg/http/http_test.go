package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "splendico/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHelpers(t *testing.T) {
	t.Run("bare array body", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, WriteOK(w, []string{"a", "b"}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `["a","b"]`, w.Body.String())
	})

	t.Run("created", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, WriteCreated(w, map[string]string{"id": "1"}))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, WriteSuccess(w))
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("count", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, WriteCount(w, 42))
		assert.JSONEq(t, `{"count":42}`, w.Body.String())
	})

	t.Run("no content", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteNoContent(w)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "a@b.co", p.Email)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		err := DecodeJSON(r, &p)
		assert.Equal(t, apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)
	})

	t.Run("malformed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		var p payload
		err := DecodeJSON(r, &p)
		assert.Equal(t, http.StatusBadRequest, apperrors.AsAppError(err).StatusCode())
	})

	t.Run("too large", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"`+strings.Repeat("x", 64)+`"}`))
		r.Body = http.MaxBytesReader(w, r.Body, 16)
		var p payload
		err := DecodeJSON(r, &p)
		assert.Equal(t, http.StatusRequestEntityTooLarge, apperrors.AsAppError(err).StatusCode())
	})
}

func TestWriteError_UsesAppErrorBody(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, WriteError(w, apperrors.Forbidden("not yours")))

	var body apperrors.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperrors.CodeForbidden, body.Code)
}
