package handler

import (
	"net/http"

	"splendico/internal/auth/token"
	apperrors "splendico/pkg/errors"
	httputil "splendico/pkg/http"
	"splendico/pkg/logger"
	"splendico/pkg/model"
	"splendico/pkg/sanitizer"
	"splendico/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
)

type AuthHandler struct {
	manager  *token.Manager
	cookies  token.CookiePolicy
	validate *validator.Validate
	log      *logger.Logger
}

func NewAuthHandler(manager *token.Manager, cookies token.CookiePolicy, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		manager:  manager,
		cookies:  cookies,
		validate: validation.New(),
		log:      log,
	}
}

// Issue signs a credential for the posted identity and sets it as the
// token cookie.
func (h *AuthHandler) Issue(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload model.UserPayload
	if err := httputil.DecodeJSON(r, &payload); err != nil {
		h.writeError(w, "Issue", err)
		return
	}

	payload.Email = sanitizer.NormalizeEmail(payload.Email)
	payload.Name = sanitizer.NormalizeName(payload.Name)
	if err := validation.Struct(h.validate, &payload); err != nil {
		h.writeError(w, "Issue", apperrors.Validation("Credential request validation failed", map[string]any{"errors": err}))
		return
	}

	signed, expires, err := h.manager.Issue(payload.Email, payload.Name)
	if err != nil {
		h.log.Error("Failed to sign credential", logger.REQUEST_ID, logger.RequestID(r.Context()), "error", err)
		h.writeError(w, "Issue", apperrors.Internal("Failed to issue credential", err))
		return
	}

	h.cookies.Set(w, signed, expires)
	if err := httputil.WriteSuccess(w); err != nil {
		h.log.Error("failed to write success response", "handler", "Issue", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.cookies.Clear(w)
	if err := httputil.WriteSuccess(w); err != nil {
		h.log.Error("failed to write success response", "handler", "Logout", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AuthHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/jwt", h.Issue)
	router.GET("/logout", h.Logout)
}
