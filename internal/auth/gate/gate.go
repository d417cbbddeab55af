// Package gate guards routes with the credential cookie.
package gate

import (
	"context"
	"errors"
	"net/http"

	"splendico/internal/auth/token"
	apperrors "splendico/pkg/errors"
	httputil "splendico/pkg/http"
	"splendico/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type Verifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

type claimsKey struct{}

func WithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*token.Claims)
	return claims, ok && claims != nil
}

type Gate struct {
	verifier Verifier
	log      *logger.Logger
}

func New(verifier Verifier, log *logger.Logger) *Gate {
	return &Gate{verifier: verifier, log: log}
}

// Authenticate admits requests carrying a valid credential cookie and stores
// its claims in the request context. Anything else is 401.
func (g *Gate) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := g.verifier.Verify(token.FromRequest(r))
		if err != nil {
			g.log.Warn("Credential rejected",
				logger.REQUEST_ID, logger.RequestID(r.Context()),
				"path", r.URL.Path,
				"reason", err,
			)
			message := "Unauthorized access"
			if errors.Is(err, token.ErrExpiredToken) {
				message = "Credential has expired"
			}
			g.write(w, apperrors.Unauthorized(message))
			return
		}

		next(w, r.WithContext(WithClaims(r.Context(), claims)), ps)
	}
}

// RequireOwner admits the request only when the authenticated email equals
// the path parameter exactly. It must run after Authenticate.
func (g *Gate) RequireOwner(param string) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				g.write(w, apperrors.Unauthorized("Unauthorized access"))
				return
			}

			if claims.Email != ps.ByName(param) {
				g.log.Warn("Ownership check failed",
					logger.REQUEST_ID, logger.RequestID(r.Context()),
					"path", r.URL.Path,
				)
				g.write(w, apperrors.Forbidden("Forbidden access"))
				return
			}

			next(w, r, ps)
		}
	}
}

// OwnerOf composes Authenticate and RequireOwner(param).
func (g *Gate) OwnerOf(param string) func(httprouter.Handle) httprouter.Handle {
	owner := g.RequireOwner(param)
	return func(next httprouter.Handle) httprouter.Handle {
		return g.Authenticate(owner(next))
	}
}

func (g *Gate) write(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		g.log.Error("failed to write error response", "handler", "Gate", "operation", "WriteError", "error", writeErr)
	}
}
