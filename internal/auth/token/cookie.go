package token

import (
	"net/http"
	"time"

	"splendico/pkg/config"
)

// CookiePolicy holds the attributes shared by setting and clearing the
// credential cookie. Browsers only replace a cookie when they match.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
}

// NewCookiePolicy returns Secure + SameSite=None for cross-site production
// frontends and SameSite=Strict without Secure for local development.
func NewCookiePolicy(production bool) CookiePolicy {
	if production {
		return CookiePolicy{Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return CookiePolicy{Secure: false, SameSite: http.SameSiteStrictMode}
}

func (p CookiePolicy) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     config.TokenCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}

func (p CookiePolicy) Set(w http.ResponseWriter, token string, expires time.Time) {
	c := p.cookie(token)
	c.Expires = expires
	http.SetCookie(w, c)
}

func (p CookiePolicy) Clear(w http.ResponseWriter) {
	c := p.cookie("")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

// FromRequest returns the credential cookie value, or "" when absent.
func FromRequest(r *http.Request) string {
	c, err := r.Cookie(config.TokenCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
