package middleware

import (
	"net/http"
	"strings"
	"time"
)

// RequestRecorder receives one observation per request; *metrics.Collector
// satisfies it.
type RequestRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

func Metrics(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newResponseWriter(w)

			defer func() {
				status := wrapped.statusCode
				p := recover()
				if p != nil {
					status = http.StatusInternalServerError
				}
				recorder.RecordHTTPRequest(r.Method, RouteLabel(r.URL.Path), status, time.Since(start))
				if p != nil {
					panic(p)
				}
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}

// RouteLabel collapses identifier segments so the label set stays bounded:
// 24 hex character ObjectIDs become :id and email addresses become :email.
func RouteLabel(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		switch {
		case isObjectIDHex(s):
			segments[i] = ":id"
		case strings.Contains(s, "@"):
			segments[i] = ":email"
		}
	}
	return strings.Join(segments, "/")
}

func isObjectIDHex(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}
