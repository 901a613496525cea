package rest

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/flickstack/rental-api/internal/domain"
)

const sessionTokenHeader = "X-Session-Token"

// SessionChecker validates a presented token and returns the authenticated
// user.
type SessionChecker interface {
	Session(ctx context.Context, token string) (*domain.User, error)
}

// SessionAuth is the per-request gate: it resolves the presented token to a
// user, slides the idle window, and exposes the user as the request
// principal. Requests with no, unknown, or expired tokens never reach the
// wrapped handler.
func SessionAuth(sessions SessionChecker) func(next http.Handler) http.Handler {
	if sessions == nil {
		panic("rest.SessionAuth: nil session checker")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(sessionTokenHeader))
			if token == "" {
				// Also accept the conventional bearer form.
				h := strings.TrimSpace(r.Header.Get("Authorization"))
				if parts := strings.SplitN(h, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					token = strings.TrimSpace(parts[1])
				}
			}

			u, err := sessions.Session(r.Context(), token)
			if err != nil {
				handleErr(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), u)))
		})
	}
}

func RateLimitMiddleware(cache domain.CacheRepository, limit int, window time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			allowed, _ := cache.AllowRequest(r.Context(), ip, limit, window)
			if !allowed {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keeps it simple: RemoteAddr host part.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none'")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
