package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/domain-storefront/internal/platform/config"
)

// DefaultSessionCookie names the session cookie when none is configured.
const DefaultSessionCookie = "storefront_session"

type sessionIDKey struct{}

// WithSessionID returns a new context carrying the browser session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session id stored by Session, or "".
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Session returns middleware that identifies the browser behind each request.
// A cookie holding a valid UUID is reused; anything else is replaced with a
// fresh random id. The cookie is (re)issued on every response so its expiry
// slides with activity.
func Session(cfg config.SessionConfig) func(http.Handler) http.Handler {
	name := cfg.CookieName
	if name == "" {
		name = DefaultSessionCookie
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(name); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
			}

			cookie := &http.Cookie{
				Name:     name,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			}
			if cfg.CookieTTL > 0 {
				cookie.MaxAge = int(cfg.CookieTTL / time.Second)
				cookie.Expires = time.Now().Add(cfg.CookieTTL)
			}
			http.SetCookie(w, cookie)

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

// sessionTagLen keeps enough of the id to correlate log lines without
// logging a usable session credential.
const sessionTagLen = 8

// SessionTag shortens a session id for logs.
func SessionTag(id string) string {
	if len(id) <= sessionTagLen {
		return id
	}
	return id[:sessionTagLen]
}
