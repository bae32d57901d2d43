package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/dto"
)

// MsgInternal is shown to the shopper when a handler panics.
const MsgInternal = "Something went wrong. Please try again."

var errPanic = errors.New("handler panic")

// Recovery turns a handler panic into a logged stack trace and a 500 problem
// response. Nothing is written when the handler already sent headers.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := []any{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				if id := RequestIDFromContext(r.Context()); id != "" {
					attrs = append(attrs, slog.String("request_id", id))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if !rw.headerWritten {
					dto.WriteMessageError(rw, r, errPanic, MsgInternal)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
