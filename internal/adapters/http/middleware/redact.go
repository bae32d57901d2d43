package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/domain-storefront/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as log attributes sorted by name. Credential
// headers are replaced by a marker. Cookie headers keep their cookie names so
// a missing session cookie is visible, but every value is masked.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		lower := strings.ToLower(name)
		switch {
		case logging.CredentialHeaders[lower]:
			attrs = append(attrs, slog.String(name, redacted))
		case lower == "cookie":
			attrs = append(attrs, slog.String(name, maskCookies(headers.Values(name))))
		default:
			attrs = append(attrs, slog.String(name, strings.Join(headers.Values(name), ",")))
		}
	}
	return attrs
}

func maskCookies(values []string) string {
	var masked []string
	for _, v := range values {
		for part := range strings.SplitSeq(v, ";") {
			name, _, _ := strings.Cut(strings.TrimSpace(part), "=")
			if name != "" {
				masked = append(masked, name+"="+redacted)
			}
		}
	}
	return strings.Join(masked, "; ")
}
