package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// CredentialHeaders lists the lowercase header names whose values are never
// logged. The request logging middleware drops them, and masq masks any
// attribute that uses one as its key.
var CredentialHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"set-cookie":          true,
}

// sensitiveFields are attribute keys masked wherever they appear.
var sensitiveFields = []string{"api_key", "password", "secret", "session_id"}

var (
	// basicAuthPattern matches the registrar Authorization value.
	basicAuthPattern = regexp.MustCompile(`(?i)basic\s+[a-zA-Z0-9+/\-_]+=*`)
	// bearerPattern matches bearer tokens echoed back in upstream errors.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// inlineKeyPattern matches "api_key=..." fragments inside URLs and messages.
	inlineKeyPattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*[^\s&]+`)
)

func redactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(CredentialHeaders)+len(sensitiveFields)+4)
	for name := range CredentialHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(basicAuthPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(inlineKeyPattern),
	)
	return masq.New(opts...)
}
