// Package acl is the anti-corruption layer between the registrar's wire
// format and the availability domain. The registrar speaks in "extensions"
// and "free"/"active" states; nothing outside this package sees either.
package acl

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/httpclient"
)

// problem is the subset of an RFC 7807 body the registrar sends on errors.
type problem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// translateStatus maps a registrar error answer to a domain error. The
// problem detail, when the registrar sends one, becomes the error text.
func translateStatus(se *httpclient.StatusError) error {
	p := parseProblem(se)
	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(se.StatusCode)
	}

	switch code := se.StatusCode; {
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		if len(p.Errors) > 0 {
			fields := make(map[string]string, len(p.Errors))
			for _, e := range p.Errors {
				fields[domainField(e.Location)] = e.Message
			}
			return &domain.ValidationError{Fields: fields}
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case code == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected registrar status %d: %s", code, detail)
	}
}

func parseProblem(se *httpclient.StatusError) problem {
	var p problem
	mt, _, err := mime.ParseMediaType(se.Header.Get("Content-Type"))
	if err != nil || mt != "application/problem+json" {
		return p
	}
	if json.Unmarshal(se.Body, &p) != nil {
		return problem{}
	}
	return p
}

// domainField renames a registrar field location to the storefront's name
// for it: "body.extension" is the "tld".
func domainField(location string) string {
	field := strings.TrimPrefix(location, "body.")
	if field == "extension" {
		return "tld"
	}
	return field
}
