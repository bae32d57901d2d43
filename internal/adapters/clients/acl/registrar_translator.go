package acl

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
)

// ToCheckRequest builds the registrar request for one name and suffix.
func ToCheckRequest(name, suffix string) CheckRequestDTO {
	return CheckRequestDTO{Name: name, Extension: suffix}
}

// ToCandidate translates a registrar answer into a candidate for the asked
// name and suffix. An empty domain or tld falls back to the request; a
// mismatch means the registrar answered a different question and is rejected.
func ToCandidate(dto CheckResponseDTO, name, suffix string) (availability.Candidate, error) {
	gotName := strings.ToLower(strings.TrimSpace(dto.Domain))
	gotName = strings.TrimSuffix(gotName, "."+suffix)
	if gotName == "" {
		gotName = name
	}
	gotSuffix := availability.NormalizeSuffix(dto.TLD)
	if gotSuffix == "" {
		gotSuffix = suffix
	}

	if gotName != name || gotSuffix != suffix {
		return availability.Candidate{}, fmt.Errorf("registrar answered %s.%s for %s.%s: %w",
			gotName, gotSuffix, name, suffix, domain.ErrProviderFailure)
	}

	c := availability.Candidate{
		Name:   name,
		Suffix: suffix,
		Price:  dto.Price.InexactFloat64(),
		Status: toStatus(dto.Status),
	}
	if err := c.Validate(); err != nil {
		return availability.Candidate{}, fmt.Errorf("registrar quote for %s: %w", c.Domain(), err)
	}
	return c, nil
}

func toStatus(s string) availability.Status {
	if strings.EqualFold(strings.TrimSpace(s), statusFree) {
		return availability.StatusAvailable
	}
	return availability.StatusTaken
}
