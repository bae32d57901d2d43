// Package cart holds the committed purchase lines and the pricing policy that
// derives totals from them. Lines are keyed by (Name, Suffix) and kept in the
// order they were added.
package cart

import (
	"fmt"
	"math"

	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
)

// Line is one domain the user has committed to buy. Price is captured when the
// line is added and never re-quoted.
type Line struct {
	Name   string
	Suffix string
	Price  float64
}

// FromCandidate captures a quote as a cart line.
func FromCandidate(c availability.Candidate) Line {
	return Line{Name: c.Name, Suffix: c.Suffix, Price: c.Price}
}

// Domain returns the fully qualified name, e.g. "foo.com".
func (l Line) Domain() string {
	return l.Name + "." + l.Suffix
}

// Key returns the identity of the line within a cart.
func (l Line) Key() Key {
	return Key{Name: l.Name, Suffix: l.Suffix}
}

// Validate checks the fields a persisted line must carry.
func (l *Line) Validate() error {
	fields := make(map[string]string)

	if l.Name == "" {
		fields["domain"] = domain.MsgRequired
	}
	if l.Suffix == "" {
		fields["tld"] = domain.MsgRequired
	}
	switch {
	case math.IsNaN(l.Price) || math.IsInf(l.Price, 0):
		fields["price"] = fmt.Sprintf("must be a finite number, got %v", l.Price)
	case l.Price < 0:
		fields["price"] = fmt.Sprintf("must be non-negative, got %v", l.Price)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Key identifies a line. No two lines in a cart share a Key.
type Key struct {
	Name   string
	Suffix string
}

// IndexOf returns the position of the line with key k, or -1.
func IndexOf(lines []Line, k Key) int {
	for i := range lines {
		if lines[i].Key() == k {
			return i
		}
	}
	return -1
}

// Contains reports whether a line with key k is present.
func Contains(lines []Line, k Key) bool {
	return IndexOf(lines, k) >= 0
}

// Dedupe returns lines with later repeats of a key dropped, keeping the first
// occurrence and the original order. The input is not modified.
func Dedupe(lines []Line) []Line {
	seen := make(map[Key]struct{}, len(lines))
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if _, dup := seen[l.Key()]; dup {
			continue
		}
		seen[l.Key()] = struct{}{}
		out = append(out, l)
	}
	return out
}
