package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
)

// cartRecord is the persisted shape of one cart line. Field names follow the
// storage format browsers already hold under the cart key.
type cartRecord struct {
	Domain string      `json:"domain"`
	TLD    string      `json:"tld"`
	Price  storedPrice `json:"price"`
}

// storedPrice accepts a JSON string or number and writes a string with two
// decimals when that is exact ("12.50"), the shortest exact form otherwise.
// set is false when the field was absent from the record.
type storedPrice struct {
	decimal.Decimal
	set bool
}

var errNoPrice = errors.New("price is required")

func (p storedPrice) MarshalJSON() ([]byte, error) {
	s := p.String()
	if p.Round(2).Equal(p.Decimal) {
		s = p.StringFixed(2)
	}
	return json.Marshal(s)
}

func (p *storedPrice) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return errNoPrice
	}
	if err := p.Decimal.UnmarshalJSON(b); err != nil {
		return err
	}
	p.set = true
	return nil
}

// encodeLines serializes lines into the persisted JSON array.
func encodeLines(lines []cart.Line) (string, error) {
	records := make([]cartRecord, len(lines))
	for i, l := range lines {
		if math.IsNaN(l.Price) || math.IsInf(l.Price, 0) {
			return "", fmt.Errorf("encoding cart: %s has non-finite price %v", l.Domain(), l.Price)
		}
		records[i] = cartRecord{
			Domain: l.Name,
			TLD:    l.Suffix,
			Price:  storedPrice{Decimal: decimal.NewFromFloat(l.Price)},
		}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encoding cart: %w", err)
	}
	return string(b), nil
}

// decodeLines parses a persisted payload. Any malformed record fails the whole
// payload; repeated keys keep their first occurrence.
func decodeLines(payload string) ([]cart.Line, error) {
	var records []cartRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}

	lines := make([]cart.Line, 0, len(records))
	for i, r := range records {
		if !r.Price.set {
			return nil, fmt.Errorf("decoding cart record %d: %w", i, errNoPrice)
		}
		// Most decimal prices are inexact in binary; Validate rejects overflow.
		price, _ := r.Price.Float64()
		l := cart.Line{Name: r.Domain, Suffix: r.TLD, Price: price}
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("decoding cart record %d: %w", i, err)
		}
		lines = append(lines, l)
	}
	return cart.Dedupe(lines), nil
}
