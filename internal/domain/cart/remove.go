package cart

import (
	"fmt"

	"github.com/jsamuelsen11/domain-storefront/internal/domain"
)

// RemoveAt returns a new slice without the line at index, plus the removed
// line. The relative order of the remaining lines is preserved and the input
// slice is never modified. An index outside [0, len(lines)) returns
// domain.ErrIndexOutOfRange.
func RemoveAt(lines []Line, index int) ([]Line, Line, error) {
	if index < 0 || index >= len(lines) {
		return nil, Line{}, fmt.Errorf("remove at %d of %d: %w", index, len(lines), domain.ErrIndexOutOfRange)
	}

	out := make([]Line, 0, len(lines)-1)
	out = append(out, lines[:index]...)
	out = append(out, lines[index+1:]...)
	return out, lines[index], nil
}

// Append returns a new slice with l added at the end. A line whose key is
// already present returns domain.ErrDuplicateItem.
func Append(lines []Line, l Line) ([]Line, error) {
	if Contains(lines, l.Key()) {
		return nil, fmt.Errorf("add %s: %w", l.Domain(), domain.ErrDuplicateItem)
	}

	out := make([]Line, 0, len(lines)+1)
	out = append(out, lines...)
	out = append(out, l)
	return out, nil
}
