package availability

import (
	"slices"
	"testing"
)

func TestNormalizeSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "com", want: "com"},
		{in: ".COM", want: "com"},
		{in: "  .Io ", want: "io"},
		{in: "", want: ""},
		{in: ".", want: ""},
	}

	for _, tt := range tests {
		if got := NormalizeSuffix(tt.in); got != tt.want {
			t.Errorf("NormalizeSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultSuffixes_Unique(t *testing.T) {
	t.Parallel()

	sorted := slices.Clone(DefaultSuffixes)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(DefaultSuffixes) {
		t.Errorf("DefaultSuffixes has duplicates: %v", DefaultSuffixes)
	}
	if DefaultSuffixes[0] != "com" || DefaultSuffixes[len(DefaultSuffixes)-1] != "cloud" {
		t.Errorf("DefaultSuffixes order changed: %v", DefaultSuffixes)
	}
}
