package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{"  What were our top products?  ", "What were our top products?", nil},
		{"\n\trevenue by region\n", "revenue by region", nil},
		{"", "", ErrEmptyQuery},
		{"   \t\n", "", ErrEmptyQuery},
		{strings.Repeat("a", MaxQueryLength), strings.Repeat("a", MaxQueryLength), nil},
		{strings.Repeat("a", MaxQueryLength+1), "", ErrQueryTooLong},
	}

	for _, tt := range tests {
		got, err := NormalizeQuery(tt.raw)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("NormalizeQuery(%.20q) error = %v, want %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeQuery(%.20q) = %.20q, want %.20q", tt.raw, got, tt.want)
		}
	}
}
