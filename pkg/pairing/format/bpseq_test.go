package format

import (
	"strings"
	"testing"

	"github.com/arcplot/arcplot/pkg/errors"
	"github.com/arcplot/arcplot/pkg/pairing"
)

func TestReadResiduePairTable(t *testing.T) {
	input := "1 G 20\n" +
		"2 C 19\n" +
		"19 C 2\n" + // reverse of row 2, dropped
		"3 A 0\n" + // unpaired: partner zero
		"0 X 5\n" + // unpaired: position zero
		"\n" +
		"10 U 11\n"

	got, err := ReadResiduePairTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadResiduePairTable failed: %v", err)
	}

	want := []pairing.Pair{{First: 1, Second: 20}, {First: 2, Second: 19}, {First: 10, Second: 11}}
	if len(got) != len(want) {
		t.Fatalf("got %d pairs, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadResiduePairTable_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "1 G\n"},
		{"non-integer position", "x G 20\n"},
		{"non-integer partner", "1 G y\n"},
		{"self pair", "5 G 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadResiduePairTable(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("error = %v, want PARSE_ERROR", err)
			}
		})
	}
}
