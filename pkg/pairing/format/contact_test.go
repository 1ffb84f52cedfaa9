package format

import (
	"strings"
	"testing"

	"golang.org/x/text/transform"

	"github.com/arcplot/arcplot/pkg/errors"
	"github.com/arcplot/arcplot/pkg/pairing"
)

// utf16Reader wraps a UTF-8 test string in the table's wire encoding.
func utf16Reader(t *testing.T, s string) *strings.Reader {
	t.Helper()
	encoded, _, err := transform.String(contactEncoding.NewEncoder(), s)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return strings.NewReader(encoded)
}

func TestReadContactTable(t *testing.T) {
	input := "Nucleotide 1\tPairing\tNucleotide 2\n" +
		"A:12\tcWW\tA:25\n" +
		"A:13\ttSH\tA:24\n"

	got, err := ReadContactTable(utf16Reader(t, input))
	if err != nil {
		t.Fatalf("ReadContactTable failed: %v", err)
	}

	want := []pairing.Pair{{First: 12, Second: 25}, {First: 13, Second: 24}}
	if len(got) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadContactTable_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing colon", "header\nA12\tcWW\tA:25\n"},
		{"non-integer position", "header\nA:x\tcWW\tA:25\n"},
		{"too few fields", "header\nA:12\tcWW\n"},
		{"partner missing colon", "header\nA:12\tcWW\tA25\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadContactTable(utf16Reader(t, tt.input))
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("error = %v, want PARSE_ERROR", err)
			}
		})
	}
}

func TestReadContactTable_HeaderOnly(t *testing.T) {
	got, err := ReadContactTable(utf16Reader(t, "Nucleotide 1\tPairing\tNucleotide 2\n"))
	if err != nil {
		t.Fatalf("ReadContactTable failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d pairs from header-only table, want 0", len(got))
	}
}
