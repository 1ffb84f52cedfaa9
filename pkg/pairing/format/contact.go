package format

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/arcplot/arcplot/pkg/errors"
	"github.com/arcplot/arcplot/pkg/pairing"
)

// Contact tables are exported as UTF-16 text. A BOM selects the byte order
// when present; little-endian is assumed otherwise, matching the exporter.
var contactEncoding = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// ReadContactTable parses a tab-delimited contact table.
//
// The first row is a header and is skipped. Each data row holds
// "chain:position" in its first and third fields; the integer after the
// colon on each side forms one pair. The upstream export repeats each
// contact once per canonical base-pair category, so the raw output may
// carry duplicates; [pairing.Normalize] absorbs them.
func ReadContactTable(r io.Reader) ([]pairing.Pair, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, contactEncoding.NewDecoder()))

	var pairs []pairing.Pair
	row := 0
	for scanner.Scan() {
		row++
		if row == 1 {
			continue // header
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, errors.New(errors.ErrCodeParse, "row %d: expected at least 3 tab-delimited fields, got %d", row, len(fields))
		}
		first, err := contactPosition(fields[0])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "row %d: first position", row)
		}
		second, err := contactPosition(fields[2])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "row %d: partner position", row)
		}
		pairs = append(pairs, pairing.Pair{First: first, Second: second})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read contact table")
	}
	return pairs, nil
}

// contactPosition extracts the integer after the colon in a "chain:position"
// field.
func contactPosition(field string) (int, error) {
	_, pos, ok := strings.Cut(field, ":")
	if !ok {
		return 0, errors.New(errors.ErrCodeParse, "field %q lacks a colon separator", field)
	}
	n, err := strconv.Atoi(strings.TrimSpace(pos))
	if err != nil {
		return 0, errors.New(errors.ErrCodeParse, "field %q: position is not an integer", field)
	}
	return n, nil
}
