package format

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arcplot/arcplot/pkg/errors"
	"github.com/arcplot/arcplot/pkg/pairing"
)

// ReadResiduePairTable parses a bpseq-style residue-pair table.
//
// Each row is whitespace-delimited: position, an ignored field (the residue
// letter), and partner position. A 0 in either position column marks an
// unpaired residue; such rows contribute no pair. Duplicate rows (each pair
// appears once per strand) are dropped through the canonical pair set, so
// the raw output is already duplicate-free and in encounter order.
func ReadResiduePairTable(r io.Reader) ([]pairing.Pair, error) {
	scanner := bufio.NewScanner(r)
	seen := pairing.NewSet()

	var pairs []pairing.Pair
	row := 0
	for scanner.Scan() {
		row++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, errors.New(errors.ErrCodeParse, "row %d: expected 3 fields, got %d", row, len(fields))
		}
		pos, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.New(errors.ErrCodeParse, "row %d: position %q is not an integer", row, fields[0])
		}
		partner, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.New(errors.ErrCodeParse, "row %d: partner %q is not an integer", row, fields[2])
		}
		if pos == 0 || partner == 0 {
			continue // unpaired residue
		}
		p := pairing.Pair{First: pos, Second: partner}
		if seen.Contains(p) {
			continue
		}
		if err := seen.Add(p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "row %d", row)
		}
		pairs = append(pairs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read residue-pair table")
	}
	return pairs, nil
}
