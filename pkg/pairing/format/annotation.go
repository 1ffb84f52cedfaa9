package format

import (
	"bufio"
	"io"
	"strings"

	"github.com/arcplot/arcplot/pkg/errors"
	"github.com/arcplot/arcplot/pkg/pairing"
)

const (
	// annotationHeader marks the secondary-structure record in a Jalview
	// annotation file. Only the first matching line is consumed.
	annotationHeader = "NO_GRAPH\tSecondary structure"

	// segmentMarker is the removable color marker suffixed to payload
	// segments by the exporter.
	segmentMarker = ",[000000]"
)

// ReadSegmentAnnotation parses a Jalview annotation file.
//
// The payload is the third tab-delimited field of the first line starting
// with the secondary-structure header: a pipe-delimited list of segments,
// each optionally suffixed with a marker token. After marker stripping, the
// segment list is scanned once for bracket matching: every "(" pushes its
// segment index, every ")" pops and records the (open, close) index pair.
// Resulting positions are zero-based segment indices.
func ReadSegmentAnnotation(r io.Reader) ([]pairing.Pair, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, annotationHeader) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, errors.New(errors.ErrCodeParse,
				"secondary structure record has %d tab-delimited fields, expected at least 3", len(fields))
		}
		segments := strings.Split(fields[2], "|")
		for i, seg := range segments {
			segments[i] = strings.ReplaceAll(seg, segmentMarker, "")
		}
		return matchBrackets(segments)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read annotation file")
	}
	return nil, errors.New(errors.ErrCodeParse, "no secondary structure record found")
}

// matchBrackets recovers the nesting structure of a segment list with an
// explicit stack of opening indices. Segments other than "(" and ")" are
// ignored. Pairs are recorded in closing order.
func matchBrackets(segments []string) ([]pairing.Pair, error) {
	var stack []int
	var pairs []pairing.Pair

	for i, seg := range segments {
		switch seg {
		case "(":
			stack = append(stack, i)
		case ")":
			if len(stack) == 0 {
				berr := &errors.BracketError{Index: i}
				return nil, errors.Wrap(errors.ErrCodeMismatchedBracket, berr, "unbalanced structure")
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairs = append(pairs, pairing.Pair{First: open, Second: i})
		}
	}
	if len(stack) > 0 {
		berr := &errors.BracketError{Index: stack[len(stack)-1], Opening: true}
		return nil, errors.Wrap(errors.ErrCodeMismatchedBracket, berr, "unbalanced structure")
	}
	return pairs, nil
}
