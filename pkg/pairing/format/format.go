// Package format implements the three supported base-pairing interchange
// formats and the input source selector.
//
// Each parser reads one format into raw [pairing.Pair] candidates:
//
//   - Contact table: UTF-16 tab-delimited contact export (FR3D/RiboVision)
//   - Segment annotation: Jalview annotation with a bracket-notation payload
//   - Residue-pair table: bpseq-style per-residue partner listing
//
// Parsers do not normalize; callers pass their output through
// [pairing.Normalize] to obtain the ordered, deduplicated pair sequence.
package format

import (
	"io"
	"os"

	"github.com/arcplot/arcplot/pkg/errors"
	"github.com/arcplot/arcplot/pkg/pairing"
)

// Kind identifies one of the supported input formats.
type Kind string

// Supported input formats.
const (
	KindContactTable      Kind = "contacts"
	KindSegmentAnnotation Kind = "annotation"
	KindResiduePairTable  Kind = "bpseq"
)

// Source is a tagged input selector: exactly one format plus the path that
// carries it. Construct with [Select], which enforces mutual exclusivity at
// the boundary instead of leaving it to runtime flag inspection.
type Source struct {
	Kind Kind
	Path string
}

// Select builds a Source from the three mutually exclusive path flags.
// Exactly one of the paths must be non-empty.
func Select(contacts, annotation, bpseq string) (Source, error) {
	var src Source
	var count int
	for _, c := range []struct {
		kind Kind
		path string
	}{
		{KindContactTable, contacts},
		{KindSegmentAnnotation, annotation},
		{KindResiduePairTable, bpseq},
	} {
		if c.path != "" {
			src = Source{Kind: c.kind, Path: c.path}
			count++
		}
	}
	switch count {
	case 0:
		return Source{}, errors.New(errors.ErrCodeInvalidInput,
			"no input given: provide exactly one of --contacts, --annotation, --bpseq")
	case 1:
		return src, nil
	default:
		return Source{}, errors.New(errors.ErrCodeInvalidInput,
			"multiple inputs given: --contacts, --annotation and --bpseq are mutually exclusive")
	}
}

// Pairs opens the source file and parses it with the format's reader.
// The result is raw parser output, not yet normalized.
func (s Source) Pairs() ([]pairing.Pair, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s not found", s.Path)
		}
		return nil, errors.Wrap(errors.ErrCodeParse, err, "open %s", s.Path)
	}
	defer f.Close()

	pairs, err := s.read(f)
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeParse
		}
		return nil, errors.Wrap(code, err, "parse %s", s.Path)
	}
	return pairs, nil
}

func (s Source) read(r io.Reader) ([]pairing.Pair, error) {
	switch s.Kind {
	case KindContactTable:
		return ReadContactTable(r)
	case KindSegmentAnnotation:
		return ReadSegmentAnnotation(r)
	case KindResiduePairTable:
		return ReadResiduePairTable(r)
	default:
		return nil, errors.New(errors.ErrCodeInternal, "unknown input kind %q", s.Kind)
	}
}
