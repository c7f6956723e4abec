package version

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"
)

// ErrOverlappingSpans is returned when two matches in one file cover the same bytes.
var ErrOverlappingSpans = errors.New("overlapping version spans")

// Span is the byte range of one captured version occurrence.
type Span struct {
	Start int
	End   int
	Text  string // captured text at [Start, End)
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d) %q", s.Start, s.End, s.Text)
}

// FindSpans applies every pattern to content and returns one span per match,
// covering capture group 1. Spans are returned in pattern order, then
// document order within a pattern; callers sort before splicing.
func FindSpans(content []byte, patterns []*regexp.Regexp) []Span {
	var spans []Span
	for _, re := range patterns {
		for _, loc := range re.FindAllSubmatchIndex(content, -1) {
			if len(loc) < 4 || loc[2] < 0 {
				continue // group 1 did not participate
			}
			start, end := loc[2], loc[3]
			spans = append(spans, Span{Start: start, End: end, Text: string(content[start:end])})
		}
	}
	return spans
}

// SortSpans orders spans ascending by start offset and reports the first
// overlapping pair, if any.
func SortSpans(spans []Span) error {
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].End {
			return fmt.Errorf("%w: %s and %s", ErrOverlappingSpans, spans[i-1], spans[i])
		}
	}
	return nil
}

// Splice replaces every span in content with replacement. Spans must be
// sorted by start offset, non-overlapping and within bounds; bytes outside
// the spans are copied unchanged.
func Splice(content []byte, spans []Span, replacement string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(content) + len(spans)*len(replacement))

	last := 0
	for i, s := range spans {
		if s.Start < last {
			if i > 0 {
				return nil, fmt.Errorf("%w: %s and %s", ErrOverlappingSpans, spans[i-1], s)
			}
			return nil, fmt.Errorf("invalid span %s", s)
		}
		if s.End < s.Start || s.End > len(content) {
			return nil, fmt.Errorf("span %s out of range for %d bytes", s, len(content))
		}
		buf.Write(content[last:s.Start])
		buf.WriteString(replacement)
		last = s.End
	}
	buf.Write(content[last:])
	return buf.Bytes(), nil
}
