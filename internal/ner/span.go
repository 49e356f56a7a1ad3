// Package ner defines the named-entity-recognition collaborator contract and
// the span post-processing that consolidates adjacent mentions.
package ner

import (
	"context"
	"strings"
)

// Span is one recognized entity occurrence in a text.
type Span struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Label string  `json:"label"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Client is the external token-classification service. Implementations must
// return spans sorted by Start with scores in [0,1]. The same label set has
// to be used at ingestion and at question time for resolution symmetry.
type Client interface {
	Extract(ctx context.Context, text string, labels []string, threshold float64) ([]Span, error)
}

// MergeSpans consolidates adjacent same-label spans into single mentions.
// Two spans merge when their labels match and the second starts at or one
// position past the first's end (a one-character gap, typically a space);
// the merged text is re-sliced from the original input and trimmed. The
// pass is maximal left-to-right: no two adjacent output spans both share a
// label and pass the adjacency test.
//
// Spans must already be sorted by Start. The precondition is not
// re-validated; unsorted input produces non-maximal merges.
func MergeSpans(text string, spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	var merged []Span
	current := spans[0]
	for _, next := range spans[1:] {
		if next.Label == current.Label && (next.Start == current.End || next.Start == current.End+1) {
			current.Text = strings.TrimSpace(text[current.Start:next.End])
			current.End = next.End
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
