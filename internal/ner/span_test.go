package ner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSpansAdjacentSameLabel(t *testing.T) {
	text := "Ursula von der Leyen spoke."
	spans := []Span{
		{Start: 0, End: 6, Label: "person", Text: "Ursula", Score: 0.9},
		{Start: 7, End: 20, Label: "person", Text: "von der Leyen", Score: 0.85},
	}

	merged := MergeSpans(text, spans)

	require.Len(t, merged, 1)
	assert.Equal(t, "Ursula von der Leyen", merged[0].Text)
	assert.Equal(t, 0, merged[0].Start)
	assert.Equal(t, 20, merged[0].End)
}

func TestMergeSpansAbutting(t *testing.T) {
	text := "McDonald"
	spans := []Span{
		{Start: 0, End: 2, Label: "organization", Text: "Mc"},
		{Start: 2, End: 8, Label: "organization", Text: "Donald"},
	}

	merged := MergeSpans(text, spans)

	require.Len(t, merged, 1)
	assert.Equal(t, "McDonald", merged[0].Text)
}

func TestMergeSpansDifferentLabelsStaySeparate(t *testing.T) {
	text := "Paris Hilton"
	spans := []Span{
		{Start: 0, End: 5, Label: "location", Text: "Paris"},
		{Start: 6, End: 12, Label: "person", Text: "Hilton"},
	}

	merged := MergeSpans(text, spans)
	assert.Len(t, merged, 2)
}

func TestMergeSpansNonAdjacentSameLabel(t *testing.T) {
	text := "Merkel met Scholz"
	spans := []Span{
		{Start: 0, End: 6, Label: "person", Text: "Merkel"},
		{Start: 11, End: 17, Label: "person", Text: "Scholz"},
	}

	merged := MergeSpans(text, spans)

	require.Len(t, merged, 2)
	assert.Equal(t, "Merkel", merged[0].Text)
	assert.Equal(t, "Scholz", merged[1].Text)
}

func TestMergeSpansChain(t *testing.T) {
	text := "European Central Bank"
	spans := []Span{
		{Start: 0, End: 8, Label: "organization", Text: "European"},
		{Start: 9, End: 16, Label: "organization", Text: "Central"},
		{Start: 17, End: 21, Label: "organization", Text: "Bank"},
	}

	merged := MergeSpans(text, spans)

	require.Len(t, merged, 1)
	assert.Equal(t, "European Central Bank", merged[0].Text)
	assert.Equal(t, 21, merged[0].End)
}

func TestMergeSpansEmptyInput(t *testing.T) {
	assert.Nil(t, MergeSpans("anything", nil))
	assert.Nil(t, MergeSpans("anything", []Span{}))
}

func TestMergeSpansSingleSpanFlushed(t *testing.T) {
	spans := []Span{{Start: 0, End: 4, Label: "person", Text: "Olaf"}}
	merged := MergeSpans("Olaf", spans)
	assert.Equal(t, spans, merged)
}
