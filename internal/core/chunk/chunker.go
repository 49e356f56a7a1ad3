// Package chunk splits long article text into sentence-respecting,
// length-bounded pieces. The algorithm is deterministic: the same text and
// limits always produce the same chunk sequence.
package chunk

import (
	"regexp"
	"strings"
)

const (
	// DefaultMaxLen is the length above which a text gets split.
	DefaultMaxLen = 1100
	// DefaultMinSentenceLen drops fragments at or below this trimmed length.
	DefaultMinSentenceLen = 1
)

var sentenceDelimiters = regexp.MustCompile(`[.:;?!]`)

// ChunkText returns text unchanged (as a single chunk) when it is shorter
// than maxLen. Longer texts are split into sentences and recombined into
// groups of roughly targetLen = maxLen / ceil(len/maxLen) characters, so a
// long text divides into evenly sized chunks instead of leaving one
// oversized remainder.
func ChunkText(text string, maxLen, minSentenceLen int) []string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	if len(text) < maxLen {
		return []string{text}
	}
	targetLen := maxLen / ceilDiv(len(text), maxLen)
	sentences := Split(text, minSentenceLen)
	return Combine(sentences, targetLen)
}

// Split cuts text into sentence-like units at any of `. : ; ? !`, trims
// whitespace and discards fragments whose trimmed length is at or below
// minLen.
func Split(text string, minLen int) []string {
	var sentences []string
	for _, fragment := range sentenceDelimiters.Split(text, -1) {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) > minLen {
			sentences = append(sentences, fragment)
		}
	}
	return sentences
}

// Combine greedily groups adjacent sentences, joined with ".", flushing a
// group once the sum of its sentence lengths has reached targetLen. The
// sentence that triggers a flush starts the next group; the trailing group
// is always flushed, so no input text is lost.
func Combine(sentences []string, targetLen int) []string {
	var combined []string
	var pending []string
	pendingLen := 0
	for _, sentence := range sentences {
		if pendingLen >= targetLen {
			combined = append(combined, strings.Join(pending, "."))
			pending = pending[:0]
			pendingLen = 0
		}
		pending = append(pending, sentence)
		pendingLen += len(sentence)
	}
	if len(pending) > 0 {
		combined = append(combined, strings.Join(pending, "."))
	}
	return combined
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
