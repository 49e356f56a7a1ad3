package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveSpecialChars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Ursula von der Leyen", "Ursula von der Leyen"},
		{"lucene operators", `EU+Kommission AND (Brüssel)`, "EU Kommission AND  Brüssel"},
		{"quotes and wildcards", `"Volt*"?`, "Volt"},
		{"only specials", `+-&&||!(){}[]^"~*?:\`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveSpecialChars(tt.input))
		})
	}
}

func TestFullTextQuery(t *testing.T) {
	got := FullTextQuery("Ursula v. d. Leyn", 0.8)
	assert.Equal(t, "Ursula~0.8 AND v.~0.8 AND d.~0.8 AND Leyn~0.8", got)
}

func TestFullTextQuerySingleWord(t *testing.T) {
	assert.Equal(t, "Volt~0.8", FullTextQuery("Volt", 0.8))
}

func TestFullTextQueryStripsSpecials(t *testing.T) {
	got := FullTextQuery(`EU-Kommission`, 0.8)
	assert.Equal(t, "EU~0.8 AND Kommission~0.8", got)
}

func TestFullTextQueryEmptyInput(t *testing.T) {
	assert.Equal(t, "", FullTextQuery("   ", 0.8))
	assert.Equal(t, "", FullTextQuery(`"*?`, 0.8))
}

func TestFullTextQueryThresholdFallback(t *testing.T) {
	assert.Equal(t, "Volt~0.8", FullTextQuery("Volt", 0))
	assert.Equal(t, "Volt~0.5", FullTextQuery("Volt", 0.5))
}
