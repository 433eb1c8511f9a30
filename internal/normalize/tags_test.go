package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchTags_LowercasesAndJoins(t *testing.T) {
	got := SearchTags("Verse Melk", "Zuivel")
	assert.Equal(t, "verse, melk, zuivel", got)
}

func TestSearchTags_DropsStopWordsAndShortTokens(t *testing.T) {
	got := SearchTags("Melk van de boerderij", "Zuivel en eieren")
	assert.Equal(t, "melk, boerderij, zuivel, eieren", got)
}

func TestSearchTags_DeduplicatesInEncounterOrder(t *testing.T) {
	got := SearchTags("Melk Melk Verse", "Melk")
	assert.Equal(t, "melk, verse", got)
}

func TestSearchTags_StripsPunctuation(t *testing.T) {
	got := SearchTags("Boeren-kaas (48+)", "Kaas")
	assert.Equal(t, "boeren, kaas", got)
}

func TestSearchTags_Empty(t *testing.T) {
	assert.Equal(t, "", SearchTags("", ""))
	assert.Equal(t, "", SearchTags("de en of", "op"))
}

func TestSearchTags_TruncatesAtTokenBoundary(t *testing.T) {
	words := make([]string, 0, 80)
	for r := 'a'; r <= 'z'; r++ {
		for s := 'a'; s <= 'c'; s++ {
			words = append(words, strings.Repeat(string(r), 5)+strings.Repeat(string(s), 5))
		}
	}
	name := strings.Join(words, " ")

	got := SearchTags(name, "")
	assert.LessOrEqual(t, len(got), 500)
	assert.False(t, strings.HasSuffix(got, ","))
	assert.False(t, strings.HasSuffix(got, " "))

	// The last tag must be one of the input words, not a cut fragment.
	tags := strings.Split(got, ", ")
	assert.Contains(t, words, tags[len(tags)-1])
}
