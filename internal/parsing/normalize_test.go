package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndStripsPunctuation(t *testing.T) {
	tokens := Normalize("Senior Go-Developer, (Remote)!")
	assert.Equal(t, []string{"senior", "godeveloper", "remote"}, tokens)
}

func TestNormalize_DropsStopWords(t *testing.T) {
	tokens := Normalize("the cat and the hat")
	assert.Equal(t, []string{"cat", "hat"}, tokens)
}

func TestNormalize_RetainsDuplicates(t *testing.T) {
	tokens := Normalize("python python python")
	assert.Equal(t, []string{"python", "python", "python"}, tokens)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(""))
	assert.Empty(t, Normalize("   \t\n  "))
	assert.Empty(t, Normalize("!!! ... ???"))
}

func TestStem_SuffixRules(t *testing.T) {
	cases := map[string]string{
		"developing": "develop",
		"skilled":    "skill",
		"pipelines":  "pipeline",
		"glass":      "glass", // "ss" is protected
		"gas":        "ga", // trailing "s" still stripped
		"ing":        "",   // stems to empty, by design
		"python":     "python",
	}
	for input, want := range cases {
		assert.Equal(t, want, Stem(input), "Stem(%q)", input)
	}
}

func TestStem_FirstMatchWins(t *testing.T) {
	// "ing" takes priority; no further stripping afterwards.
	assert.Equal(t, "test", Stem("testing"))
	// ends in "ed" but also in "d"; only the "ed" rule exists.
	assert.Equal(t, "deploy", Stem("deployed"))
}

func TestNormalize_IdempotentOnSkillTokens(t *testing.T) {
	once := Normalize("Experienced Python and SQL engineers building dockerized services")
	twice := Normalize(strings.Join(once, " "))
	assert.Equal(t, once, twice)
}

func TestUniqueTokens_PreservesFirstSeenOrder(t *testing.T) {
	unique := UniqueTokens([]string{"b", "a", "b", "c", "a"})
	assert.Equal(t, []string{"b", "a", "c"}, unique)
}
