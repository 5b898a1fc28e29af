package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_MatchesStemmedVocabulary(t *testing.T) {
	skills := ExtractSkills("Senior Software Engineer with Python, SQL and 5 years experience")
	assert.Equal(t, []string{"software", "engineer", "python", "sql", "year", "experience"}, skills)
}

func TestExtractSkills_NoDuplicates(t *testing.T) {
	skills := ExtractSkills("python Python PYTHON sql python")
	assert.Equal(t, []string{"python", "sql"}, skills)
}

func TestExtractSkills_PluralFormsMatch(t *testing.T) {
	// Vocabulary entries are stored stemmed, so inflected input still matches.
	skills := ExtractSkills("dockers reacts")
	assert.Equal(t, []string{"docker", "react"}, skills)
}

func TestExtractSkills_EmptyAndUnknown(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
	assert.Empty(t, ExtractSkills("gardening pottery woodwork"))
}

func TestExtractSkills_Pure(t *testing.T) {
	input := "Docker, AWS and React developer"
	first := ExtractSkills(input)
	second := ExtractSkills(input)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
