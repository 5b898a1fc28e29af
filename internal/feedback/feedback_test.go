package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/scoring"
)

const (
	sampleJob    = "Looking for a Software Engineer with 5 years experience in Python and SQL."
	sampleResume = "Experienced software engineer, 3 years, skilled in Python and SQL, developed data pipelines."
)

func TestGenerate_SampleScenario(t *testing.T) {
	scores := scoring.Score(sampleJob, sampleResume)
	fb := Generate(sampleJob, sampleResume, scores)

	require.NotEmpty(t, fb.Strengths)
	require.NotEmpty(t, fb.Weaknesses)
	require.NotEmpty(t, fb.Suggestions)

	// Matched-keyword callout names the top two matches.
	assert.Contains(t, fb.Strengths[0], "software and engineer")
	// Experience-gap callout cites the two-year shortfall.
	assert.Contains(t, fb.Weaknesses, "With 3 years, you fall 2 year(s) short.")
}

func TestGenerate_NoYearsStatedAtAll(t *testing.T) {
	job := "Backend developer, 4 years experience with Python required"
	resume := "Python developer who writes services"
	fb := Generate(job, resume, scoring.Score(job, resume))

	assert.Contains(t, fb.Weaknesses, "No experience years specified, while the job expects 4 years.")
}

func TestGenerate_SkillGaps(t *testing.T) {
	job := "Software engineer with Docker and SQL"
	resume := "Software engineer familiar with SQL"
	fb := Generate(job, resume, scoring.Score(job, resume))

	assert.Contains(t, fb.SkillGaps, "docker")
	assert.NotContains(t, fb.SkillGaps, "sql")
	assert.NotContains(t, fb.SkillGaps, "engineer")
}

func TestGenerate_BriefResumeWeakness(t *testing.T) {
	fb := Generate(sampleJob, "python", scoring.Score(sampleJob, "python"))
	assert.Contains(t, fb.Weaknesses, "The resume is brief (1 words), potentially lacking detail.")
}

func TestGenerate_NeverEmptyCategories(t *testing.T) {
	pairs := []struct{ job, resume string }{
		{"python", "python"},
		{"", ""},
		{"", "python"},
		{"python", ""},
		{"a", "b"}, // "a" is a stop word: the job has no tokens
	}
	for _, pair := range pairs {
		fb := Generate(pair.job, pair.resume, scoring.Score(pair.job, pair.resume))
		assert.NotEmpty(t, fb.Strengths, "strengths for %q/%q", pair.job, pair.resume)
		assert.NotEmpty(t, fb.Weaknesses, "weaknesses for %q/%q", pair.job, pair.resume)
		assert.NotEmpty(t, fb.Suggestions, "suggestions for %q/%q", pair.job, pair.resume)
	}
}

func TestGenerate_FallbackPlaceholderOnEmptyJob(t *testing.T) {
	// "a" is a stop word, so the job has no tokens: nothing can be missing and
	// a long enough resume triggers no other weakness, leaving the fallback.
	resume := strings.TrimSpace(strings.Repeat("word ", 80))
	fb := Generate("a", resume, scoring.Score("a", resume))
	assert.Len(t, fb.Weaknesses, 1)
	assert.Contains(t, fb.Weaknesses[0], "'relevance'")
}

func TestGenerate_MissingKeywordSuggestionNamesTopMissing(t *testing.T) {
	job := "docker kubernetes terraform"
	resume := "python developer"
	fb := Generate(job, resume, scoring.Score(job, resume))

	assert.Contains(t, fb.Suggestions[0], "'docker'")
	assert.Contains(t, fb.Weaknesses[0], "docker and kubernete")
}
