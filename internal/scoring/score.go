// Package scoring computes keyword-similarity and ATS-style composite scores
// for a resume against a job description.
package scoring

import (
	"math"
	"regexp"
	"strconv"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// Weights for the ATS composite score components.
const (
	keywordMatchWeight = 0.6
	experienceWeight   = 0.3
	lengthWeight       = 0.1
)

const (
	// keywordSaturation caps a single keyword's similarity contribution: five
	// occurrences of a job term in the resume already saturate it, so keyword
	// stuffing cannot push the raw score far past 100 before the final clamp.
	keywordSaturation = 5

	// lengthTarget is the resume token count considered fully adequate.
	lengthTarget = 200

	// neutralExperienceScore applies when the job states no year requirement.
	neutralExperienceScore = 50
)

// experienceRe matches an integer immediately followed by optional whitespace
// and a years unit. Hyphenated forms ("5-year") do not match; in a range like
// "3-5 years" the integer directly before the unit wins.
var experienceRe = regexp.MustCompile(`(?i)(\d+)\s*(years|yrs|year)`)

// Score computes the similarity score, ATS composite score, matched keywords
// and extracted experience years for one resume. It never fails: malformed or
// empty text degrades to zero/neutral sub-scores.
func Score(jobText, resumeText string) types.ScoreResult {
	jobWords := parsing.UniqueTokens(parsing.Normalize(jobText))
	resumeWords := parsing.Normalize(resumeText)

	freq := make(map[string]int, len(resumeWords))
	for _, word := range resumeWords {
		freq[word]++
	}

	// Each unique job token found in the resume contributes its occurrence
	// count; resumes that repeat job-relevant terms score higher.
	matched := []string{}
	occurrences := 0
	for _, word := range jobWords {
		if count, ok := freq[word]; ok {
			occurrences += count
			matched = append(matched, word)
		}
	}

	similarity := 0.0
	if len(jobWords) > 0 {
		similarity = math.Min(float64(occurrences)/float64(len(jobWords)*keywordSaturation)*100, 100)
	}

	keywordMatch := 0.0
	if len(jobWords) > 0 {
		keywordMatch = float64(len(matched)) / float64(len(jobWords)) * 100
	}

	requiredYears := MaxExperienceYears(jobText)
	candidateYears := MaxExperienceYears(resumeText)
	experience := float64(neutralExperienceScore)
	if requiredYears > 0 {
		experience = math.Min(float64(candidateYears)/float64(requiredYears)*100, 100)
	}

	length := math.Min(float64(len(resumeWords))/lengthTarget*100, 100)

	ats := keywordMatch*keywordMatchWeight + experience*experienceWeight + length*lengthWeight

	return types.ScoreResult{
		SimilarityScore: int(math.Round(similarity)),
		ATSScore:        int(math.Round(math.Min(ats, 100))),
		MatchedKeywords: matched,
		ExperienceYears: candidateYears,
	}
}

// MaxExperienceYears returns the largest year count stated in text, or 0 when
// no experience pattern matches.
func MaxExperienceYears(text string) int {
	years := 0
	for _, match := range experienceRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if n > years {
			years = n
		}
	}
	return years
}
