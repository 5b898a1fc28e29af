// Package feedback synthesizes human-readable screening feedback from a
// resume's score result: strengths, weaknesses, suggestions and skill gaps.
package feedback

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// maxListedTerms bounds the missing/unique term lists used in sentences.
	maxListedTerms = 3
	// briefResumeWords is the token count below which a resume is called brief.
	briefResumeWords = 75
	// shortResumeWords is the token count below which expansion is suggested.
	shortResumeWords = 100
)

// Generate derives feedback sentences from the job text, resume text and the
// scorer's output. Each category always contains at least one sentence; a
// generic fallback covers the case where no specific condition triggered.
func Generate(jobText, resumeText string, scores types.ScoreResult) types.Feedback {
	jobWords := parsing.UniqueTokens(parsing.Normalize(jobText))
	resumeWords := parsing.Normalize(resumeText)

	jobSet := toSet(jobWords)
	resumeSet := toSet(resumeWords)

	// Up to three job terms the resume lacks, in job-token order, and up to
	// three resume terms the job lacks, in resume order.
	missingKeywords := []string{}
	for _, word := range jobWords {
		if _, ok := resumeSet[word]; ok {
			continue
		}
		missingKeywords = append(missingKeywords, word)
		if len(missingKeywords) == maxListedTerms {
			break
		}
	}
	uniqueResumeWords := []string{}
	for _, word := range resumeWords {
		if _, ok := jobSet[word]; ok {
			continue
		}
		uniqueResumeWords = append(uniqueResumeWords, word)
		if len(uniqueResumeWords) == maxListedTerms {
			break
		}
	}

	requiredYears := scoring.MaxExperienceYears(jobText)
	wordCount := len(resumeWords)

	var strengths, weaknesses, suggestions []string

	if len(scores.MatchedKeywords) > 0 {
		topMatches := strings.Join(firstN(scores.MatchedKeywords, 2), " and ")
		strengths = append(strengths, fmt.Sprintf("Your resume aligns well with the job through keywords like %s.", topMatches))
	}
	if scores.ExperienceYears > 0 {
		strengths = append(strengths, fmt.Sprintf("You highlight %d years of experience, adding credibility.", scores.ExperienceYears))
	}
	if len(uniqueResumeWords) > 0 {
		strengths = append(strengths, fmt.Sprintf("The inclusion of '%s' sets your resume apart.", uniqueResumeWords[0]))
	}

	if len(missingKeywords) > 0 {
		missing := strings.Join(firstN(missingKeywords, 2), " and ")
		weaknesses = append(weaknesses, fmt.Sprintf("Your resume misses critical job terms such as %s.", missing))
	}
	if requiredYears > 0 && scores.ExperienceYears == 0 {
		weaknesses = append(weaknesses, fmt.Sprintf("No experience years specified, while the job expects %d years.", requiredYears))
	} else if requiredYears > 0 && scores.ExperienceYears < requiredYears {
		weaknesses = append(weaknesses, fmt.Sprintf("With %d years, you fall %d year(s) short.", scores.ExperienceYears, requiredYears-scores.ExperienceYears))
	}
	if wordCount < briefResumeWords {
		weaknesses = append(weaknesses, fmt.Sprintf("The resume is brief (%d words), potentially lacking detail.", wordCount))
	}

	if len(missingKeywords) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Add '%s' to your resume to better match the job.", missingKeywords[0]))
	}
	if scores.ExperienceYears > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Elaborate on your %d-year experience with examples.", scores.ExperienceYears))
	} else {
		suggestions = append(suggestions, "Include specific years or project details to quantify your experience.")
	}
	if len(uniqueResumeWords) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Emphasize how '%s' relates to the job.", uniqueResumeWords[0]))
	} else if wordCount < shortResumeWords {
		suggestions = append(suggestions, fmt.Sprintf("Expand your resume (currently %d words) with more details.", wordCount))
	}

	// Skill gaps: vocabulary terms in the job but not the resume.
	skillGaps := []string{}
	for _, skill := range parsing.ExtractSkills(jobText) {
		if _, ok := resumeSet[skill]; ok {
			continue
		}
		skillGaps = append(skillGaps, skill)
	}

	if len(strengths) == 0 {
		strengths = append(strengths, fmt.Sprintf("Your resume has some content (%d words), but could emphasize skills more.", wordCount))
	}
	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, fmt.Sprintf("No major gaps, but it could highlight terms like '%s'.", firstOr(jobWords, "relevance")))
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, fmt.Sprintf("Consider adding details to align with '%s'.", firstOr(jobWords, "job needs")))
	}

	return types.Feedback{
		Strengths:   strengths,
		Weaknesses:  weaknesses,
		Suggestions: suggestions,
		SkillGaps:   skillGaps,
	}
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func firstOr(items []string, fallback string) string {
	if len(items) > 0 {
		return items[0]
	}
	return fallback
}
