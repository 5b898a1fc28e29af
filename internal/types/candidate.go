// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Document represents one uploaded resume after text extraction: the original
// filename plus the raw extracted text. Immutable once built.
type Document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// ScoreResult holds the computed match scores for one resume against a job description.
// Both scores are clamped to [0,100]. MatchedKeywords is deduplicated and preserves
// the first-seen order of the job description's tokens.
type ScoreResult struct {
	SimilarityScore int      `json:"similarityScore"`
	ATSScore        int      `json:"atsScore"`
	MatchedKeywords []string `json:"matchedKeywords"`
	ExperienceYears int      `json:"experienceYears"`
}

// Feedback holds qualitative screening feedback. Strengths, Weaknesses and
// Suggestions are never empty; each falls back to a single generic sentence
// when no specific condition triggered. SkillGaps may be empty.
type Feedback struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
	SkillGaps   []string `json:"skillGaps,omitempty"`
}

// Candidate joins a resume's display name with its scores and feedback.
// Built once per readable uploaded file, immutable for the duration of one
// screening request.
type Candidate struct {
	Name string `json:"name"`
	ScoreResult
	Feedback Feedback `json:"feedback"`
}

// ScreeningReport is the artifact written by the CLI: the ranked candidate
// list for one screening run.
type ScreeningReport struct {
	GeneratedAt string      `json:"generated_at"` // RFC3339 format
	JobFile     string      `json:"job_file,omitempty"`
	Candidates  []Candidate `json:"candidates"`
}
