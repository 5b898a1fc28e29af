// Package screening orchestrates text extraction, scoring, feedback generation
// and ranking over a batch of uploaded resumes.
package screening

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/feedback"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// ErrNoReadableResumes is returned when every uploaded file failed extraction.
// Callers must distinguish this from a successful empty candidate list.
var ErrNoReadableResumes = errors.New("no readable resumes found")

// File is one uploaded resume: a display name plus its raw bytes.
type File struct {
	Name string
	Data []byte
}

// Extractor produces plain text from an uploaded file. Implementations return
// an error for unsupported or undecodable files; the screener treats any
// error as "unreadable" and skips the file.
type Extractor interface {
	ExtractText(ctx context.Context, name string, data []byte) (string, error)
}

// Options configures a Screener. Zero values fall back to defaults.
type Options struct {
	// ExtractTimeout bounds a single file's extraction.
	ExtractTimeout time.Duration
	// Concurrency limits how many extractions run in parallel.
	Concurrency int
	// Logger receives skipped-file warnings. Defaults to the standard logger.
	Logger *log.Logger
}

const (
	defaultExtractTimeout = 30 * time.Second
	defaultConcurrency    = 4
)

// Screener runs the scoring pipeline over resume batches.
type Screener struct {
	extractor Extractor
	opts      Options
}

// New creates a Screener using the given extractor collaborator.
func New(extractor Extractor, opts Options) *Screener {
	if opts.ExtractTimeout <= 0 {
		opts.ExtractTimeout = defaultExtractTimeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Screener{extractor: extractor, opts: opts}
}

// Screen extracts, scores and ranks the given files against the job text.
// Unreadable files (extraction error or blank text) are logged and skipped.
// When no file survives, it returns ErrNoReadableResumes. Candidates are
// sorted by ATS score descending, ties by similarity score descending, and
// remaining ties keep upload order.
func (s *Screener) Screen(ctx context.Context, jobText string, files []File) ([]types.Candidate, error) {
	// Extractions run in parallel but land in index-addressed slots, so the
	// final ranking is deterministic regardless of completion order.
	texts := make([]string, len(files))
	unreadable := make([]bool, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, file := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			fileCtx, cancel := context.WithTimeout(gCtx, s.opts.ExtractTimeout)
			defer cancel()

			text, err := s.extractor.ExtractText(fileCtx, file.Name, file.Data)
			if err != nil {
				// Unreadable files degrade to a skip, never abort the batch.
				s.opts.Logger.Printf("[screen] skipping unreadable resume %q: %v", file.Name, err)
				unreadable[i] = true
				return nil
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := make([]types.Candidate, 0, len(files))
	for i, file := range files {
		if unreadable[i] {
			continue
		}
		text := texts[i]
		if strings.TrimSpace(text) == "" {
			s.opts.Logger.Printf("[screen] skipping resume %q: no text extracted", file.Name)
			continue
		}
		result := scoring.Score(jobText, text)
		candidates = append(candidates, types.Candidate{
			Name:        file.Name,
			ScoreResult: result,
			Feedback:    feedback.Generate(jobText, text, result),
		})
	}

	if len(candidates) == 0 {
		return nil, ErrNoReadableResumes
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].ATSScore != candidates[j].ATSScore {
			return candidates[i].ATSScore > candidates[j].ATSScore
		}
		return candidates[i].SimilarityScore > candidates[j].SimilarityScore
	})
	return candidates, nil
}
