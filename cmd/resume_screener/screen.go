package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

var (
	screenJobPath    string
	screenOutputPath string
	screenConfigPath string
	screenVerbose    bool
)

var screenCmd = &cobra.Command{
	Use:   "screen [resume files...]",
	Short: "Score and rank resume files against a job description",
	Long: `Screen extracts text from the given resume files (.txt or .pdf), scores each
against the job description and prints the ranked candidates. Unreadable files
are skipped with a warning.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScreen,
}

func init() {
	screenCmd.Flags().StringVar(&screenJobPath, "job", "", "Path to job description text file (required)")
	screenCmd.Flags().StringVar(&screenOutputPath, "json", "", "Write the screening report JSON to this path")
	screenCmd.Flags().StringVar(&screenConfigPath, "config", "", "Path to JSON config file")
	screenCmd.Flags().BoolVar(&screenVerbose, "verbose", false, "Print a detailed per-candidate breakdown")
	_ = screenCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg := config.Config{}
	if screenConfigPath != "" {
		loaded, err := config.Load(screenConfigPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.Config{ExtractTimeoutMS: 30000, Concurrency: 4})
	if screenOutputPath != "" {
		cfg.Output = screenOutputPath
	}

	jobText, err := os.ReadFile(screenJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	files := make([]screening.File, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read resume %s: %w", path, err)
		}
		files = append(files, screening.File{Name: filepath.Base(path), Data: data})
	}

	screener := screening.New(ingestion.NewFileExtractor(), screening.Options{
		ExtractTimeout: time.Duration(cfg.ExtractTimeoutMS) * time.Millisecond,
		Concurrency:    cfg.Concurrency,
	})

	candidates, err := screener.Screen(cmd.Context(), string(jobText), files)
	if err != nil {
		if errors.Is(err, screening.ErrNoReadableResumes) {
			return fmt.Errorf("no readable resumes among %d file(s); supported types are .txt and .pdf", len(files))
		}
		return fmt.Errorf("screening failed: %w", err)
	}

	if screenVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRankedCandidates(candidates)
	} else {
		for rank, c := range candidates {
			fmt.Printf("%2d. %-30s ATS %3d  similarity %3d  %d year(s)\n",
				rank+1, c.Name, c.ATSScore, c.SimilarityScore, c.ExperienceYears)
		}
	}

	if cfg.Output != "" {
		if err := writeReport(cfg.Output, screenJobPath, candidates); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", cfg.Output)
	}
	return nil
}

// writeReport marshals the ranked candidates into a screening report, checks
// it against the report schema and writes it out.
func writeReport(path, jobPath string, candidates []types.Candidate) error {
	report := types.ScreeningReport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		JobFile:     filepath.Base(jobPath),
		Candidates:  candidates,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := schemas.ValidateReport(data); err != nil {
		return fmt.Errorf("report failed schema validation: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
