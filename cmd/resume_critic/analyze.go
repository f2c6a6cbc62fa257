package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-critic/internal/config"
	"github.com/jonathan/resume-critic/internal/engine"
	"github.com/jonathan/resume-critic/internal/fetch"
	"github.com/jonathan/resume-critic/internal/llm"
	"github.com/jonathan/resume-critic/internal/observability"
	"github.com/jonathan/resume-critic/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Critique a resume, optionally against a job posting",
	Long:  "Critique a resume from a text file. Provide a job posting via --job or --job-url for targeted keyword and alignment feedback; omit both for a general review.",
	RunE:  runAnalyze,
}

var (
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeOut        string
	analyzeAPIKey     string
	analyzeModel      string
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeConfig     string
	analyzeNoLLM      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "job-url", "u", "", "URL to fetch job posting from")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write critique JSON to file instead of stdout")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Gemini model name")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for JavaScript-rendered job pages")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted report alongside the JSON")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeNoLLM, "no-llm", false, "Skip the generative model and use heuristics only")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Config{
		Resume:     analyzeResume,
		Job:        analyzeJob,
		JobURL:     analyzeJobURL,
		APIKey:     analyzeAPIKey,
		Model:      analyzeModel,
		UseBrowser: analyzeUseBrowser,
		Verbose:    analyzeVerbose,
	}
	if analyzeConfig != "" {
		fileCfg, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	ctx := cmd.Context()

	resumeText, jobText, err := loadInputs(ctx, cfg)
	if err != nil {
		return err
	}

	critique, err := critique(ctx, cfg, resumeText, jobText)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(critique, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode critique: %w", err)
	}

	if analyzeOut != "" {
		if err := os.WriteFile(analyzeOut, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Critique written to %s\n", analyzeOut)
	} else {
		fmt.Fprintln(os.Stdout, string(out))
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintCritique(critique)
	}

	return nil
}

// loadInputs reads the resume file and resolves the job posting. The file
// read and the URL fetch run concurrently since neither depends on the
// other.
func loadInputs(ctx context.Context, cfg config.Config) (resumeText, jobText string, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := os.ReadFile(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		resumeText = string(data)
		return nil
	})

	switch {
	case cfg.Job != "":
		g.Go(func() error {
			data, err := os.ReadFile(cfg.Job)
			if err != nil {
				return fmt.Errorf("failed to read job file: %w", err)
			}
			jobText = string(data)
			return nil
		})
	case cfg.JobURL != "":
		g.Go(func() error {
			fetched, err := fetch.JobPosting(gctx, cfg.JobURL, cfg.UseBrowser)
			if err != nil {
				return fmt.Errorf("failed to fetch job posting: %w", err)
			}
			jobText = fetched
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return resumeText, jobText, nil
}

// critique runs the analysis. With an API key it drafts a critique with
// the generative model and repairs it; otherwise, or on any generation
// failure, it falls back to the deterministic heuristics.
func critique(ctx context.Context, cfg config.Config, resumeText, jobText string) (*types.Critique, error) {
	eng := engine.New()

	if analyzeNoLLM || cfg.APIKey == "" {
		return eng.ValidateAndRepair(nil, resumeText, jobText), nil
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}

	client, err := llm.NewGeminiClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	draftCtx, cancel := context.WithTimeout(ctx, 90*time.Second)
	defer cancel()

	candidate, schemaValid, err := llm.NewCritic(client).Draft(draftCtx, resumeText, jobText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: generation failed (%v), using heuristics\n", err)
		candidate = nil
	} else if !schemaValid && cfg.Verbose {
		fmt.Fprintln(os.Stderr, "Note: model output did not satisfy the critique schema, repairing")
	}

	return eng.ValidateAndRepair(candidate, resumeText, jobText), nil
}
