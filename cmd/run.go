package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/venturelab/venturesim/internal/app"
	"github.com/venturelab/venturesim/internal/assessment"
	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/grading"
	"github.com/venturelab/venturesim/internal/llm"
	"github.com/venturelab/venturesim/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	recorder := assessment.NewStoreRecorder(st)
	svc := &assessment.Service{Repo: recorder}

	provider, err := buildProvider(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Open-ended answers will be scored with the built-in rubric.")
	} else {
		svc.Grader = grading.NewService(provider, grading.DefaultConfig())
	}

	return app.Run(app.Options{
		Service:  svc,
		Recorder: recorder,
	})
}

// runCmd replays a scripted answer file through the engine without the TUI.
// Answers are keyed by question ID; free-text questions get the rubric's
// fallback score, which keeps replays deterministic.
var runCmd = &cobra.Command{
	Use:   "run <answers.json>",
	Short: "Replay a scripted answer file and print the report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read answer file: %w", err)
		}
		var answers map[string]catalog.ResponseData
		if err := json.Unmarshal(raw, &answers); err != nil {
			return fmt.Errorf("parse answer file: %w", err)
		}

		ctx := context.Background()
		svc := &assessment.Service{}
		run := assessment.New()

		for {
			q, ok := run.CurrentQuestion()
			if !ok {
				break
			}
			data, ok := answers[q.ID]
			if !ok {
				return fmt.Errorf("no scripted answer for question %q", q.ID)
			}
			res, err := svc.Submit(ctx, run, data)
			if err != nil {
				return fmt.Errorf("submit %q: %w", q.ID, err)
			}
			if res.Completed {
				break
			}
		}

		printSummary(assessment.BuildSummary(run))
		return nil
	},
}

// buildProvider resolves LLM configuration from VENTURESIM_-prefixed env
// vars, falling back to probing well-known API key variables.
func buildProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	cfg, err := llm.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if cfg.Provider == "" {
		var ok bool
		cfg, ok = llm.DiscoverConfig()
		if !ok {
			return nil, errors.New("no API key found in environment")
		}
	}
	return llm.NewProvider(ctx, cfg, st.EventRepo())
}
