// Package pipeline drives one conversion run: plan every input file, print or
// schedule it, wait for the scheduler to drain, and summarize.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"convertall/internal/config"
	fileutil "convertall/internal/file"
	"convertall/internal/planner"
	"convertall/internal/task"
)

// Run executes the conversion described by cfg. Dry-run commands are printed
// to out. Failed conversions are logged and counted but never returned; the
// error is reserved for conditions that stop the whole run (input tree not
// readable, output directory not creatable). In-flight processes are always
// drained before Run returns.
func Run(ctx context.Context, cfg config.Config, out io.Writer) (RunStats, error) {
	var stats RunStats

	plan := planner.New(cfg)
	dirs := fileutil.NewDirSet()
	sched := task.NewScheduler(task.Options{Jobs: cfg.Jobs})

	logHeader(cfg)

	runErr := func() error {
		for c, err := range plan.Walk() {
			if err != nil {
				return fmt.Errorf("scan %s: %w", cfg.InputDir, err)
			}
			stats.Found++

			if c.Skip {
				stats.Skipped++
				log.Warn().Str("output", c.OutputPath).Msg("exists, skipped (use --overwrite)")
				continue
			}

			if cfg.DryRun {
				stats.Planned++
				printDryRun(out, c.Task)
				continue
			}

			if err := dirs.Ensure(filepath.Dir(c.Task.OutputPath)); err != nil {
				return fmt.Errorf("output dir for %s: %w", c.InputPath, err)
			}
			if err := sched.Schedule(ctx, c.Task); err != nil {
				return fmt.Errorf("schedule %s: %w", c.InputPath, err)
			}
			stats.Planned++
		}
		return nil
	}()

	// Drain is unconditional: every launched process is observed to completion.
	sched.Drain(context.Background())
	stats.Tasks = sched.Stats()

	if runErr != nil {
		log.Error().Err(runErr).Msg("run aborted")
	}
	logSummary(cfg, &stats)
	return stats, runErr
}

func printDryRun(out io.Writer, t task.Task) {
	fmt.Fprintln(out, t.CommandLine())
	if t.TempPath != "" {
		fmt.Fprintln(out, task.FormatCommand([]string{"mv", t.TempPath, t.OutputPath}))
	}
}

func logHeader(cfg config.Config) {
	evt := log.Info().
		Str("in", cfg.InputDir).
		Str("out", cfg.OutputDir).
		Str("in_ext", cfg.InputExt).
		Str("out_ext", cfg.OutputExt).
		Int("jobs", cfg.Jobs)
	if cfg.TempExt != "" {
		evt = evt.Str("tmp", cfg.TempExt)
	}
	evt.Msg("starting conversion")
	if cfg.DryRun {
		log.Warn().Msg("dry run: commands are printed, not executed")
	}
}

func logSummary(cfg config.Config, stats *RunStats) {
	if cfg.DryRun {
		log.Info().Int("found", stats.Found).Int("skipped", stats.Skipped).Int("planned", stats.Planned).Msg("dry run done")
		return
	}
	evt := log.Info()
	if stats.Tasks.Failed > 0 || stats.Tasks.CommitFailed > 0 {
		evt = log.Warn()
	}
	evt.
		Int("found", stats.Found).
		Int("skipped", stats.Skipped).
		Int("converted", stats.Converted()).
		Int("failed", stats.Tasks.Failed).
		Int("rename_failed", stats.Tasks.CommitFailed).
		Msg("done")
}
