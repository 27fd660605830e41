// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ManuGH/childproc/internal/childproc"
	"github.com/ManuGH/childproc/internal/config"
	xglog "github.com/ManuGH/childproc/internal/log"
)

type runOptions struct {
	dir            string
	inheritHandles bool
	killAfter      time.Duration
	count          int
	metricsFile    string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [flags] -- <command line>",
		Short: "Spawn a command and wait for it, or kill it after a deadline",
		Long: "Spawn the command line one or more times from the same configuration.\n" +
			"Each child is waited on until it exits. With --kill-after the child is polled\n" +
			"and killed once the deadline passes. The exit code is the first non-zero\n" +
			"child exit code.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(cmd)
			if err != nil {
				return err
			}
			applyRunFlags(cmd, opts, &cfg)
			if opts.count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", opts.count)
			}

			ctx := xglog.ContextWithRunID(cmd.Context(), uuid.NewString())
			codes, err := runChildren(ctx, cfg, strings.Join(args, " "), opts.count)
			if opts.metricsFile != "" {
				if werr := prometheus.WriteToTextfile(opts.metricsFile, prometheus.DefaultGatherer); werr != nil {
					err = errors.Join(err, fmt.Errorf("write metrics: %w", werr))
				}
			}
			if err != nil {
				return err
			}
			for _, code := range codes {
				if code != 0 {
					return &exitError{code: int(code)}
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.dir, "dir", "", "Working directory of the child (default: inherited)")
	f.BoolVar(&opts.inheritHandles, "inherit-handles", childproc.DefaultInheritHandles, "Let the child inherit the caller's handles")
	f.DurationVar(&opts.killAfter, "kill-after", 0, "Kill the child if it is still running after this long (0 = never)")
	f.IntVar(&opts.count, "count", 1, "Number of children to spawn from the same configuration")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "Write lifecycle metrics in textfile-collector format to this path after the run")
	return cmd
}

// applyRunFlags lets explicitly set flags override the loaded configuration.
func applyRunFlags(cmd *cobra.Command, opts *runOptions, cfg *config.AppConfig) {
	f := cmd.Flags()
	if f.Changed("dir") {
		cfg.WorkingDir = opts.dir
	}
	if f.Changed("inherit-handles") {
		cfg.InheritHandles = opts.inheritHandles
	}
	if f.Changed("kill-after") {
		cfg.KillAfter = opts.killAfter
	}
}

// runChildren spawns count children from one Builder and supervises them
// concurrently. The returned codes are in spawn order.
func runChildren(ctx context.Context, cfg config.AppConfig, command string, count int) ([]uint32, error) {
	builder := cfg.Builder(command)

	codes := make([]uint32, count)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			status, err := superviseChild(gctx, builder, cfg)
			if err != nil {
				return fmt.Errorf("child %d: %w", i, err)
			}
			codes[i] = status.Code()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return codes, nil
}

// superviseChild spawns one child and reaps it. Without a kill deadline it
// blocks in Wait; otherwise it polls TryWait at the configured interval and
// kills the child once the deadline passes. Cancelling ctx kills the child.
func superviseChild(ctx context.Context, b childproc.Builder, cfg config.AppConfig) (childproc.ExitStatus, error) {
	child, err := b.Spawn()
	if err != nil {
		return childproc.ExitStatus{}, err
	}
	logger := xglog.WithContext(ctx, xglog.Derive(func(c *zerolog.Context) {
		*c = c.Str(xglog.FieldComponent, "run").
			Uint32(xglog.FieldPID, child.ID()).
			Str(xglog.FieldCommand, child.Command())
	}))
	logger.Info().
		Str(xglog.FieldEvent, "run.spawned").
		Msg("child started")

	stop := context.AfterFunc(ctx, func() {
		logger.Warn().
			Err(context.Cause(ctx)).
			Str(xglog.FieldEvent, "run.cancelled").
			Msg("run cancelled, killing child")
		_ = child.Kill()
	})
	defer stop()

	var status childproc.ExitStatus
	if cfg.KillAfter <= 0 {
		status, err = child.Wait()
	} else {
		status, err = pollThenKill(ctx, child, cfg, logger)
	}
	if err != nil {
		return status, err
	}

	logger.Info().
		Str(xglog.FieldEvent, "run.exited").
		Uint32(xglog.FieldExitCode, status.Code()).
		Msg("child exited")
	return status, nil
}

func pollThenKill(ctx context.Context, child *childproc.Child, cfg config.AppConfig, logger zerolog.Logger) (childproc.ExitStatus, error) {
	deadline := time.Now().Add(cfg.KillAfter)
	limiter := rate.NewLimiter(rate.Every(cfg.PollInterval), 1)

	for time.Now().Before(deadline) {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				// superviseChild kills the child on cancellation.
				return child.Wait()
			}
			break
		}
		status, exited, err := child.TryWait()
		if err != nil {
			return status, err
		}
		if exited {
			return status, nil
		}
	}

	logger.Warn().
		Str(xglog.FieldEvent, "run.kill").
		Dur("kill_after", cfg.KillAfter).
		Msg("deadline passed, killing child")
	if err := child.Kill(); err != nil {
		// The child may have exited between the last poll and the kill.
		if status, exited, terr := child.TryWait(); terr == nil && exited {
			return status, nil
		}
		return childproc.ExitStatus{}, err
	}
	return child.Wait()
}
