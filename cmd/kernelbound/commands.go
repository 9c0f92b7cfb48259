// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/thetasharp/config"
	"github.com/katalvlaran/thetasharp/shuffle"
	"github.com/katalvlaran/thetasharp/shuffle/badgerstore"
	"github.com/katalvlaran/thetasharp/theta"
)

type runFlags struct {
	configPath  string
	parallel    bool
	workers     int
	metricsAddr string
	cacheDir    string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "kernelbound",
		Short:        "Upper bounds on the kernel of θ# for Chabauty–Kim functions",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.AddCommand(newRunCmd())

	return root
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute a kernel bound for every configured run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			return execute(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML configuration file (defaults apply when empty)")
	cmd.Flags().BoolVar(&f.parallel, "parallel", false, "precompute the dual-PBW cache with a worker pool")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "worker count for --parallel (0 = physical cores)")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().StringVar(&f.cacheDir, "cache-dir", "", "persist basis expansions in a Badger database here")

	return cmd
}

// resolveConfig loads the file and lets explicitly set flags win.
func resolveConfig(cmd *cobra.Command, f runFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("parallel") {
		cfg.Parallel = f.parallel
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}
	if flags.Changed("cache-dir") {
		cfg.CacheDir = f.cacheDir
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// execute runs every configured query in order on one registry and prints
// one line per bound. The first failure aborts the remaining runs.
func execute(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	runID := uuid.New()
	logger := newLogger(errOut, cfg.Level()).With(slog.String("run_id", runID.String()))

	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, logger)
		defer shutdown(srv, logger)
	}

	var store shuffle.Store = shuffle.NewMemoryStore()
	if cfg.CacheDir != "" {
		bs, err := badgerstore.Open(badgerstore.Config{Path: cfg.CacheDir, Logger: logger})
		if err != nil {
			return err
		}
		defer func() {
			if err := bs.Close(); err != nil {
				logger.Error("closing expansion cache", slog.Any("error", err))
			}
		}()
		store = bs
	}
	extra := []theta.Option{theta.WithLogger(logger), theta.WithStore(store)}
	// one evaluator serves every run with the same weight bound, so later
	// runs reuse the θ# images of earlier ones
	reg := theta.NewRegistry()

	logger.Info("starting",
		slog.Int("weight_bound", cfg.WeightBound),
		slog.Int("indices", cfg.Indices),
		slog.Int("runs", len(cfg.Runs)),
		slog.Int("workers", cfg.WorkerCount()))

	for _, r := range cfg.Runs {
		b, err := reg.ComputeBound(ctx, cfg.WeightBound, r.Degree, cfg.Options(r, extra...)...)
		if err != nil {
			return fmt.Errorf("degree %d: %w", r.Degree, err)
		}
		fmt.Fprintf(out, "D=%d degree=%d fixed=%t rows=%d cols=%d rank=%d upper_bound=%d\n",
			b.WeightBound, b.Degree, b.Fixed, b.Rows, b.Cols, b.Rank, b.Nullity)
	}

	return nil
}
