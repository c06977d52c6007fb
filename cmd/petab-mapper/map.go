package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"petab-mapper/internal/ctxlog"
	"petab-mapper/internal/metrics"
	"petab-mapper/internal/plan"
	"petab-mapper/internal/problem"
)

type mapOptions struct {
	problemPath string
	outPath     string
	format      string
	merge       bool
	noWarn      bool
	metricsFile string
}

func newMapCmd(a *app) *cobra.Command {
	var opts mapOptions

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Resolve the parameter mapping of every simulation condition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMap(cmd, a, opts)
		},
	}

	addProblemFlag(cmd, &opts.problemPath)
	cmd.Flags().StringVarP(&opts.outPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVar(&opts.merge, "merge", false, "merge preequilibration and simulation mappings")
	cmd.Flags().BoolVar(&opts.noWarn, "no-warn-unmapped", false, "do not warn about placeholders without overrides")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

func runMap(cmd *cobra.Command, a *app, opts mapOptions) error {
	ctx := cmd.Context()
	logger := ctxlog.FromContext(ctx)

	format, err := plan.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	p, err := problem.Load(opts.problemPath)
	if err != nil {
		return err
	}

	cfg := plan.DefaultConfig()
	cfg.Parallelism = a.cfg.NumThreads
	cfg.MergePreeqAndSim = opts.merge
	cfg.WarnUnmapped = !opts.noWarn

	if opts.metricsFile != "" {
		cfg.Metrics = metrics.New()
	}

	resolved, err := plan.NewResolver(plan.Input{
		Conditions:   p.Conditions,
		Measurements: p.Measurements,
		Parameters:   p.Parameters,
		Observables:  p.Observables,
		Model:        p.Model,
	}, cfg).Resolve(ctx)

	// Metrics are written for failed runs too.
	if werr := cfg.Metrics.WriteTextfile(opts.metricsFile); werr != nil {
		logger.Error("Failed to write metrics", "path", opts.metricsFile, "error", werr)
	}

	if err != nil {
		return fmt.Errorf("failed to resolve mapping: %w", err)
	}

	for _, w := range resolved.Diagnostics.Warnings {
		logger.Warn(w.String())
	}

	logger.Info("Resolved parameter mapping", "conditions", len(resolved.Conditions), "format", format)

	if opts.outPath != "" {
		return plan.WriteFile(resolved, format, opts.outPath)
	}

	data, err := plan.Export(resolved, format)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
