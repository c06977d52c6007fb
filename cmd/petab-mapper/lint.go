package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"petab-mapper/internal/ctxlog"
	"petab-mapper/internal/lint"
	"petab-mapper/internal/metrics"
	"petab-mapper/internal/problem"
)

func newLintCmd(a *app) *cobra.Command {
	var (
		problemPath string
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check a PEtab problem for errors",
		Long: `Check a PEtab problem for errors.

Every violation is printed on its own line. The command exits with status 1
when at least one error was found; warnings and infos do not fail it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := ctxlog.FromContext(ctx)

			p, err := problem.Load(problemPath)
			if err != nil {
				return err
			}

			diags := lint.LintProblem(ctx, p)

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if metricsFile != "" {
				m := metrics.New()
				m.ObserveDiagnostics(diags)

				if err := m.WriteTextfile(metricsFile); err != nil {
					return fmt.Errorf("failed to write metrics: %w", err)
				}
			}

			logger.Info("Lint finished",
				"errors", len(diags.Errors), "warnings", len(diags.Warnings), "infos", len(diags.Infos))

			if !diags.IsValid() {
				return errLintFailed
			}

			fmt.Fprintln(out, "Problem is valid.")

			return nil
		},
	}

	addProblemFlag(cmd, &problemPath)
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}
