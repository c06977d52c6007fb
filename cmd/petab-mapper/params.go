package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"petab-mapper/internal/parameter"
	"petab-mapper/internal/problem"
	"petab-mapper/internal/table"
)

func newCreateParameterTableCmd(_ *app) *cobra.Command {
	var (
		problemPath string
		outPath     string
		scale       string
		lower       float64
		upper       float64
	)

	cmd := &cobra.Command{
		Use:   "create-parameter-table",
		Short: "Generate a parameter table for a problem",
		Long: `Generate a parameter table listing every parameter the problem needs.

All parameters are estimated on the given scale with the given bounds;
nominal values are taken from the model defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := problem.Load(problemPath)
			if err != nil {
				return err
			}

			pt, err := parameter.CreateTable(p.Model, p.Conditions, p.Measurements, p.Observables,
				parameter.TableOptions{
					Scale:      parameter.Scale(scale),
					LowerBound: table.Literal(lower),
					UpperBound: table.Literal(upper),
				})
			if err != nil {
				return err
			}

			if outPath == "" {
				return table.WriteParameterTable(cmd.OutOrStdout(), pt)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			defer f.Close()

			if err := table.WriteParameterTable(f, pt); err != nil {
				return err
			}

			return f.Close()
		},
	}

	addProblemFlag(cmd, &problemPath)
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&scale, "scale", string(parameter.Log10), "parameter scale: lin, log or log10")
	cmd.Flags().Float64Var(&lower, "lower-bound", 1e-3, "lower bound on linear scale")
	cmd.Flags().Float64Var(&upper, "upper-bound", 1e3, "upper bound on linear scale")

	return cmd
}
