package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"petab-mapper/internal/config"
	"petab-mapper/internal/ctxlog"
	"petab-mapper/internal/logging"
)

// errLintFailed is returned when the linter reports errors. The diagnostics
// are already printed, so main only sets the exit code.
var errLintFailed = errors.New("problem has lint errors")

// app carries state shared by all subcommands.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "petab-mapper",
		Short:         "Resolve PEtab parameter mappings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			a.cfg = cfg

			logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

			return nil
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	root.AddCommand(
		newLintCmd(a),
		newMapCmd(a),
		newCreateParameterTableCmd(a),
	)

	return root
}

// addProblemFlag registers the required problem file flag.
func addProblemFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, "yaml", "y", "", "PEtab problem YAML file")
	_ = cmd.MarkFlagRequired("yaml")
}
