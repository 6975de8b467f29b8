// Package commands implements the polysolve subcommands.
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/polysolve"
	"github.com/njchilds90/polysolve/internal/cli/config"
	"github.com/njchilds90/polysolve/internal/logging"
)

// ErrUnsolved is returned when at least one equation could not be solved.
var ErrUnsolved = errors.New("equations could not be solved")

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <equation>...",
		Short: "Solve polynomial equations of degree at most 2",
		Long: `Solve each equation and print the steps taken.

Equations take the form "<left> = <right>", where each side is a sum of
terms such as 3x^2, -x or 7. The equation is first rewritten as
ax^2+bx+c=0, then solved as a quadratic, a linear equation, or reported
as having infinite or no solutions.`,
		Example: `  polysolve solve "x^2 + 2x + 1 = 0"
  polysolve solve "2x + 4 = 0" "x^2 + x + 1 = 0" -o table
  polysolve solve "x^2 - 3x + 2 = 0" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := logging.FromContext(cmd.Context())

			outs := make([]outcome, 0, len(args))
			failed := 0
			for _, eq := range args {
				r, err := polysolve.Solve(eq)
				if err != nil {
					failed++
					logger.Warn("solve failed", "equation", eq, "error", err)
				} else {
					logger.Debug("solved", "equation", eq, "case", r.Solution.Case.String(), "steps", len(r.Steps))
				}
				outs = append(outs, outcome{Equation: eq, Result: r, Err: err})
			}

			if err := render(cmd.OutOrStdout(), cfg.Output, cfg.Color, outs); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d %w", failed, len(args), ErrUnsolved)
			}
			return nil
		},
	}
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <equation>...",
		Short: "Print equations in standard form",
		Long:  `Reduce each equation to P(x)=0 and print it in the standard form ax^2+bx^1+c=0.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, eq := range args {
				m, err := polysolve.ParseEquation(eq)
				if err != nil {
					return fmt.Errorf("%s: %w", eq, err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), polysolve.Format(m))
			}
			return nil
		},
	}
}

// NewToolsCommand creates the tools command.
func NewToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool schema",
		Long:  `Print the JSON schema of the tools served on POST /tool, for agent registration.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := polysolve.ToolSpec()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), spec)
			return err
		},
	}
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display polysolve version information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "polysolve v%s\n", version)
		},
	}
}
