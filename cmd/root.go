package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stellargrid/tentai-show/cmd/generate"
	"github.com/stellargrid/tentai-show/cmd/render"
	"github.com/stellargrid/tentai-show/cmd/validate"
	"github.com/stellargrid/tentai-show/pkg/common"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tentai-show",
	Short: "Galaxies puzzle generator and validator",
	Long: `tentai-show generates and validates Tentai Show (Galaxies) puzzles:
grids partitioned into point-symmetric, connected galaxies, each owning
exactly one declared center.

It provides commands for:
  - Generating new puzzles with a stochastic beam-search generator
  - Validating a player's board against a puzzle's declared objective
  - Rendering a board as Unicode box-drawing art, or an objective's centers`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose
		return nil
	},
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(generate.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
	rootCmd.AddCommand(render.GetCommand())
}
