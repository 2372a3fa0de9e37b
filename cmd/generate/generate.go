// Package generate implements the "generate" subcommand: runs the
// beam-search generator and writes the resulting puzzle objective.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stellargrid/tentai-show/pkg/common"
	"github.com/stellargrid/tentai-show/pkg/generator"
	"github.com/stellargrid/tentai-show/pkg/puzzle"
	"github.com/stellargrid/tentai-show/pkg/ui"
)

var (
	width      int
	height     int
	seed       int64
	iterations int
	branches   int
	outPath    string
	format     string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate a new puzzle",
	Long: `Generate a new Tentai Show puzzle with the stochastic beam-search
generator and write the resulting objective to disk.

Examples:
  tentai-show generate --width 10 --height 10
  tentai-show gen -W 12 -H 8 --seed 42 --out puzzle.json
  tentai-show g -W 6 -H 6 --format yaml --out puzzle.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("--width and --height must both be positive, got %dx%d", width, height)
		}

		spin := ui.NewSpinner(fmt.Sprintf("generating %dx%d puzzle...", width, height))
		spin.Start()

		result := generator.Generate(width, height, generator.Options{
			Seed:       seed,
			Iterations: iterations,
			Branches:   branches,
		})
		spin.Stop()

		common.Info("generated %dx%d puzzle with seed %d", width, height, result.Seed)
		common.InfoNoNewline("%s\n", result.Universe.Render())

		if outPath == "" {
			return nil
		}

		obj := puzzle.ObjectiveFromUniverse(result.Universe)
		switch format {
		case "yaml":
			if err := puzzle.SaveObjectiveYAML(outPath, obj); err != nil {
				return fmt.Errorf("failed to write objective: %w", err)
			}
		case "json", "":
			if err := puzzle.SaveObjectiveJSON(outPath, obj); err != nil {
				return fmt.Errorf("failed to write objective: %w", err)
			}
		default:
			return fmt.Errorf("unknown --format %q, want json or yaml", format)
		}

		common.Info("wrote objective to %s", outPath)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&width, "width", "W", 0, "grid width (required)")
	generateCmd.Flags().IntVarP(&height, "height", "H", 0, "grid height (required)")
	generateCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "RNG seed (0 = random, logged for reproducibility)")
	generateCmd.Flags().IntVar(&iterations, "iterations", 0, "override the beam search's iteration count (0 = 10*width*height)")
	generateCmd.Flags().IntVar(&branches, "branches", 0, "override the beam search's branch factor per round (0 = 5)")
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the generated objective to this path")
	generateCmd.Flags().StringVarP(&format, "format", "f", "json", "output format when --out is set: json or yaml")
}

// GetCommand returns the generate command for registration with root.
func GetCommand() *cobra.Command {
	return generateCmd
}
