// Package validate implements the "validate" subcommand: checks a player's
// board against a puzzle's objective and prints the resulting ErrorReport.
package validate

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stellargrid/tentai-show/pkg/board"
	"github.com/stellargrid/tentai-show/pkg/puzzle"
	"github.com/stellargrid/tentai-show/pkg/validator"
)

var (
	boardPath     string
	objectivePath string
)

var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val", "v"},
	Short:   "Validate a board against a puzzle's objective",
	Long: `Validate a player's board against a puzzle's declared objective.

Loads both files, runs compute_error, and prints a colorized report: every
non-empty defect bucket in red, or a solved banner in green when the board
matches the objective exactly.

Examples:
  tentai-show validate --board mine.json --objective puzzle.json
  tentai-show val -b mine.yaml -o puzzle.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if boardPath == "" || objectivePath == "" {
			return fmt.Errorf("both --board and --objective are required")
		}

		b, err := loadBoard(boardPath)
		if err != nil {
			return fmt.Errorf("failed to load board: %w", err)
		}

		obj, err := loadObjective(objectivePath)
		if err != nil {
			return fmt.Errorf("failed to load objective: %w", err)
		}

		report := validator.ComputeError(b, obj)
		printReport(report)
		return nil
	},
}

func loadBoard(path string) (*board.Board, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return board.LoadYAML(path)
	}
	return board.LoadJSON(path)
}

func loadObjective(path string) (*puzzle.Objective, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return puzzle.LoadObjectiveYAML(path)
	}
	return puzzle.LoadObjectiveJSON(path)
}

func printReport(report puzzle.ErrorReport) {
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	if report.IsEmpty() {
		green.Println("✓ board solved")
		return
	}

	red.Printf("✗ board has %d defect(s)\n", report.Count())
	if n := len(report.DanglingBorders); n > 0 {
		red.Printf("  dangling borders: %d\n", n)
	}
	if n := len(report.CutCenters); n > 0 {
		red.Printf("  cut centers: %d\n", n)
	}
	if n := len(report.AsymmetricCenters); n > 0 {
		red.Printf("  asymmetric centers: %d\n", n)
	}
	if n := len(report.IncorrectGalaxySizes); n > 0 {
		red.Printf("  incorrect galaxy sizes: %d\n", n)
	}
	if n := len(report.CenterlessCells); n > 0 {
		red.Printf("  centerless cells: %d\n", n)
	}
}

func init() {
	validateCmd.Flags().StringVarP(&boardPath, "board", "b", "", "path to the board file (json or yaml)")
	validateCmd.Flags().StringVarP(&objectivePath, "objective", "o", "", "path to the objective file (json or yaml)")
}

// GetCommand returns the validate command for registration with root.
func GetCommand() *cobra.Command {
	return validateCmd
}
