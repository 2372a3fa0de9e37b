// Package render implements the "render" subcommand: prints the Unicode
// box-drawing rendering of a player's board, or the declared centers of an
// objective.
package render

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellargrid/tentai-show/pkg/board"
	"github.com/stellargrid/tentai-show/pkg/common"
	"github.com/stellargrid/tentai-show/pkg/geom"
	"github.com/stellargrid/tentai-show/pkg/puzzle"
)

var (
	boardPath     string
	objectivePath string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a board or objective as Unicode box-drawing art",
	Long: `Render a puzzle to the terminal for quick visual inspection.

With --board, renders the walls drawn on a player's board (when --objective
is also given, only the board is drawn). With --objective alone, renders
just the declared galaxy centers as '*' marks over an otherwise empty
half-cell grid — there is no wall layout to draw without a board.

Examples:
  tentai-show render --board mine.json
  tentai-show render --objective puzzle.yaml --board mine.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case boardPath != "":
			b, err := loadBoard(boardPath)
			if err != nil {
				return fmt.Errorf("failed to load board: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderBoard(b))
			return nil
		case objectivePath != "":
			obj, err := loadObjective(objectivePath)
			if err != nil {
				return fmt.Errorf("failed to load objective: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderObjective(obj))
			return nil
		default:
			return fmt.Errorf("please provide --board or --objective to render")
		}
	},
}

// renderBoard draws every drawn wall as a box-drawing glyph, reusing the
// same intersection-glyph table the universe and galaxy renderers use.
func renderBoard(b *board.Board) string {
	var sb strings.Builder
	for row := 0; row <= b.Height(); row++ {
		for col := 0; col <= b.Width(); col++ {
			sb.WriteString(cellGlyph(b, row, col))
		}
		if row != b.Height() {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// cellGlyph chooses the box-drawing glyph for the intersection at
// (row, col): an edge is drawn wherever a wall separates the two cells on
// that side, with the outer frame always drawn.
func cellGlyph(b *board.Board, row, col int) string {
	bottomRight := geom.NewPosition(row, col)
	bottomLeft := bottomRight.Left()
	topLeft := bottomLeft.Up()
	topRight := bottomRight.Up()

	wall := func(p, q geom.Position) bool {
		if !b.IsInside(p) || !b.IsInside(q) {
			return true
		}
		return b.IsWall(geom.NewBorder(p, q))
	}

	top := row != 0 && wall(topLeft, topRight)
	right := col != b.Width() && wall(topRight, bottomRight)
	bottom := row != b.Height() && wall(bottomLeft, bottomRight)
	left := col != 0 && wall(topLeft, bottomLeft)

	return common.BoxGlyph[common.BoxGlyphIndex(top, right, bottom, left)]
}

func renderObjective(obj *puzzle.Objective) string {
	var sb strings.Builder
	centers := make(map[[2]int]bool, len(obj.Centers))
	for _, c := range obj.Centers {
		centers[[2]int{c.Position.Row, c.Position.Column}] = true
	}

	for row := 0; row < 2*obj.Height+1; row++ {
		for col := 0; col < 2*obj.Width+1; col++ {
			if centers[[2]int{row, col}] {
				sb.WriteByte('*')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
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

func init() {
	renderCmd.Flags().StringVarP(&boardPath, "board", "b", "", "path to a board file (json or yaml)")
	renderCmd.Flags().StringVarP(&objectivePath, "objective", "o", "", "path to an objective file (json or yaml)")
}

// GetCommand returns the render command for registration with root.
func GetCommand() *cobra.Command {
	return renderCmd
}
