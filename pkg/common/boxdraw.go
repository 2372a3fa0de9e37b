package common

// BoxGlyph maps which of the four unit edges incident to a grid intersection
// are walls (top, right, bottom, left) to the two-character Unicode
// box-drawing glyph for that intersection. Shared by the Universe and
// Galaxy renderers, which differ only in how they decide whether an edge is
// a wall.
var BoxGlyph = [16]string{
	"  ", "╴ ", "╷ ", "┐ ",
	"╶─", "──", "┌─", "┬─",
	"╵ ", "┘ ", "│ ", "┤ ",
	"└─", "┴─", "├─", "┼─",
}

// BoxGlyphIndex packs the four boolean edge flags into the index BoxGlyph is
// keyed by: bit 3 = top, bit 2 = right, bit 1 = bottom, bit 0 = left.
func BoxGlyphIndex(top, right, bottom, left bool) int {
	idx := 0
	if top {
		idx |= 8
	}
	if right {
		idx |= 4
	}
	if bottom {
		idx |= 2
	}
	if left {
		idx |= 1
	}
	return idx
}
