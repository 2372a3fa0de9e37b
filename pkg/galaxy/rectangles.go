package galaxy

import "github.com/stellargrid/tentai-show/pkg/geom"

// Rectangles decomposes the galaxy into axis-aligned rectangles by
// repeatedly finding the largest rectangle fully inside the remaining cells,
// removing it, and recursing. Ties on largest-area break toward the
// earliest-encountered rectangle. The result lists the innermost
// (smallest, found deepest in the recursion) rectangle first and the
// largest last.
func (g *Galaxy) Rectangles() []geom.Rectangle {
	positions := make(map[geom.Position]struct{}, len(g.positions))
	for p := range g.positions {
		positions[p] = struct{}{}
	}
	return rectanglesInternal(positions)
}

func rectanglesInternal(positions map[geom.Position]struct{}) []geom.Rectangle {
	if len(positions) == 0 {
		return nil
	}

	minRow, maxRow, minCol, maxCol := boundsOf(positions)
	width := maxCol - minCol

	height := make([]int, width)
	left := make([]int, width)
	right := make([]int, width)
	for i := range left {
		left[i] = minCol
		right[i] = maxCol
	}

	var best geom.Rectangle
	bestArea := -1

	for row := minRow; row < maxRow; row++ {
		for col := minCol; col < maxCol; col++ {
			idx := col - minCol
			if _, ok := positions[geom.NewPosition(row, col)]; ok {
				height[idx]++
			} else {
				height[idx] = 0
			}
		}

		currentLeft := minCol
		for col := minCol; col < maxCol; col++ {
			idx := col - minCol
			if _, ok := positions[geom.NewPosition(row, col)]; ok {
				if currentLeft > left[idx] {
					left[idx] = currentLeft
				}
			} else {
				left[idx] = 0
				currentLeft = col + 1
			}
		}

		currentRight := maxCol
		for col := maxCol - 1; col >= minCol; col-- {
			idx := col - minCol
			if _, ok := positions[geom.NewPosition(row, col)]; ok {
				if currentRight < right[idx] {
					right[idx] = currentRight
				}
			} else {
				right[idx] = maxCol
				currentRight = col
			}
		}

		for col := minCol; col < maxCol; col++ {
			idx := col - minCol
			rect := geom.NewRectangle(row-height[idx]+1, row+1, left[idx], right[idx])
			if rect.Area() > bestArea {
				bestArea = rect.Area()
				best = rect
			}
		}
	}

	for _, p := range best.Positions() {
		delete(positions, p)
	}

	rectangles := rectanglesInternal(positions)
	return append(rectangles, best)
}

func boundsOf(positions map[geom.Position]struct{}) (minRow, maxRow, minCol, maxCol int) {
	first := true
	for p := range positions {
		if first {
			minRow, maxRow, minCol, maxCol = p.Row, p.Row+1, p.Column, p.Column+1
			first = false
			continue
		}
		if p.Row < minRow {
			minRow = p.Row
		}
		if p.Row+1 > maxRow {
			maxRow = p.Row + 1
		}
		if p.Column < minCol {
			minCol = p.Column
		}
		if p.Column+1 > maxCol {
			maxCol = p.Column + 1
		}
	}
	return
}
