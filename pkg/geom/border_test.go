package geom

import "testing"

func TestBorderCanonicalizesArgumentOrder(t *testing.T) {
	a := NewPosition(0, 0)
	b := NewPosition(0, 1)

	if NewBorder(a, b) != NewBorder(b, a) {
		t.Fatalf("NewBorder(a, b) != NewBorder(b, a)")
	}
}

func TestBorderIsVertical(t *testing.T) {
	vertical := NewBorder(NewPosition(2, 0), NewPosition(2, 1))
	if !vertical.IsVertical() {
		t.Errorf("expected horizontally-adjacent cells to form a vertical wall")
	}

	horizontal := NewBorder(NewPosition(0, 2), NewPosition(1, 2))
	if horizontal.IsVertical() {
		t.Errorf("expected vertically-adjacent cells to form a horizontal wall")
	}
}

func TestBorderUsableAsMapKey(t *testing.T) {
	seen := map[Border]bool{}
	seen[NewBorder(NewPosition(0, 0), NewPosition(0, 1))] = true
	if !seen[NewBorder(NewPosition(0, 1), NewPosition(0, 0))] {
		t.Errorf("border map lookup should be order-independent")
	}
}
