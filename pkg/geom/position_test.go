package geom

import (
	"math/rand"
	"testing"
)

func TestPositionAdjacent(t *testing.T) {
	p := NewPosition(3, 4)
	got := p.Adjacent()
	want := []Position{p.Up(), p.Right(), p.Down(), p.Left()}
	if len(got) != len(want) {
		t.Fatalf("Adjacent() returned %d positions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Adjacent()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIsAdjacentTo(t *testing.T) {
	p := NewPosition(5, 5)
	tests := []struct {
		name string
		q    Position
		want bool
	}{
		{"up", p.Up(), true},
		{"down", p.Down(), true},
		{"left", p.Left(), true},
		{"right", p.Right(), true},
		{"self", p, false},
		{"diagonal", NewPosition(6, 6), false},
		{"two away", NewPosition(7, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.IsAdjacentTo(tt.q); got != tt.want {
				t.Errorf("IsAdjacentTo(%v) = %v, want %v", tt.q, got, tt.want)
			}
			if got := tt.q.IsAdjacentTo(p); got != tt.want {
				t.Errorf("symmetry: %v.IsAdjacentTo(p) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestRandomPositionStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := RandomPosition(7, 4, rng)
		if p.Column < 0 || p.Column >= 7 || p.Row < 0 || p.Row >= 4 {
			t.Fatalf("RandomPosition out of bounds: %v", p)
		}
	}
}

func TestGetCenterPlacement(t *testing.T) {
	tests := []struct {
		name string
		p    Position
		kind CenterKind
		want []Position
	}{
		{"inside cell", NewPosition(0, 0), KindCell, []Position{{0, 0}}},
		{"inside cell, non-origin", NewPosition(2, 2), KindCell, []Position{{1, 1}}},
		{"vertical border", NewPosition(0, 1), KindVerticalBorder, []Position{{0, 0}, {0, 1}}},
		{"horizontal border", NewPosition(1, 0), KindHorizontalBorder, []Position{{0, 0}, {1, 0}}},
		{"intersection", NewPosition(1, 1), KindIntersection, []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := tt.p.GetCenterPlacement()
			if cp.Kind != tt.kind {
				t.Fatalf("Kind = %v, want %v", cp.Kind, tt.kind)
			}
			got := cp.Positions()
			if len(got) != len(tt.want) {
				t.Fatalf("Positions() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Positions()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
