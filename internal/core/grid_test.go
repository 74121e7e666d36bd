package core

import "testing"

func TestFloatGridIndexing(t *testing.T) {
	g := NewFloatGrid(4, 3)
	if g.W != 4 || g.H != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", g.W, g.H)
	}
	if len(g.Values()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Values()))
	}

	g.Set(2, 1, 7.5)
	if got := g.At(2, 1); got != 7.5 {
		t.Fatalf("expected 7.5 at (2,1), got %v", got)
	}
	if idx := g.Index(2, 1); g.Values()[idx] != 7.5 {
		t.Fatalf("Index and Set disagree: value at linear index %d is %v", idx, g.Values()[idx])
	}

	g.Add(2, 1, 0.5)
	if got := g.At(2, 1); got != 8 {
		t.Fatalf("expected 8 after Add, got %v", got)
	}

	g.Clear()
	for i, v := range g.Values() {
		if v != 0 {
			t.Fatalf("cell %d not cleared: %v", i, v)
		}
	}
}

func TestFloatGridInBounds(t *testing.T) {
	g := NewFloatGrid(5, 5)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{5, 0, false},
		{0, 5, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Fatalf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestFloatGridOutOfRangePanics(t *testing.T) {
	g := NewFloatGrid(3, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range access")
		}
	}()
	// (-1, 1) would silently land on a valid linear index without the check.
	g.At(-1, 1)
}

func TestFloatGridCopyInto(t *testing.T) {
	g := NewFloatGrid(3, 2)
	g.Set(1, 1, 3.25)
	dst := make([]float64, 6)
	g.CopyInto(dst)
	if dst[g.Index(1, 1)] != 3.25 {
		t.Fatalf("CopyInto lost data: %v", dst)
	}
	dst[0] = 99
	if g.At(0, 0) != 0 {
		t.Fatal("CopyInto must not alias the grid storage")
	}
}
