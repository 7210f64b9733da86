package core

import "testing"

func TestLayoutTubesSingleRow(t *testing.T) {
	area := NewRect(0, 0, 80, 20)
	rects := LayoutTubes(6, 4, area)

	if len(rects) != 6 {
		t.Fatalf("len = %d, expected 6", len(rects))
	}
	for i, r := range rects {
		if r.W != TubeWidth || r.H != TubeHeight(4) {
			t.Errorf("tube %d size = %dx%d", i, r.W, r.H)
		}
		if r.Y != rects[0].Y {
			t.Errorf("tube %d on a different row", i)
		}
		if r.X < area.X || r.Right() > area.Right() || r.Bottom() > area.Bottom() {
			t.Errorf("tube %d outside the area: %+v", i, r)
		}
		if i > 0 && r.X < rects[i-1].Right() {
			t.Errorf("tubes %d and %d overlap", i-1, i)
		}
	}

	// Centered horizontally
	left := rects[0].X - area.X
	right := area.Right() - rects[5].Right()
	if d := left - right; d > 1 || d < -1 {
		t.Errorf("row not centered: left margin %d, right margin %d", left, right)
	}
}

func TestLayoutTubesWraps(t *testing.T) {
	// 20 columns fit three tubes per row (5+2+5+2+5 = 19).
	rects := LayoutTubes(7, 3, NewRect(0, 0, 20, 40))
	if len(rects) != 7 {
		t.Fatalf("len = %d, expected 7", len(rects))
	}
	if rects[0].Y == rects[3].Y {
		t.Error("fourth tube should start a new row")
	}
	if rects[0].Y != rects[2].Y {
		t.Error("first three tubes should share a row")
	}
}

func TestLayoutTubesEmpty(t *testing.T) {
	if rects := LayoutTubes(0, 4, NewRect(0, 0, 80, 24)); rects != nil {
		t.Errorf("expected nil layout, got %v", rects)
	}
}

func TestHitTest(t *testing.T) {
	rects := LayoutTubes(3, 4, NewRect(0, 0, 40, 12))

	for i, r := range rects {
		cx, cy := r.X+r.W/2, r.Y+r.H/2
		if got := HitTest(rects, cx, cy); got != i {
			t.Errorf("HitTest at center of tube %d = %d", i, got)
		}
		if got := HitTest(rects, r.X, r.Bottom()); got != i {
			t.Errorf("HitTest on label of tube %d = %d", i, got)
		}
	}
	if got := HitTest(rects, 0, 0); got != -1 {
		t.Errorf("HitTest in margin = %d, expected -1", got)
	}
}
