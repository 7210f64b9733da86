package core

import "testing"

// rowText reads row y back as plain runes.
func rowText(s *Screen, y int) string {
	runes := make([]rune, s.Width())
	for x := range runes {
		runes[x] = s.GetCell(x, y).Rune
	}
	return string(runes)
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if cell := s.GetCell(x, y); cell != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds writes are dropped and reads come back blank.
	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetColored(p[0], p[1], 'A', ColorBlue)
		if cell := s.GetCell(p[0], p[1]); cell != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], cell)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), 'X', ColorBlue)

	s.Clear()

	for y := range 4 {
		if got := rowText(s, y); got != "    " {
			t.Errorf("row %d after Clear = %q", y, got)
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "pour", ColorGreen)

	if got := rowText(s, 1)[:6]; got != "  pour" {
		t.Errorf("row 1 = %q", got)
	}
	if s.GetCell(5, 1).Color != ColorGreen {
		t.Error("text should carry its color")
	}

	s.DrawTextColored(17, 2, "abcdef", ColorDefault)
	if got := rowText(s, 2)[17:]; got != "abc" {
		t.Errorf("clipped row = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorDefault)
	if got := rowText(s, 0); got != "    ab    " {
		t.Errorf("row 0 = %q, expected centered text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := rowText(s, y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should carry its color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'X', ColorRed)
	s.SetColored(4, 4, 'Y', ColorDefault)

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size after Resize = %dx%d", s.Width(), s.Height())
	}
	if cell := s.GetCell(1, 1); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("content within the new bounds should survive, got %+v", cell)
	}

	s.Resize(6, 6)
	if s.GetCell(4, 4) != blankCell {
		t.Error("content dropped by shrinking should not reappear")
	}
}
