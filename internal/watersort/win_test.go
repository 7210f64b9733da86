package watersort

import "testing"

func TestIsSolved(t *testing.T) {
	tests := []struct {
		name  string
		tubes [][]Color
		want  bool
	}{
		{"all empty", [][]Color{nil, nil, nil}, true},
		{"full uniform and empty", [][]Color{
			{ColorRed, ColorRed, ColorRed},
			{ColorBlue, ColorBlue, ColorBlue},
			nil,
		}, true},
		{"mixed tube", [][]Color{
			{ColorRed, ColorBlue, ColorRed},
			{ColorBlue, ColorBlue, ColorRed},
			nil,
		}, false},
		{"uniform but partial", [][]Color{
			{ColorRed, ColorRed, ColorRed},
			{ColorBlue, ColorBlue},
			{ColorBlue},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tubes := make([]*Tube, len(tt.tubes))
			for i, colors := range tt.tubes {
				tubes[i] = mustTube(t, 3, colors...)
			}
			if got := IsSolved(NewBoard(tubes...)); got != tt.want {
				t.Errorf("IsSolved() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettledCount(t *testing.T) {
	board := NewBoard(
		mustTube(t, 2, ColorRed, ColorRed),
		mustTube(t, 2, ColorBlue),
		mustTube(t, 2),
		mustTube(t, 2, ColorGreen, ColorGreen),
	)
	if got := SettledCount(board); got != 2 {
		t.Errorf("SettledCount() = %d, want 2", got)
	}
}
