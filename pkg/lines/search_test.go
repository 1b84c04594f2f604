package lines

import "testing"

func TestSearch_DescendingList(t *testing.T) {
	lineNu := []float64{9, 7, 5, 3, 1}

	tests := []struct {
		name   string
		target float64
		want   int
	}{
		{"above all lines", 10, 0},
		{"exact first line", 9, 0},
		{"between first and second", 8, 1},
		{"exact interior line", 5, 2},
		{"between interior lines", 4, 3},
		{"exact last line", 1, 4},
		{"below all lines", 0.5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Search(lineNu, tt.target); got != tt.want {
				t.Errorf("Search(%g) = %d, want %d", tt.target, got, tt.want)
			}
		})
	}
}

func TestSearch_EmptyList(t *testing.T) {
	if got := Search(nil, 1); got != 0 {
		t.Errorf("Search on empty list = %d, want 0", got)
	}
}

func TestBinarySearch_ImplementsLocator(t *testing.T) {
	var loc Locator = BinarySearch{}
	lineNu := []float64{9, 7, 5}

	if got := loc.Locate(lineNu, 6, len(lineNu)); got != 2 {
		t.Errorf("Locate(6) = %d, want 2", got)
	}
	// The count argument restricts the searched prefix.
	if got := loc.Locate(lineNu, 6, 2); got != 2 {
		t.Errorf("Locate(6) over 2 lines = %d, want 2", got)
	}
}
