package lines

import "sort"

// Locator finds the first spectral line at or below a target frequency in a
// strictly descending line list. The integral consumes it as an interface so
// the transport simulation can supply its own search routine.
type Locator interface {
	// Locate returns the index of the first line with frequency <= target,
	// or count if every line lies above the target.
	Locate(lineNu []float64, target float64, count int) int
}

// BinarySearch is the default Locator.
type BinarySearch struct{}

// Locate implements Locator via Search.
func (BinarySearch) Locate(lineNu []float64, target float64, count int) int {
	return Search(lineNu[:count], target)
}

// Search returns the index of the first entry in the descending-sorted list
// that is <= target, or len(lineNu) if no such entry exists. A target at or
// above the first entry returns 0.
func Search(lineNu []float64, target float64) int {
	return sort.Search(len(lineNu), func(i int) bool {
		return lineNu[i] <= target
	})
}
