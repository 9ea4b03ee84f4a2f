// Package eval tallies classification outcomes over a declared class set.
//
// It accumulates counts only; rendering confusion matrices or accuracy
// reports is left to the caller.
package eval

import "fmt"

// ErrUnknownClass indicates a label outside the declared class set.
type ErrUnknownClass struct {
	Class string
}

func (e *ErrUnknownClass) Error() string {
	return fmt.Sprintf("unknown class %q", e.Class)
}

// ConfusionMatrix counts predictions per (actual, predicted) class pair.
//
// Not safe for concurrent use; aggregate per goroutine and merge, or guard
// externally.
type ConfusionMatrix struct {
	classes []string
	idx     map[string]int
	counts  [][]int
	total   int
}

// NewConfusionMatrix creates an empty matrix over the declared classes.
func NewConfusionMatrix(classes []string) *ConfusionMatrix {
	idx := make(map[string]int, len(classes))
	declared := make([]string, len(classes))
	copy(declared, classes)
	for i, c := range declared {
		idx[c] = i
	}

	counts := make([][]int, len(declared))
	for i := range counts {
		counts[i] = make([]int, len(declared))
	}

	return &ConfusionMatrix{
		classes: declared,
		idx:     idx,
		counts:  counts,
	}
}

// Classes returns the declared class set in order.
func (m *ConfusionMatrix) Classes() []string {
	out := make([]string, len(m.classes))
	copy(out, m.classes)
	return out
}

// Add records one outcome.
func (m *ConfusionMatrix) Add(actual, predicted string) error {
	ai, ok := m.idx[actual]
	if !ok {
		return &ErrUnknownClass{Class: actual}
	}
	pi, ok := m.idx[predicted]
	if !ok {
		return &ErrUnknownClass{Class: predicted}
	}

	m.counts[ai][pi]++
	m.total++
	return nil
}

// Count returns the number of outcomes with the given actual and predicted
// classes. Unknown classes count zero.
func (m *ConfusionMatrix) Count(actual, predicted string) int {
	ai, ok := m.idx[actual]
	if !ok {
		return 0
	}
	pi, ok := m.idx[predicted]
	if !ok {
		return 0
	}
	return m.counts[ai][pi]
}

// Total returns the number of recorded outcomes.
func (m *ConfusionMatrix) Total() int { return m.total }

// Correct returns the number of outcomes on the diagonal.
func (m *ConfusionMatrix) Correct() int {
	var correct int
	for i := range m.counts {
		correct += m.counts[i][i]
	}
	return correct
}

// Accuracy returns Correct/Total, or 0 when nothing has been recorded.
func (m *ConfusionMatrix) Accuracy() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.Correct()) / float64(m.total)
}

// ClassAccuracy returns the fraction of outcomes with the given actual class
// that were predicted correctly, or 0 when the class has no outcomes.
func (m *ConfusionMatrix) ClassAccuracy(class string) float64 {
	ai, ok := m.idx[class]
	if !ok {
		return 0
	}

	var row int
	for _, n := range m.counts[ai] {
		row += n
	}
	if row == 0 {
		return 0
	}
	return float64(m.counts[ai][ai]) / float64(row)
}
