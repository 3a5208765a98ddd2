package reflist

import "fmt"

// ReferenceList is an ordered, duplicate-free list of atom labels.
// Its length fixes the size n of the frame it names; it carries no
// compatibility semantics of its own — compatibility is decided entirely by
// the element package on bit-width / interval structure.
type ReferenceList struct {
	labels []string
	index  map[string]int
}

// New builds a ReferenceList from labels, in order.
// Returns ErrEmptyLabel for any empty string, ErrDuplicateLabel for a
// repeated label.
// Complexity: O(n) time and space for n labels.
func New(labels ...string) (*ReferenceList, error) {
	rl := &ReferenceList{
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for _, l := range labels {
		if err := rl.Append(l); err != nil {
			return nil, err
		}
	}
	return rl, nil
}

// Append adds label at the end of the list.
// Returns ErrEmptyLabel or ErrDuplicateLabel on invalid input.
// Complexity: O(1) amortised.
func (rl *ReferenceList) Append(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if _, ok := rl.index[label]; ok {
		return fmt.Errorf("reflist.Append(%q): %w", label, ErrDuplicateLabel)
	}
	rl.index[label] = len(rl.labels)
	rl.labels = append(rl.labels, label)
	return nil
}

// Len returns the number of labels (== frame size n).
// Complexity: O(1).
func (rl *ReferenceList) Len() int {
	return len(rl.labels)
}

// IndexOf returns the atom index of label and true, or (-1, false) if absent.
// Complexity: O(1).
func (rl *ReferenceList) IndexOf(label string) (int, bool) {
	i, ok := rl.index[label]
	if !ok {
		return -1, false
	}
	return i, true
}

// Label returns the label at atom index i.
// Returns ErrOutOfRange if i is outside [0,Len()).
// Complexity: O(1).
func (rl *ReferenceList) Label(i int) (string, error) {
	if i < 0 || i >= len(rl.labels) {
		return "", fmt.Errorf("reflist.Label(%d): %w", i, ErrOutOfRange)
	}
	return rl.labels[i], nil
}

// Labels returns a defensive copy of the labels in atom-index order.
// Complexity: O(n).
func (rl *ReferenceList) Labels() []string {
	out := make([]string, len(rl.labels))
	copy(out, rl.labels)
	return out
}

// Equal reports whether other has the same labels in the same order.
// Complexity: O(n).
func (rl *ReferenceList) Equal(other *ReferenceList) bool {
	if other == nil || len(rl.labels) != len(other.labels) {
		return false
	}
	for i, l := range rl.labels {
		if other.labels[i] != l {
			return false
		}
	}
	return true
}
