// Package item provides the Item domain entity and the ordered playback sequence.
package item

import "github.com/osa030/playaxis/internal/host"

// Item is one visit target of the play axis.
type Item struct {
	Label string           // Display string
	Token host.SelectionID // Host selection handle, passed back untouched
}

// Sequence is an ordered, index-addressable list of items.
// It is immutable once built; a data update replaces it wholesale.
type Sequence struct {
	items []Item
}

// NewSequence creates a sequence from a copy of items.
func NewSequence(items []Item) Sequence {
	cp := make([]Item, len(items))
	copy(cp, items)
	return Sequence{items: cp}
}

// Len returns the number of items.
func (s Sequence) Len() int {
	return len(s.items)
}

// At returns the item at index i.
func (s Sequence) At(i int) (Item, bool) {
	if i < 0 || i >= len(s.items) {
		return Item{}, false
	}
	return s.items[i], true
}

// InRange reports whether i addresses an item.
func (s Sequence) InRange(i int) bool {
	return i >= 0 && i < len(s.items)
}

// Labels returns all labels in order.
func (s Sequence) Labels() []string {
	labels := make([]string, len(s.items))
	for i, it := range s.items {
		labels[i] = it.Label
	}
	return labels
}
