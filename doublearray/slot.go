package doublearray

import "fmt"

// SlotKind tells whether a slot belongs to the trie or to the free list.
type SlotKind uint8

const (
	Free SlotKind = iota
	Used
)

// Slot is a decoded view of one BASE/CHECK pair.
//
// For a Used slot Parent and Base are set; for a Free slot Prev and Next are.
type Slot struct {
	Kind SlotKind

	Parent int32
	Base   int32

	Prev int32
	Next int32
}

func decodeSlot(base, check int32) Slot {
	if check < 0 {
		return Slot{Kind: Free, Prev: -base, Next: -check}
	}

	return Slot{Kind: Used, Parent: check, Base: base}
}

// encode returns the BASE and CHECK values the slot is stored as.
func (sl Slot) encode() (base, check int32) {
	if sl.Kind == Free {
		return -sl.Prev, -sl.Next
	}

	return sl.Base, sl.Parent
}

// IsLeaf reports whether a used slot holds a record rather than children.
func (sl Slot) IsLeaf() bool {
	return sl.Kind == Used && sl.Base <= 0
}

// Record returns the record of a leaf slot.
func (sl Slot) Record() int32 {
	return leafRecord(sl.Base)
}

func (sl Slot) String() string {
	switch {
	case sl.Kind == Free:
		return fmt.Sprintf("<free|prev:%d|next:%d>", sl.Prev, sl.Next)
	case sl.IsLeaf():
		return fmt.Sprintf("<leaf|parent:%d|rec:%d>", sl.Parent, sl.Record())
	default:
		return fmt.Sprintf("<node|parent:%d|base:%d>", sl.Parent, sl.Base)
	}
}

func leafBase(rec int32) int32 {
	return -rec - 1
}

func leafRecord(base int32) int32 {
	return -base - 1
}

// virtualSlot is what a never-materialised slot i reads as.
func virtualSlot(i int32) Slot {
	return Slot{Kind: Free, Prev: i - 1, Next: i + 1}
}
