package doublearray

import (
	"math"

	"go.uber.org/zap"
)

const rootID int32 = 0

// Stats summarises slot usage of a Store.
type Stats struct {
	All        int
	Unused     int
	Efficiency float64
}

// Store owns the BASE and CHECK arrays together with the free slot list
// threaded through them.
//
// A Store is not safe for concurrent mutation. Reads never mutate it.
type Store struct {
	base  []int32
	check []int32

	firstFree   int32 // head of the free list
	expandRatio int
	logger      *zap.Logger
}

// NewStore returns an empty Store: a root and a free list over the remaining slots.
func NewStore(opts ...Option) *Store {
	return newStore(newConfig(opts))
}

func newStore(cfg config) *Store {
	var s = &Store{
		base:        make([]int32, cfg.initialSize),
		check:       make([]int32, cfg.initialSize),
		firstFree:   rootID + 1,
		expandRatio: cfg.expandRatio,
		logger:      cfg.logger,
	}

	s.base[rootID] = 1
	s.check[rootID] = rootID

	initFree(s.base, s.check, int(rootID)+1, int(rootID)+1)

	return s
}

// LoadStore adopts a BASE/CHECK pair as is. The arrays are not validated.
func LoadStore(base, check []int32, opts ...Option) *Store {
	var (
		cfg = newConfig(opts)
		s   = &Store{
			base:        base,
			check:       check,
			expandRatio: cfg.expandRatio,
			logger:      cfg.logger,
		}
	)

	s.firstFree = int32(s.Size())

	for i := int(rootID) + 1; i < len(check); i++ {
		if check[i] < 0 {
			s.firstFree = int32(i)
			break
		}
	}

	return s
}

// initFree writes the virtual free list values into base[baseFrom:] and check[checkFrom:].
func initFree(base, check []int32, baseFrom, checkFrom int) {
	for i := baseFrom; i < len(base); i++ {
		base[i], _ = virtualSlot(int32(i)).encode()
	}

	for i := checkFrom; i < len(check); i++ {
		_, check[i] = virtualSlot(int32(i)).encode()
	}
}

// Size returns the committed number of slots.
func (s *Store) Size() int {
	if len(s.base) > len(s.check) {
		return len(s.base)
	}

	return len(s.check)
}

// Base returns BASE[i]; slots past the end read as free.
func (s *Store) Base(i int32) int32 {
	switch {
	case i < 0:
		return 0
	case int(i) >= len(s.base):
		base, _ := virtualSlot(i).encode()
		return base
	}

	return s.base[i]
}

// Check returns CHECK[i]; slots past the end read as free.
func (s *Store) Check(i int32) int32 {
	switch {
	case i < 0:
		return -1
	case int(i) >= len(s.check):
		_, check := virtualSlot(i).encode()
		return check
	}

	return s.check[i]
}

// Slot returns the decoded view of slot i.
func (s *Store) Slot(i int32) Slot {
	return decodeSlot(s.Base(i), s.Check(i))
}

// SetBase writes BASE[i], growing the arrays when i is past the end.
func (s *Store) SetBase(i, val int32) {
	if int(i) >= len(s.base) {
		s.grow(int(i))
	}

	s.base[i] = val
}

// SetCheck writes CHECK[i], growing the arrays when i is past the end.
func (s *Store) SetCheck(i, val int32) {
	if int(i) >= len(s.check) {
		s.grow(int(i))
	}

	s.check[i] = val
}

// FirstFree returns the head of the free list.
func (s *Store) FirstFree() int32 {
	return s.firstFree
}

func (s *Store) setFirstFree(i int32) {
	s.firstFree = i
}

func (s *Store) setPrev(i, prev int32) {
	s.SetBase(i, -prev)
}

func (s *Store) setNext(i, next int32) {
	s.SetCheck(i, -next)
}

// take unlinks the free slot i and hands it to parent.
func (s *Store) take(i, parent int32) {
	var sl = s.Slot(i)

	if i == s.firstFree {
		s.setFirstFree(sl.Next)
	} else {
		s.setNext(sl.Prev, sl.Next)
	}

	s.setPrev(sl.Next, sl.Prev)
	s.SetCheck(i, parent)
}

// isUnused reports whether slot i can be handed out.
func (s *Store) isUnused(i int32) bool {
	return i != rootID && s.Check(i) < 0
}

// grow reallocates both arrays to minSize * expandRatio slots.
func (s *Store) grow(minSize int) {
	if minSize >= math.MaxInt32 {
		panic(ErrCapacity)
	}

	var (
		oldSize = s.Size()
		newSize = minSize * s.expandRatio
	)

	if newSize <= minSize {
		newSize = minSize + 1
	}

	if newSize > math.MaxInt32 {
		newSize = math.MaxInt32
	}

	if newSize < oldSize {
		newSize = oldSize
	}

	var (
		base  = make([]int32, newSize)
		check = make([]int32, newSize)
	)

	initFree(base, check, len(s.base), len(s.check))
	copy(base, s.base)
	copy(check, s.check)

	s.base, s.check = base, check

	s.linkBoundary(oldSize)

	s.logger.Debug("double array reallocated",
		zap.Int("from", oldSize),
		zap.Int("to", newSize),
	)
}

// linkBoundary joins the free list of the old region with the new one.
//
// A free old tail already points past the boundary, either by its initial
// values or by a splice made just before the reallocation, so it is left alone.
func (s *Store) linkBoundary(oldSize int) {
	if oldSize == 0 {
		return
	}

	var (
		last = int32(oldSize - 1)
		head = int32(oldSize)
	)

	if s.check[last] < 0 {
		return
	}

	for i := last - 1; i > rootID; i-- {
		if s.check[i] < 0 {
			s.setPrev(head, i)
			return
		}
	}

	s.setPrev(head, rootID) // no free slot below the boundary
}

// Shrink drops the free tail, keeping exactly one free slot after the last used one.
func (s *Store) Shrink() {
	var last = len(s.check) - 1

	for last > int(rootID) && s.check[last] < 0 {
		last--
	}

	var size = last + 2

	if size < len(s.base) {
		s.base = append([]int32(nil), s.base[:size]...)
	}

	if size < len(s.check) {
		s.check = append([]int32(nil), s.check[:size]...)
	}

	if int(s.firstFree) > s.Size() {
		s.firstFree = int32(s.Size())
	}
}

// Calc counts used and unused slots.
func (s *Store) Calc() Stats {
	var (
		all  = len(s.check)
		used = s.occupancy().count()
		st   = Stats{All: all, Unused: all - used}
	)

	if all > 0 {
		st.Efficiency = float64(used) / float64(all)
	}

	return st
}

// BaseArray returns the BASE array verbatim (not a copy).
func (s *Store) BaseArray() []int32 {
	return s.base
}

// CheckArray returns the CHECK array verbatim (not a copy).
func (s *Store) CheckArray() []int32 {
	return s.check
}

// freeList walks the free list from its head up to the physical end.
func (s *Store) freeList() []int32 {
	var (
		size = int32(s.Size())
		list []int32
	)

	for i := s.firstFree; i < size; {
		list = append(list, i)

		next := s.Slot(i).Next
		if next <= i {
			break // a broken (loaded) list
		}

		i = next
	}

	return list
}
