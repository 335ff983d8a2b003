package doublearray

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
)

// maxBase keeps base + code inside the int32 index space.
const maxBase = math.MaxInt32 - 0xFF

// KV represents a key-record pair.
type KV struct {
	Key string
	Val int32
}

// Builder packs a set of keys into a fresh Store. A Builder builds once.
type Builder struct {
	cfg   config
	store *Store
	keys  []KV
	built bool
}

// entry is an encoded key (terminated by TermCode) with its record.
type entry struct {
	key []byte
	val int32
}

// sibling is a run of entries sharing the same byte at some depth.
type sibling struct {
	code  int32
	start int
	size  int
}

// NewBuilder returns a Builder over an empty Store.
func NewBuilder(opts ...Option) *Builder {
	var cfg = newConfig(opts)

	return &Builder{
		cfg:   cfg,
		store: newStore(cfg),
	}
}

// Append buffers a key-record pair for Build. It is not validated until then.
func (b *Builder) Append(key string, val int32) *Builder {
	b.keys = append(b.keys, KV{key, val})

	return b
}

// Build packs the appended keys in any order.
func (b *Builder) Build() (*Trie, error) {
	return b.BuildFrom(b.keys, false)
}

// BuildFrom packs the given keys. With sorted set the keys must already be in
// byte order; they are then checked rather than sorted.
//
// All keys are validated before the Store is touched: a failed build leaves it
// as it was.
func (b *Builder) BuildFrom(keys []KV, sorted bool) (trie *Trie, err error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}

	entries, err := prepare(keys, sorted)
	if err != nil {
		return nil, err
	}

	b.built = true

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, ErrCapacity) {
				trie, err = nil, e
				return
			}
			panic(r)
		}
	}()

	if len(entries) > 0 {
		b.pack(entries, rootID, 0, 0, len(entries))
	}

	trie = newTrie(b.store)

	st := b.store.Calc()
	b.cfg.logger.Debug("double array built",
		zap.Int("keys", len(entries)),
		zap.Int("size", st.All),
		zap.Int("unused", st.Unused),
		zap.Float64("efficiency", st.Efficiency),
	)

	return trie, nil
}

// prepare encodes, validates and orders the keys.
func prepare(keys []KV, sorted bool) ([]entry, error) {
	var entries = make([]entry, len(keys))

	for i, kv := range keys {
		buf, err := encodeKey(kv.Key, true)
		if err != nil {
			return nil, err
		}

		if kv.Val < 0 {
			return nil, fmt.Errorf("%w: %q -> %d", ErrNegativeValue, kv.Key, kv.Val)
		}

		entries[i] = entry{key: buf, val: kv.Val}
	}

	if !sorted {
		sort.SliceStable(entries, func(i, j int) bool {
			return bytes.Compare(entries[i].key, entries[j].key) < 0
		})
	}

	for i := 1; i < len(entries); i++ {
		var (
			prev = entries[i-1].key
			cur  = entries[i].key
		)

		switch cmp := bytes.Compare(prev, cur); {
		case cmp == 0:
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, decodeKey(cur[:len(cur)-1]))
		case cmp > 0:
			return nil, fmt.Errorf("%w: %q before %q", ErrUnsorted,
				decodeKey(prev[:len(prev)-1]), decodeKey(cur[:len(cur)-1]))
		}
	}

	return entries, nil
}

// pack places the children of parent for entries[start:start+size] at the given
// depth and descends into every non-terminal child.
func (b *Builder) pack(entries []entry, parent int32, depth, start, size int) {
	var (
		children = groupSiblings(entries, depth, start, size)
		base     = b.findBase(children)
	)

	b.commit(entries, parent, base, children)

	for _, ch := range children {
		if ch.code == TermCode {
			continue
		}

		b.pack(entries, base+ch.code, depth+1, ch.start, ch.size)
	}
}

// groupSiblings splits a sorted range into runs sharing the byte at depth.
func groupSiblings(entries []entry, depth, start, size int) []sibling {
	var children []sibling

	for i := start; i < start+size; i++ {
		code := int32(entries[i].key[depth])

		if n := len(children); n > 0 && children[n-1].code == code {
			children[n-1].size++
			continue
		}

		children = append(children, sibling{code: code, start: i, size: 1})
	}

	return children
}

// findBase walks the free list for the first base where every child fits.
func (b *Builder) findBase(children []sibling) int32 {
	var (
		store = b.store
		first = children[0].code
	)

	for curr := store.FirstFree(); ; curr = store.Slot(curr).Next {
		base := curr - first

		if base < 1 {
			continue // BASE <= 0 would read as a leaf
		}

		if base > maxBase {
			panic(ErrCapacity)
		}

		if b.fits(base, children) {
			return base
		}
	}
}

func (b *Builder) fits(base int32, children []sibling) bool {
	for _, ch := range children {
		if !b.store.isUnused(base + ch.code) {
			return false
		}
	}

	return true
}

// commit links the children to parent and writes the leaf records.
func (b *Builder) commit(entries []entry, parent, base int32, children []sibling) {
	b.store.SetBase(parent, base)

	for _, ch := range children {
		child := base + ch.code

		b.store.take(child, parent)

		if ch.code == TermCode {
			b.store.SetBase(child, leafBase(entries[ch.start].val))
		}
	}
}
