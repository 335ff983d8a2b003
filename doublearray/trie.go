package doublearray

// NotFound is returned by Lookup for absent keys.
const NotFound int32 = -1

// Trie answers queries over a built or loaded Store. It never mutates the
// Store, so queries may run concurrently as long as nothing else writes to it.
type Trie struct {
	store *Store
}

func newTrie(store *Store) *Trie {
	store.Shrink()

	return &Trie{store: store}
}

// traverse follows the transition from parent by code.
func (t *Trie) traverse(parent int32, code byte) (int32, bool) {
	child := t.store.Base(parent) + int32(code)

	if t.store.Check(child) == parent {
		return child, true
	}

	return NotFound, false
}

// Contain reports whether key is stored in the trie.
func (t *Trie) Contain(key string) bool {
	buf, err := encodeKey(key, true)
	if err != nil {
		return false
	}

	var parent = rootID

	for _, code := range buf {
		child, ok := t.traverse(parent, code)
		if !ok {
			return false
		}

		if t.store.Base(child) <= 0 {
			return true // leaf
		}

		parent = child
	}

	return false
}

// Get returns the record stored for key.
func (t *Trie) Get(key string) (int32, bool) {
	buf, err := encodeKey(key, true)
	if err != nil {
		return NotFound, false
	}

	var node = rootID

	for _, code := range buf {
		child, ok := t.traverse(node, code)
		if !ok {
			return NotFound, false
		}

		node = child
	}

	if base := t.store.Base(node); base <= 0 {
		return leafRecord(base), true
	}

	return NotFound, false
}

// Lookup returns the record stored for key or NotFound.
func (t *Trie) Lookup(key string) int32 {
	val, _ := t.Get(key)

	return val
}

// CommonPrefixSearch returns every stored key that is a prefix of key, shortest
// first. Val is NotFound when the matched node carries no record.
func (t *Trie) CommonPrefixSearch(key string) []KV {
	buf, err := encodeKey(key, false)
	if err != nil {
		return nil
	}

	var (
		parent = rootID
		result []KV
	)

	for i, code := range buf {
		child, ok := t.traverse(parent, code)
		if !ok {
			break // no longer prefix can match either
		}

		parent = child

		leaf, ok := t.traverse(child, TermCode)
		if !ok {
			continue
		}

		var kv = KV{Key: decodeKey(buf[:i+1]), Val: NotFound}

		if base := t.store.Base(leaf); base <= 0 {
			kv.Val = leafRecord(base)
		}

		result = append(result, kv)
	}

	return result
}

// Size returns the number of committed slots.
func (t *Trie) Size() int {
	return t.store.Size()
}

// Calc returns slot usage statistics.
func (t *Trie) Calc() Stats {
	return t.store.Calc()
}

// Dump renders the underlying arrays for debugging.
func (t *Trie) Dump() string {
	return t.store.Dump()
}

// BaseArray returns the BASE array for persistence. It must not be modified.
func (t *Trie) BaseArray() []int32 {
	return t.store.BaseArray()
}

// CheckArray returns the CHECK array for persistence. It must not be modified.
func (t *Trie) CheckArray() []int32 {
	return t.store.CheckArray()
}
