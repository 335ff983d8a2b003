package doublearray

import (
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// scenarioKeys mixes ASCII and multi-byte keys sharing prefixes.
var scenarioKeys = []KV{
	{"a", 1},
	{"abc", 2},
	{"奈良", 3},
	{"奈良先端", 4},
	{"奈良先端科学技術大学院大学", 5},
	{"ト", 6},
	{"トト", 7},
	{"トトロ", 8},
}

// getKeys returns total distinct fake keys with their records.
func getKeys(total int) []KV {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		seen  = make(map[string]struct{}, total)
		keys  = make([]KV, 0, total)
	)

	for len(keys) < total {
		key := faker.Sentence(4)

		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		keys = append(keys, KV{key, int32(len(keys))})
	}

	return keys
}

func sortedCopy(keys []KV) []KV {
	var out = append([]KV(nil), keys...)

	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})

	return out
}

func mustBuild(t testing.TB, keys []KV, opts ...Option) *Trie {
	t.Helper()

	trie, err := NewBuilder(opts...).BuildFrom(keys, false)
	require.NoError(t, err)
	require.NotNil(t, trie)

	return trie
}

// checkStructure verifies that every used slot is reachable from its parent.
func checkStructure(t testing.TB, s *Store) {
	t.Helper()

	for i := int32(1); int(i) < s.Size(); i++ {
		sl := s.Slot(i)
		if sl.Kind != Used {
			continue
		}

		parent := s.Slot(sl.Parent)
		require.Equal(t, Used, parent.Kind, "slot %d: parent %d is free", i, sl.Parent)
		require.GreaterOrEqual(t, parent.Base, int32(1), "slot %d: parent %d has no children", i, sl.Parent)

		code := i - parent.Base
		require.True(t, code >= 0 && code <= 0xFF, "slot %d: code %d out of range", i, code)

		if sl.IsLeaf() {
			require.Equal(t, int32(TermCode), code, "slot %d: leaf not reached by the terminal code", i)
		}
	}
}

// freeSlots lists every slot with CHECK < 0 in ascending order.
func freeSlots(s *Store) []int32 {
	var free []int32

	for i := int32(1); int(i) < s.Size(); i++ {
		if s.Check(i) < 0 {
			free = append(free, i)
		}
	}

	return free
}
