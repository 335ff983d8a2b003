package doublearray

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuild_Scenario(t *testing.T) {
	t.Parallel()

	trie := mustBuild(t, scenarioKeys)

	assert.True(t, trie.Contain("a"))
	assert.Equal(t, int32(2), trie.Lookup("abc"))

	for _, kv := range scenarioKeys {
		assert.True(t, trie.Contain(kv.Key), kv.Key)
		assert.Equal(t, kv.Val, trie.Lookup(kv.Key), kv.Key)
	}

	assert.Equal(t, []KV{
		{"奈良", 3},
		{"奈良先端", 4},
		{"奈良先端科学技術大学院大学", 5},
	}, trie.CommonPrefixSearch("奈良先端科学技術大学院大学"))

	assert.Equal(t, []KV{
		{"ト", 6},
		{"トト", 7},
		{"トトロ", 8},
	}, trie.CommonPrefixSearch("トトロ"))
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	trie, err := NewBuilder().BuildFrom(nil, false)
	require.NoError(t, err)

	for _, key := range []string{"", "a", "abc", "奈良", "\x00"} {
		assert.False(t, trie.Contain(key), key)
		assert.Equal(t, NotFound, trie.Lookup(key), key)
		assert.Empty(t, trie.CommonPrefixSearch(key), key)
	}

	assert.Equal(t, int32(1), trie.BaseArray()[0])
	assert.Equal(t, 2, trie.Size())
}

func TestBuild_Append(t *testing.T) {
	t.Parallel()

	trie, err := NewBuilder().
		Append("cow", 12).
		Append("apple", 1).
		Append("bird", 4).
		Append("", 99).
		Build()
	require.NoError(t, err)

	assert.Equal(t, int32(12), trie.Lookup("cow"))
	assert.Equal(t, int32(1), trie.Lookup("apple"))
	assert.Equal(t, int32(4), trie.Lookup("bird"))
	assert.Equal(t, int32(99), trie.Lookup(""), "the empty key is a regular key")
	assert.Equal(t, []KV{{"cow", 12}}, trie.CommonPrefixSearch("cow"), "the empty prefix is never reported")
}

func TestBuild_Layout(t *testing.T) {
	t.Parallel()

	trie := mustBuild(t, []KV{{"a", 1}})

	var (
		base  = trie.BaseArray()
		check = trie.CheckArray()
	)

	// root children start at 1 so that 'a' lands on 98; the leaf takes slot 1
	require.Len(t, base, 100)
	require.Len(t, check, 100)

	assert.Equal(t, int32(1), base[0])
	assert.Equal(t, int32(0), check[0])
	assert.Equal(t, int32(1), base[98])
	assert.Equal(t, int32(0), check[98])
	assert.Equal(t, int32(-2), base[1])
	assert.Equal(t, int32(98), check[1])
	assert.Equal(t, Free, trie.store.Slot(99).Kind)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Keys   []KV
		Sorted bool
		ExpErr error
	}{
		{[]KV{{"ok", 1}, {"\xff\xfe", 2}}, false, ErrEncoding},
		{[]KV{{"a\x00b", 1}}, false, ErrEncoding},
		{[]KV{{"ok", 1}, {"neg", -5}}, false, ErrNegativeValue},
		{[]KV{{"b", 1}, {"a", 2}, {"b", 3}}, false, ErrDuplicateKey},
		{[]KV{{"a", 1}, {"a", 1}}, true, ErrDuplicateKey},
		{[]KV{{"b", 1}, {"a", 2}}, true, ErrUnsorted},
		{[]KV{{"ab", 1}, {"a", 2}}, true, ErrUnsorted},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#v,%#v", tcase.Keys, tcase.Sorted)
		)

		t.Run(name, func(t *testing.T) {
			var (
				builder = NewBuilder(WithInitialSize(64))
				base    = append([]int32(nil), builder.store.BaseArray()...)
				check   = append([]int32(nil), builder.store.CheckArray()...)
			)

			trie, err := builder.BuildFrom(tcase.Keys, tcase.Sorted)

			require.ErrorIs(t, err, tcase.ExpErr)
			assert.Nil(t, trie)

			// nothing was written
			assert.Equal(t, base, builder.store.BaseArray())
			assert.Equal(t, check, builder.store.CheckArray())
			assert.Equal(t, int32(1), builder.store.FirstFree())

			// and the builder is still usable
			trie, err = builder.BuildFrom([]KV{{"x", 3}}, false)
			require.NoError(t, err)
			assert.Equal(t, int32(3), trie.Lookup("x"))
		})
	}
}

func TestBuild_Twice(t *testing.T) {
	t.Parallel()

	builder := NewBuilder().Append("a", 1)

	_, err := builder.Build()
	require.NoError(t, err)

	_, err = builder.Append("b", 2).Build()
	require.ErrorIs(t, err, ErrAlreadyBuilt)
}

func TestBuild_OrderIndependence(t *testing.T) {
	t.Parallel()

	var (
		keys     = getKeys(2_000)
		shuffled = append([]KV(nil), keys...)
		rnd      = rand.New(rand.NewSource(42))
	)

	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	presorted, err := NewBuilder().BuildFrom(sortedCopy(keys), true)
	require.NoError(t, err)

	unsorted, err := NewBuilder().BuildFrom(shuffled, false)
	require.NoError(t, err)

	assert.Equal(t, presorted.BaseArray(), unsorted.BaseArray())
	assert.Equal(t, presorted.CheckArray(), unsorted.CheckArray())

	for _, kv := range keys {
		assert.Equal(t, kv.Val, unsorted.Lookup(kv.Key), kv.Key)
	}
}

func TestBuild_Growth(t *testing.T) {
	t.Parallel()

	var (
		core, logs = observer.New(zapcore.DebugLevel)
		keys       = getKeys(3_000)
		trie       = mustBuild(t, keys, WithInitialSize(4), WithLogger(zap.New(core)))
	)

	assert.Greater(t, logs.FilterMessage("double array reallocated").Len(), 1)
	assert.Equal(t, 1, logs.FilterMessage("double array built").Len())

	for _, kv := range keys {
		require.True(t, trie.Contain(kv.Key), kv.Key)
		require.Equal(t, kv.Val, trie.Lookup(kv.Key), kv.Key)
	}

	checkStructure(t, trie.store)
}

func TestBuild_FreeList(t *testing.T) {
	t.Parallel()

	trie := mustBuild(t, getKeys(1_000), WithInitialSize(16))

	var (
		store = trie.store
		free  = freeSlots(store)
	)

	assert.Equal(t, free, store.freeList())
	assert.Equal(t, Free, store.Slot(int32(store.Size()-1)).Kind, "one trailing free slot")
	assert.Equal(t, Used, store.Slot(int32(store.Size()-2)).Kind)

	for _, i := range free {
		sl := store.Slot(i)

		if i != store.FirstFree() {
			assert.Equal(t, i, store.Slot(sl.Prev).Next, "slot %d", i)
		}
	}
}

func TestBuild_Structure(t *testing.T) {
	t.Parallel()

	trie := mustBuild(t, append(getKeys(500), scenarioKeys...))

	checkStructure(t, trie.store)

	st := trie.Calc()

	assert.Equal(t, trie.Size(), st.All)
	assert.Greater(t, st.Efficiency, 0.0)
	assert.LessOrEqual(t, st.Efficiency, 1.0)
}

func TestBuild_FreeListShortKeys(t *testing.T) {
	t.Parallel()

	const (
		sets    = 40
		perSet  = 3_000
		hexDigs = "0123456789abcdef"
	)

	for seed := int64(0); seed < sets; seed++ {
		var (
			rnd  = rand.New(rand.NewSource(seed))
			seen = make(map[string]struct{}, perSet)
			keys = make([]KV, 0, perSet)
		)

		for len(keys) < perSet {
			buf := make([]byte, 1+rnd.Intn(6))
			for i := range buf {
				buf[i] = hexDigs[rnd.Intn(len(hexDigs))]
			}

			if _, ok := seen[string(buf)]; ok {
				continue
			}

			seen[string(buf)] = struct{}{}
			keys = append(keys, KV{string(buf), int32(len(keys))})
		}

		for _, opts := range [][]Option{
			nil,
			{WithInitialSize(2), WithExpandRatio(3)},
			{WithInitialSize(int(seed%15) + 2)},
		} {
			trie := mustBuild(t, keys, opts...)

			require.Equal(t, freeSlots(trie.store), trie.store.freeList(), "seed %d", seed)

			for _, kv := range keys {
				require.Equal(t, kv.Val, trie.Lookup(kv.Key), "seed %d: %q", seed, kv.Key)
			}
		}
	}
}
