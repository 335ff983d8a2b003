package doublearray

import (
	"encoding/binary"
	"fmt"
	"io"
)

const int32Size = 4

// Load returns a query-only Trie over a previously exported BASE/CHECK pair.
// Nothing is validated: malformed arrays give wrong answers, not errors.
func Load(base, check []int32, opts ...Option) *Trie {
	return newTrie(LoadStore(base, check, opts...))
}

// WriteArrays writes BASE and CHECK as raw little-endian int32 values.
func (t *Trie) WriteArrays(baseW, checkW io.Writer) error {
	if err := binary.Write(baseW, binary.LittleEndian, t.store.base); err != nil {
		return fmt.Errorf("write base: %w", err)
	}

	if err := binary.Write(checkW, binary.LittleEndian, t.store.check); err != nil {
		return fmt.Errorf("write check: %w", err)
	}

	return nil
}

// ReadArrays reads a pair written by WriteArrays and loads it.
func ReadArrays(baseR, checkR io.Reader, opts ...Option) (*Trie, error) {
	base, err := readArray(baseR)
	if err != nil {
		return nil, fmt.Errorf("read base: %w", err)
	}

	check, err := readArray(checkR)
	if err != nil {
		return nil, fmt.Errorf("read check: %w", err)
	}

	return Load(base, check, opts...), nil
}

func readArray(r io.Reader) ([]int32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(raw)%int32Size != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrArrayLength, len(raw))
	}

	var arr = make([]int32, len(raw)/int32Size)

	for i := range arr {
		arr[i] = int32(binary.LittleEndian.Uint32(raw[i*int32Size:]))
	}

	return arr, nil
}
