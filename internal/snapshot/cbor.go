package snapshot

import (
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/MijinkoSD/go-doublearray/doublearray"
)

// container is the single-file snapshot layout.
type container struct {
	Base  []int32 `cbor:"1,keyasint"`
	Check []int32 `cbor:"2,keyasint"`
}

// MarshalCBOR encodes the trie arrays deterministically.
func MarshalCBOR(trie *doublearray.Trie) ([]byte, error) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}

	data, err := encMode.Marshal(container{
		Base:  trie.BaseArray(),
		Check: trie.CheckArray(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	return data, nil
}

// UnmarshalCBOR decodes a container written by MarshalCBOR. Array lengths are
// bounded only by the int32 index space.
func UnmarshalCBOR(data []byte, opts ...doublearray.Option) (*doublearray.Trie, error) {
	decMode, err := cbor.DecOptions{MaxArrayElements: math.MaxInt32}.DecMode()
	if err != nil {
		return nil, err
	}

	var c container

	if err := decMode.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	return doublearray.Load(c.Base, c.Check, opts...), nil
}
