package doublearray

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TermCode is the byte appended to every stored key; it hosts the key's leaf.
const TermCode = 0

// encodeKey returns the UTF-8 bytes of key, optionally followed by TermCode.
func encodeKey(key string, withTerm bool) ([]byte, error) {
	if !utf8.ValidString(key) {
		return nil, fmt.Errorf("%w: %q is not valid UTF-8", ErrEncoding, key)
	}

	if strings.IndexByte(key, TermCode) >= 0 {
		return nil, fmt.Errorf("%w: %q contains the terminal code", ErrEncoding, key)
	}

	var size = len(key)

	if withTerm {
		size++
	}

	buf := make([]byte, size)
	copy(buf, key)

	return buf, nil // a trailing TermCode is already there (zero byte)
}

func decodeKey(buf []byte) string {
	return string(buf)
}
