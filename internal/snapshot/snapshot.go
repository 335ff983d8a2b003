// Package snapshot stores built tries on disk.
//
// The raw format is the BASE/CHECK pair as two files, PREFIX.base and
// PREFIX.check, each a headerless run of little-endian int32 values. The cbor
// format packs both arrays into a single PREFIX.cbor file.
package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/MijinkoSD/go-doublearray/doublearray"
)

type Format string

const (
	FormatRaw  Format = "raw"
	FormatCBOR Format = "cbor"
)

// ErrFormat is returned for an unknown snapshot format name.
var ErrFormat = errors.New("unknown snapshot format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatRaw, FormatCBOR:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// Paths returns the files a snapshot with the given prefix occupies.
func Paths(prefix string, format Format) []string {
	if format == FormatCBOR {
		return []string{prefix + ".cbor"}
	}

	return []string{prefix + ".base", prefix + ".check"}
}

func Save(trie *doublearray.Trie, prefix string, format Format) error {
	switch format {
	case FormatRaw:
		return saveRaw(trie, prefix)
	case FormatCBOR:
		data, err := MarshalCBOR(trie)
		if err != nil {
			return err
		}

		return os.WriteFile(prefix+".cbor", data, 0o644)
	}

	return fmt.Errorf("%w: %q", ErrFormat, format)
}

func Open(prefix string, format Format, opts ...doublearray.Option) (*doublearray.Trie, error) {
	switch format {
	case FormatRaw:
		return openRaw(prefix, opts)
	case FormatCBOR:
		data, err := os.ReadFile(prefix + ".cbor")
		if err != nil {
			return nil, err
		}

		return UnmarshalCBOR(data, opts...)
	}

	return nil, fmt.Errorf("%w: %q", ErrFormat, format)
}

func saveRaw(trie *doublearray.Trie, prefix string) (err error) {
	baseF, err := os.Create(prefix + ".base")
	if err != nil {
		return err
	}
	defer closeFile(baseF, &err)

	checkF, err := os.Create(prefix + ".check")
	if err != nil {
		return err
	}
	defer closeFile(checkF, &err)

	var (
		baseW  = bufio.NewWriter(baseF)
		checkW = bufio.NewWriter(checkF)
	)

	if err = trie.WriteArrays(baseW, checkW); err != nil {
		return err
	}

	if err = baseW.Flush(); err != nil {
		return err
	}

	return checkW.Flush()
}

func openRaw(prefix string, opts []doublearray.Option) (*doublearray.Trie, error) {
	baseF, err := os.Open(prefix + ".base")
	if err != nil {
		return nil, err
	}
	defer baseF.Close()

	checkF, err := os.Open(prefix + ".check")
	if err != nil {
		return nil, err
	}
	defer checkF.Close()

	return doublearray.ReadArrays(bufio.NewReader(baseF), bufio.NewReader(checkF), opts...)
}

func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
