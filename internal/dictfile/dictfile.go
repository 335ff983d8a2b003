// Package dictfile reads key/record dictionaries that feed the trie builder.
//
// Two formats are accepted, chosen by file extension:
//
//	.yaml, .yml   build settings plus an entries list
//	.tsv, .txt    one "key<TAB>record" pair per line, '#' starts a comment line
package dictfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MijinkoSD/go-doublearray/doublearray"
)

// maxLineSize bounds a single TSV line.
const maxLineSize = 16 << 20

var (
	// ErrFormat is returned for files with an unknown extension.
	ErrFormat = errors.New("unknown dictionary format")

	// ErrSyntax is returned for malformed TSV lines.
	ErrSyntax = errors.New("malformed dictionary line")
)

type Entry struct {
	Key   string `yaml:"key"`
	Value int32  `yaml:"value"`
}

// Dictionary is a parsed dictionary file. The zero settings mean library defaults.
type Dictionary struct {
	InitialSize int     `yaml:"initial_size"`
	ExpandRatio int     `yaml:"expand_ratio"`
	Sorted      bool    `yaml:"sorted"`
	Entries     []Entry `yaml:"entries"`
}

func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".tsv", ".txt":
		return ParseTSV(bytes.NewReader(data))
	}

	return nil, fmt.Errorf("%w: %s", ErrFormat, path)
}

func ParseYAML(data []byte) (*Dictionary, error) {
	var dict Dictionary

	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, err
	}

	return &dict, nil
}

func ParseTSV(r io.Reader) (*Dictionary, error) {
	var (
		dict    Dictionary
		scanner = bufio.NewScanner(r)
		lineNo  int
	)

	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scanner.Scan() {
		lineNo++

		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%w %d: no tab separator", ErrSyntax, lineNo)
		}

		rec, err := strconv.ParseInt(strings.TrimSpace(val), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrSyntax, lineNo, err)
		}

		dict.Entries = append(dict.Entries, Entry{Key: key, Value: int32(rec)})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &dict, nil
}

// KVs returns the entries in file order.
func (d *Dictionary) KVs() []doublearray.KV {
	var kvs = make([]doublearray.KV, len(d.Entries))

	for i, e := range d.Entries {
		kvs[i] = doublearray.KV{Key: e.Key, Val: e.Value}
	}

	return kvs
}

// Options translates the build settings into builder options.
func (d *Dictionary) Options() []doublearray.Option {
	var opts []doublearray.Option

	if d.InitialSize > 0 {
		opts = append(opts, doublearray.WithInitialSize(d.InitialSize))
	}

	if d.ExpandRatio > 0 {
		opts = append(opts, doublearray.WithExpandRatio(d.ExpandRatio))
	}

	return opts
}
