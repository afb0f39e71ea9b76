// Package element turns raw text into sequences of records that can be
// diffed: lines, words, grapheme clusters or JSON lines keyed by a field.
package element

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// Record is one element of a diffed sequence. Key identifies the element
// across both sequences, Sum fingerprints its full content.
type Record struct {
	Text string
	Key  [32]byte
	Sum  [32]byte
}

func (r Record) DiffKey() [32]byte {
	return r.Key
}

func (r Record) DiffEqual(o Record) bool {
	return r.Sum == o.Sum
}

func (r Record) String() string {
	return r.Text
}

// NewRecord builds a record whose identity is its content.
func NewRecord(text string) Record {
	sum := blake3.Sum256([]byte(text))
	return Record{Text: text, Key: sum, Sum: sum}
}

// NewKeyedRecord builds a record identified by key and compared by text.
func NewKeyedRecord(key, text string) Record {
	return Record{Text: text, Key: blake3.Sum256([]byte(key)), Sum: blake3.Sum256([]byte(text))}
}

type SplitMode int

const (
	SplitLine SplitMode = iota
	SplitWord
	SplitGrapheme
	SplitJSONL
)

var (
	ErrUnsupportedSplitMode = errors.New("unsupported split mode")
)

var (
	splitModeValueMap = map[string]SplitMode{
		"line":     SplitLine,
		"word":     SplitWord,
		"grapheme": SplitGrapheme,
		"jsonl":    SplitJSONL,
	}
	splitModeNameMap = map[SplitMode]string{
		SplitLine:     "line",
		SplitWord:     "word",
		SplitGrapheme: "grapheme",
		SplitJSONL:    "jsonl",
	}
)

func (m SplitMode) String() string {
	if n, ok := splitModeNameMap[m]; ok {
		return n
	}
	return "line"
}

func ParseSplitMode(s string) (SplitMode, error) {
	if len(s) == 0 {
		return SplitLine, nil
	}
	if m, ok := splitModeValueMap[strings.ToLower(s)]; ok {
		return m, nil
	}
	return SplitLine, fmt.Errorf("split mode '%s' %w", s, ErrUnsupportedSplitMode)
}
