package element

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/tidwall/gjson"
)

const (
	NEWLINE_RAW = iota
	NEWLINE_LF
	NEWLINE_CRLF
)

// Sink splits text into records. Identical texts are hashed once and share
// a record. A Sink is not safe for concurrent use; give each input its own.
type Sink struct {
	Index   map[string]Record
	NewLine int
	// KeyPath is the gjson path of the identity field in JSONL mode.
	KeyPath string
}

func NewSink(newLineMode int, keyPath string) *Sink {
	return &Sink{
		Index:   make(map[string]Record),
		NewLine: newLineMode,
		KeyPath: keyPath,
	}
}

func (s *Sink) add(text string) Record {
	if r, ok := s.Index[text]; ok {
		return r
	}
	r := NewRecord(text)
	s.Index[text] = r
	return r
}

// Split dispatches on mode.
func (s *Sink) Split(text string, mode SplitMode) ([]Record, error) {
	switch mode {
	case SplitLine:
		return s.SplitLines(text), nil
	case SplitWord:
		return s.SplitWords(text), nil
	case SplitGrapheme:
		return s.SplitGraphemes(text), nil
	case SplitJSONL:
		return s.SplitJSONL(text), nil
	}
	return nil, ErrUnsupportedSplitMode
}

func (s *Sink) processRawLines(text string) []Record {
	lines := make([]Record, 0, 200)
	for pos := 0; pos < len(text); {
		part := text[pos:]
		newPos := strings.IndexByte(part, '\n')
		if newPos == -1 {
			lines = append(lines, s.add(part))
			break
		}
		lines = append(lines, s.add(part[:newPos+1]))
		pos += newPos + 1
	}
	return lines
}

// SplitLines returns one record per line. In NEWLINE_RAW mode records keep
// their terminator, so a missing final newline is a difference; otherwise
// "\n" and "\r\n" are stripped.
func (s *Sink) SplitLines(text string) []Record {
	if s.NewLine == NEWLINE_RAW {
		return s.processRawLines(text)
	}
	lines := make([]Record, 0, 200)
	for pos := 0; pos < len(text); {
		part := text[pos:]
		newPos := strings.IndexByte(part, '\n')
		if newPos == -1 {
			lines = append(lines, s.add(strings.TrimSuffix(part, "\r")))
			break
		}
		lines = append(lines, s.add(strings.TrimSuffix(part[:newPos], "\r")))
		pos += newPos + 1
	}
	return lines
}

// SplitWords returns one record per run of non-space characters.
func (s *Sink) SplitWords(text string) []Record {
	words := make([]Record, 0, 200)
	start := -1
	for i, c := range text {
		if unicode.IsSpace(c) {
			if start >= 0 {
				words = append(words, s.add(text[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s.add(text[start:]))
	}
	return words
}

// SplitGraphemes returns one record per user-perceived character.
func (s *Sink) SplitGraphemes(text string) []Record {
	out := make([]Record, 0, len(text))
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, s.add(cluster))
	}
	return out
}

// SplitJSONL returns one record per non-blank line. The identity is the
// value at KeyPath; lines without it, or all lines when KeyPath is empty,
// are identified by their whole content.
func (s *Sink) SplitJSONL(text string) []Record {
	out := make([]Record, 0, 200)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if len(s.KeyPath) == 0 {
			out = append(out, s.add(line))
			continue
		}
		v := gjson.Get(line, s.KeyPath)
		if !v.Exists() {
			out = append(out, s.add(line))
			continue
		}
		out = append(out, NewKeyedRecord(s.KeyPath+"\x00"+v.Raw, line))
	}
	return out
}
