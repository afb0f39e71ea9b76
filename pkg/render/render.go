// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antgroup/heckel/modules/element"
	"github.com/antgroup/heckel/modules/heckel"
	"github.com/antgroup/heckel/modules/term"
	"github.com/rivo/uniseg"
	"github.com/tidwall/sjson"
)

type Format int

const (
	Text Format = iota
	JSON
	Stat
)

var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json", "jsonl":
		return JSON, nil
	case "stat":
		return Stat, nil
	}
	return Text, fmt.Errorf("format '%s' %w", s, ErrUnsupportedFormat)
}

type Options struct {
	Format Format
	Level  term.Level
	// Width bounds the columns of a text line; zero disables truncation.
	Width int
}

type Step = heckel.Step[element.Record]

// Render writes steps to w; stat output also needs the result buckets.
func Render(w io.Writer, r *heckel.Result[element.Record], steps []Step, opts *Options) error {
	switch opts.Format {
	case Text:
		return renderText(w, steps, opts)
	case JSON:
		return renderJSON(w, steps)
	case Stat:
		return renderStat(w, r, opts)
	}
	return ErrUnsupportedFormat
}

// truncate shortens s to at most width display columns.
func truncate(s string, width int) string {
	if width <= 0 || uniseg.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	state := -1
	var cluster string
	var w int
	for len(s) > 0 {
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+w > width-1 {
			break
		}
		_, _ = b.WriteString(cluster)
		used += w
	}
	_, _ = b.WriteString("…")
	return b.String()
}

func displayValue(r element.Record) string {
	return strings.TrimRight(r.Text, "\r\n")
}

func renderText(w io.Writer, steps []Step, opts *Options) error {
	for _, s := range steps {
		var prefix, line string
		switch s.Type {
		case heckel.Delete:
			prefix = fmt.Sprintf("- %d ", s.Index)
		case heckel.Insert:
			prefix = fmt.Sprintf("+ %d ", s.Index)
		case heckel.Move:
			prefix = fmt.Sprintf("> %d->%d ", s.From, s.To)
		case heckel.Update:
			prefix = fmt.Sprintf("~ %d ", s.Index)
		default:
			continue
		}
		value := displayValue(s.Value)
		if opts.Width > 0 {
			value = truncate(value, opts.Width-uniseg.StringWidth(prefix))
		}
		line = prefix + value
		switch s.Type {
		case heckel.Delete:
			line = opts.Level.Red(line)
		case heckel.Insert:
			line = opts.Level.Green(line)
		case heckel.Move:
			line = opts.Level.Cyan(line)
		case heckel.Update:
			line = opts.Level.Yellow(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func encodeStep(s Step) ([]byte, error) {
	var err error
	b := []byte(`{}`)
	if b, err = sjson.SetBytes(b, "op", s.Type.String()); err != nil {
		return nil, err
	}
	if s.Type == heckel.Move {
		if b, err = sjson.SetBytes(b, "from", s.From); err != nil {
			return nil, err
		}
		if b, err = sjson.SetBytes(b, "to", s.To); err != nil {
			return nil, err
		}
	} else {
		if b, err = sjson.SetBytes(b, "index", s.Index); err != nil {
			return nil, err
		}
	}
	if s.Type == heckel.Update {
		if b, err = sjson.SetBytes(b, "from", s.From); err != nil {
			return nil, err
		}
	}
	return sjson.SetBytes(b, "value", displayValue(s.Value))
}

func renderJSON(w io.Writer, steps []Step) error {
	for _, s := range steps {
		b, err := encodeStep(s)
		if err != nil {
			return err
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

func renderStat(w io.Writer, r *heckel.Result[element.Record], opts *Options) error {
	_, err := fmt.Fprintf(w, "%s, %s, %s, %s, %d steps\n",
		opts.Level.Red(fmt.Sprintf("%d deletes", len(r.Deletes))),
		opts.Level.Green(fmt.Sprintf("%d inserts", len(r.Inserts))),
		opts.Level.Cyan(fmt.Sprintf("%d moves", len(r.Moves))),
		opts.Level.Yellow(fmt.Sprintf("%d updates", len(r.Updates))),
		r.Len())
	return err
}
