// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/antgroup/heckel/modules/element"
	"github.com/antgroup/heckel/modules/strengthen"
)

const (
	DefaultMaxElements = 10_000_000
)

type ErrBadConfigKey struct {
	key string
}

func (err *ErrBadConfigKey) Error() string {
	return fmt.Sprintf("bad heckel config key '%s'", err.key)
}

func IsErrBadConfigKey(err error) bool {
	var e *ErrBadConfigKey
	return errors.As(err, &e)
}

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

func overwrite(a, b string) string {
	if len(b) != 0 {
		return b
	}
	return a
}

type Diff struct {
	Split       string `toml:"split,omitempty"`
	Key         string `toml:"key,omitempty"`
	Normalize   string `toml:"normalize,omitempty"`
	MaxElements int    `toml:"maxElements,omitempty"`
	MaxBytes    int64  `toml:"maxBytes,omitempty"`
	NewLine     string `toml:"newline,omitempty"`
}

func (d *Diff) Overwrite(o *Diff) {
	d.Split = overwrite(d.Split, o.Split)
	d.Key = overwrite(d.Key, o.Key)
	d.Normalize = overwrite(d.Normalize, o.Normalize)
	d.NewLine = overwrite(d.NewLine, o.NewLine)
	if o.MaxElements > 0 {
		d.MaxElements = o.MaxElements
	}
	if o.MaxBytes > 0 {
		d.MaxBytes = o.MaxBytes
	}
}

// Limit returns the largest accepted sequence length.
func (d *Diff) Limit() int {
	if d.MaxElements <= 0 {
		return DefaultMaxElements
	}
	return d.MaxElements
}

func (d *Diff) SplitMode() (element.SplitMode, error) {
	return element.ParseSplitMode(d.Split)
}

// NewLineMode maps the newline setting to a sink mode; lines are compared
// without their terminator unless "raw" is requested.
func (d *Diff) NewLineMode() (int, error) {
	switch strings.ToLower(d.NewLine) {
	case "", "lf":
		return element.NEWLINE_LF, nil
	case "crlf":
		return element.NEWLINE_CRLF, nil
	case "raw":
		return element.NEWLINE_RAW, nil
	}
	return element.NEWLINE_LF, fmt.Errorf("newline '%s': %w", d.NewLine, ErrInvalidArgument)
}

type Output struct {
	Format string `toml:"format,omitempty"`
	Color  string `toml:"color,omitempty"`
}

func (o *Output) Overwrite(other *Output) {
	o.Format = overwrite(o.Format, other.Format)
	o.Color = overwrite(o.Color, other.Color)
}

type Config struct {
	Diff   Diff   `toml:"diff,omitempty"`
	Output Output `toml:"output,omitempty"`
}

// Overwrite: settings present in co replace those of c
func (c *Config) Overwrite(co *Config) {
	c.Diff.Overwrite(&co.Diff)
	c.Output.Overwrite(&co.Output)
}

// Set assigns one dotted key, as given on the command line with -X.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "diff.split":
		c.Diff.Split = value
	case "diff.key":
		c.Diff.Key = value
	case "diff.normalize":
		c.Diff.Normalize = value
	case "diff.newline":
		c.Diff.NewLine = value
	case "diff.maxelements":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("diff.maxElements '%s': %w", value, ErrInvalidArgument)
		}
		c.Diff.MaxElements = n
	case "diff.maxbytes":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("diff.maxBytes '%s': %w", value, ErrInvalidArgument)
		}
		c.Diff.MaxBytes = n
	case "output.format":
		c.Output.Format = value
	case "output.color":
		c.Output.Color = value
	default:
		return &ErrBadConfigKey{key: key}
	}
	return nil
}

// ApplyValues applies -X key=value overrides in order.
func (c *Config) ApplyValues(values []string) error {
	for _, kv := range values {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("override '%s' is not <key>=<value>: %w", kv, ErrInvalidArgument)
		}
		if err := c.Set(strings.TrimSpace(k), strings.TrimSpace(v)); err != nil {
			return err
		}
	}
	return nil
}

// ColorEnabled resolves the color setting; auto defers to tty.
func (o *Output) ColorEnabled(tty bool) bool {
	switch strings.ToLower(o.Color) {
	case "always":
		return true
	case "never":
		return false
	}
	return strengthen.SimpleAtob(o.Color, tty)
}
