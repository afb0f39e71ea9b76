// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"
	"path/filepath"

	"github.com/antgroup/heckel/modules/term"
	"github.com/antgroup/heckel/pkg/render"
)

type Diff struct {
	Inputs
	Raw    bool   `name:"raw" help:"Print steps grouped by operation in discovery order instead of application order"`
	Format string `name:"format" short:"f" help:"Output format, supported: text|json|stat" placeholder:"<format>"`
	Output string `name:"output" short:"o" help:"Output to a specific file instead of stdout" placeholder:"<file>"`
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func (c *Diff) NewOutput() (io.WriteCloser, bool, error) {
	if len(c.Output) != 0 {
		if err := os.MkdirAll(filepath.Dir(c.Output), 0755); err != nil {
			return nil, false, err
		}
		fd, err := os.Create(c.Output)
		return fd, false, err
	}
	return nopWriteCloser{Writer: os.Stdout}, true, nil
}

func (c *Diff) Run(g *Globals) error {
	s, err := c.compute(g)
	if err != nil {
		return err
	}
	if len(c.Format) != 0 {
		s.cfg.Output.Format = c.Format
	}
	format, err := render.ParseFormat(s.cfg.Output.Format)
	if err != nil {
		return err
	}
	w, toStdout, err := c.NewOutput()
	if err != nil {
		return err
	}
	defer w.Close() // nolint
	opts := &render.Options{Format: format}
	if toStdout {
		opts.Level = stdoutLevel(s.cfg)
		if term.IsTerminal(os.Stdout.Fd()) {
			opts.Width = term.Width(os.Stdout.Fd())
		}
	}
	steps := s.result.ApplicableSteps()
	if c.Raw {
		steps = s.result.Steps()
	}
	return render.Render(w, s.result, steps, opts)
}
