// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/antgroup/heckel/modules/element"
	"github.com/antgroup/heckel/modules/heckel"
	"github.com/antgroup/heckel/modules/streamio"
	"github.com/antgroup/heckel/modules/trace"
	"github.com/antgroup/heckel/pkg/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Inputs are the two sequences shared by diff, stat and verify.
type Inputs struct {
	Split     string `name:"split" short:"s" help:"Element unit, supported: line|word|grapheme|jsonl" placeholder:"<unit>"`
	Key       string `name:"key" short:"k" help:"Identity field of a JSON line (gjson path), requires --split=jsonl" placeholder:"<path>"`
	Normalize string `name:"normalize" help:"Rewrite as delete+insert pairs, supported: none|moves|updates|all" placeholder:"<mode>"`
	Old       string `arg:"" name:"old" help:"Old sequence file, - reads stdin"`
	New       string `arg:"" name:"new" help:"New sequence file, - reads stdin"`
}

// overlay copies command line flags over the configuration.
func (in *Inputs) overlay(cfg *config.Config) {
	if len(in.Split) != 0 {
		cfg.Diff.Split = in.Split
	}
	if len(in.Key) != 0 {
		cfg.Diff.Key = in.Key
	}
	if len(in.Normalize) != 0 {
		cfg.Diff.Normalize = in.Normalize
	}
}

func readRecords(path string, cfg *config.Config, mode element.SplitMode, newLine int) ([]element.Record, error) {
	text, err := streamio.ReadFile(path, cfg.Diff.MaxBytes)
	if err != nil {
		return nil, err
	}
	records, err := element.NewSink(newLine, cfg.Diff.Key).Split(text, mode)
	if err != nil {
		return nil, err
	}
	if limit := cfg.Diff.Limit(); len(records) > limit {
		return nil, trace.Errorf("%s has %d elements, limit %d: %w", path, len(records), limit, ErrTooManyElements)
	}
	return records, nil
}

// Load reads and splits both inputs concurrently.
func (in *Inputs) Load(cfg *config.Config) (a, b []element.Record, err error) {
	if in.Old == "-" && in.New == "-" {
		return nil, nil, ErrBothStdin
	}
	mode, err := cfg.Diff.SplitMode()
	if err != nil {
		return nil, nil, err
	}
	if len(cfg.Diff.Key) != 0 && mode != element.SplitJSONL {
		return nil, nil, fmt.Errorf("key '%s' requires split mode jsonl, not %s: %w", cfg.Diff.Key, mode, config.ErrInvalidArgument)
	}
	newLine, err := cfg.Diff.NewLineMode()
	if err != nil {
		return nil, nil, err
	}
	var g errgroup.Group
	g.Go(func() error {
		var err error
		a, err = readRecords(in.Old, cfg, mode, newLine)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = readRecords(in.New, cfg, mode, newLine)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	logrus.Debugf("split %s: %d old and %d new elements", mode, len(a), len(b))
	return a, b, nil
}

// Normalize applies the configured rewrite to r.
func Normalize(r *heckel.Result[element.Record], mode string) (*heckel.Result[element.Record], error) {
	switch strings.ToLower(mode) {
	case "", "none":
		return r, nil
	case "moves":
		return r.MovesAsDeletesInserts(), nil
	case "updates":
		return r.UpdatesAsDeletesInserts(), nil
	case "all":
		return r.AsDeletesInserts(), nil
	}
	return nil, fmt.Errorf("normalize '%s': %w", mode, ErrUnknownNormalize)
}

type session struct {
	cfg    *config.Config
	a, b   []element.Record
	result *heckel.Result[element.Record]
}

// compute loads both inputs and diffs them.
func (in *Inputs) compute(g *Globals) (*session, error) {
	cfg, err := g.LoadConfig()
	if err != nil {
		return nil, err
	}
	in.overlay(cfg)
	t := trace.NewTracker(g.Verbose)
	a, b, err := in.Load(cfg)
	if err != nil {
		return nil, err
	}
	t.StepNext("read inputs")
	r := heckel.Diff[[32]byte](a, b)
	t.StepNext("diff")
	g.DbgPrint("%d deletes, %d inserts, %d moves, %d updates", len(r.Deletes), len(r.Inserts), len(r.Moves), len(r.Updates))
	if r, err = Normalize(r, cfg.Diff.Normalize); err != nil {
		return nil, err
	}
	return &session{cfg: cfg, a: a, b: b, result: r}, nil
}
