// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/antgroup/heckel/modules/element"
	"github.com/antgroup/heckel/modules/heckel"
	"github.com/antgroup/heckel/modules/trace"
	"github.com/sirupsen/logrus"
)

type Verify struct {
	Inputs
	Quiet bool `name:"quiet" short:"q" help:"Only report through the exit status"`
}

func sameRecord(x, y element.Record) bool {
	return x.Key == y.Key && x.Sum == y.Sum
}

// verify replays the script on a and compares the outcome with b.
func verify(s *session) error {
	got, err := heckel.ApplyResult(s.a, s.result)
	if err != nil {
		return &ErrExitCode{ExitCode: 2, Message: trace.Errorf("apply edit script: %w", err).Error()}
	}
	if !slices.EqualFunc(got, s.b, sameRecord) {
		logrus.Debugf("replayed %d elements, expected %d", len(got), len(s.b))
		return &ErrExitCode{ExitCode: 1, Message: "edit script does not reproduce the new sequence"}
	}
	return nil
}

func (c *Verify) Run(g *Globals) error {
	s, err := c.compute(g)
	if err != nil {
		return err
	}
	if err := verify(s); err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if c.Quiet {
		w = io.Discard
	}
	fmt.Fprintf(w, "ok: %d steps turn %d elements into %d\n", s.result.Len(), len(s.a), len(s.b))
	return nil
}
