// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	"github.com/antgroup/heckel/pkg/render"
)

type Stat struct {
	Inputs
}

func (c *Stat) Run(g *Globals) error {
	s, err := c.compute(g)
	if err != nil {
		return err
	}
	return render.Render(os.Stdout, s.result, nil, &render.Options{Format: render.Stat, Level: stdoutLevel(s.cfg)})
}
