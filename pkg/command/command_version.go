// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/antgroup/heckel/pkg/version"
	"github.com/tidwall/sjson"
)

type Version struct {
	BuildOptions bool `name:"build-options" help:"Also print build options"`
	JSON         bool `short:"j" name:"json" help:"Data will be returned in JSON format"`
}

func (c *Version) formatJSON() error {
	b := []byte(`{}`)
	set := func(k, v string) {
		if nb, err := sjson.SetBytes(b, k, v); err == nil {
			b = nb
		}
	}
	set("version", version.GetVersion())
	set("commit", version.GetBuildCommit())
	set("time", version.GetBuildTime())
	set("arch", runtime.GOARCH)
	set("os", runtime.GOOS)
	if c.BuildOptions {
		if info, ok := debug.ReadBuildInfo(); ok {
			set("go_version", strings.TrimPrefix(info.GoVersion, "go"))
			for _, s := range info.Settings {
				if len(s.Value) == 0 {
					continue
				}
				set(sjsonKey(s.Key), s.Value)
			}
		}
	}
	_, err := fmt.Fprintln(os.Stdout, string(b))
	return err
}

// sjsonKey escapes the path syntax characters found in build setting names.
func sjsonKey(k string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(k)
}

func (c *Version) Run(g *Globals) error {
	if c.JSON {
		return c.formatJSON()
	}
	fmt.Fprintf(os.Stdout, "heckel %s (%s), built %v\n", version.GetVersion(), version.GetBuildCommit(), version.GetBuildTime())
	if !c.BuildOptions {
		return nil
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	fmt.Fprintf(os.Stdout, "arch: %s\nos:   %s\ngo:   %s\n", runtime.GOARCH, runtime.GOOS, strings.TrimPrefix(info.GoVersion, "go"))
	for _, s := range info.Settings {
		if len(s.Value) == 0 {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s:\n  %s\n", s.Key, s.Value)
	}
	return nil
}
