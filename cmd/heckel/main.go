// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/heckel/modules/strengthen"
	"github.com/antgroup/heckel/modules/trace"
	"github.com/antgroup/heckel/pkg/command"
	"github.com/antgroup/heckel/pkg/config"
	"github.com/antgroup/heckel/pkg/version"
	"github.com/sirupsen/logrus"
)

type App struct {
	command.Globals
	Diff    command.Diff    `cmd:"diff" help:"Print the edit script turning <old> into <new>"`
	Stat    command.Stat    `cmd:"stat" help:"Count the steps of the edit script per operation"`
	Verify  command.Verify  `cmd:"verify" help:"Replay the edit script on <old> and check that it yields <new>"`
	Version command.Version `cmd:"version" help:"Display version information"`
	Debug   bool            `name:"debug" help:"Enable debug mode; write a CPU profile"`
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	var app App
	ctx := kong.Parse(&app,
		kong.Name("heckel"),
		kong.Description("Linear-time edit scripts (deletes, inserts, moves, updates) between two sequences"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": version.GetVersionString(),
		},
	)
	now := time.Now()
	m := strengthen.NewMeasurer("heckel", app.Debug)
	if app.Verbose {
		trace.EnableDebugMode()
	}
	err := ctx.Run(&app.Globals)
	m.Close()
	if app.Verbose {
		trace.DbgPrint("time spent: %v", time.Since(now))
	}
	if err == nil {
		return
	}
	if config.IsErrBadConfigKey(err) {
		fmt.Fprintf(os.Stderr, "heckel: %v, supported keys: diff.{split,key,normalize,newline,maxElements,maxBytes}, output.{format,color}\n", err)
		os.Exit(2)
	}
	if code, ok := command.IsExitCode(err); ok {
		fmt.Fprintf(os.Stderr, "heckel: %v\n", err)
		os.Exit(code)
	}
	fmt.Fprintf(os.Stderr, "heckel: %v\n", err)
	os.Exit(127)
}
