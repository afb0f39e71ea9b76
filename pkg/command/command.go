// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/antgroup/heckel/modules/term"
	"github.com/antgroup/heckel/modules/trace"
	"github.com/antgroup/heckel/pkg/config"
	"github.com/antgroup/heckel/pkg/version"
)

type Globals struct {
	Verbose bool        `short:"V" name:"verbose" help:"Make the operation more talkative"`
	Version VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
	Values  []string    `short:"X" name:"set" help:"Override default configuration, format: <key>=<value>"`
	Config  string      `name:"config" help:"Load configuration from this file after the system and global ones" placeholder:"<file>"`
}

func (g *Globals) DbgPrint(format string, args ...any) {
	if !g.Verbose {
		return
	}
	trace.DbgPrint(format, args...)
}

// LoadConfig resolves the effective configuration for a command.
func (g *Globals) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config, g.Values)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// stdoutLevel is the colour depth to use on stdout under cfg.
func stdoutLevel(cfg *config.Config) term.Level {
	if !cfg.Output.ColorEnabled(term.IsTerminal(os.Stdout.Fd())) {
		return term.LevelNone
	}
	if term.StdoutLevel != term.LevelNone {
		return term.StdoutLevel
	}
	return term.Level256
}

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(version.GetVersionString())
	app.Exit(0)
	return nil
}

type Debuger interface {
	DbgPrint(format string, args ...any)
}

var (
	_ Debuger = &Globals{}
)

// ErrExitCode carries the process exit status of a failed command.
type ErrExitCode struct {
	ExitCode int
	Message  string
}

func (e *ErrExitCode) Error() string {
	return e.Message
}

func IsExitCode(err error) (int, bool) {
	var e *ErrExitCode
	if errors.As(err, &e) {
		return e.ExitCode, true
	}
	return 0, false
}

var (
	ErrTooManyElements  = errors.New("too many elements")
	ErrBothStdin        = errors.New("old and new cannot both be read from stdin")
	ErrUnknownNormalize = errors.New("unknown normalize mode")
)
