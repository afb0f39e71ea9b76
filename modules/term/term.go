package term

import (
	"os"
	"strings"

	"github.com/antgroup/heckel/modules/strengthen"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Level is the colour depth a terminal supports.
type Level int

const (
	LevelNone Level = iota
	Level256
	Level16M
)

const (
	defaultWidth = 120
)

var (
	StderrLevel Level
	StdoutLevel Level
)

// DetectLevel derives the colour depth from the environment. NO_COLOR wins
// over everything except HECKEL_FORCE_TRUECOLOR.
func DetectLevel() Level {
	if strengthen.SimpleAtob(os.Getenv("HECKEL_FORCE_TRUECOLOR"), false) {
		return Level16M
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return LevelNone
	}
	if _, ok := os.LookupEnv("WT_SESSION"); ok {
		return Level16M
	}
	colorTerm := os.Getenv("COLORTERM")
	termEnv := os.Getenv("TERM")
	if strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(colorTerm, "24bit") ||
		strings.Contains(colorTerm, "truecolor") {
		return Level16M
	}
	if strings.Contains(termEnv, "256") || strings.Contains(colorTerm, "256") || strings.Contains(termEnv, "color") {
		return Level256
	}
	return LevelNone
}

func init() {
	level := DetectLevel()
	if IsTerminal(os.Stderr.Fd()) {
		StderrLevel = level
	}
	if IsTerminal(os.Stdout.Fd()) {
		StdoutLevel = level
	}
}

func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the column count of the terminal behind fd, or a fixed
// default when fd is not a terminal.
func Width(fd uintptr) int {
	if !isatty.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
