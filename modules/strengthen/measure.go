package strengthen

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
)

// Measurer writes a CPU profile of the process between its creation and
// Close when debug mode is on; otherwise it does nothing.
type Measurer struct {
	closeFn func()
}

func NewMeasurer(name string, debugMode bool) *Measurer {
	m := &Measurer{}
	if !debugMode {
		return m
	}
	pprofName := filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d.pprof", name, os.Getpid()))
	fd, err := os.Create(pprofName)
	if err != nil {
		return m
	}
	if err = pprof.StartCPUProfile(fd); err != nil {
		_ = fd.Close()
		return m
	}
	m.closeFn = func() {
		pprof.StopCPUProfile()
		_ = fd.Close()
		fmt.Fprintf(os.Stderr, "go tool pprof -http=\":8080\" %s\n", pprofName)
	}
	return m
}

func (m *Measurer) Close() {
	if m.closeFn != nil {
		m.closeFn()
	}
}
