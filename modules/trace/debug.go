package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antgroup/heckel/modules/term"
)

func formatDebug(w io.Writer, level term.Level, message string) {
	var buffer bytes.Buffer
	for _, s := range strings.Split(strings.TrimSuffix(message, "\n"), "\n") {
		_, _ = buffer.WriteString(level.Yellow("* " + s))
		_ = buffer.WriteByte('\n')
	}
	_, _ = w.Write(buffer.Bytes())
}

func DbgPrint(format string, args ...any) {
	formatDebug(os.Stderr, term.StderrLevel, fmt.Sprintf(format, args...))
}
