package strengthen

import (
	"strings"
)

// SimpleAtob parses the usual boolean spellings of configuration values,
// returning dv when s is none of them.
func SimpleAtob(s string, dv bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return dv
}
