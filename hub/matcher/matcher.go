package matcher

import "strings"

// Match reports whether name satisfies pattern: "*" matches everything, a
// pattern ending with "/" or "_" matches by prefix, anything else must be
// equal.
func Match(pattern, name string) bool {
	switch {
	case pattern == "*":
		return true
	case pattern == "":
		return false
	case strings.HasSuffix(pattern, "/"), strings.HasSuffix(pattern, "_"):
		return strings.HasPrefix(name, pattern)
	}
	return pattern == name
}
