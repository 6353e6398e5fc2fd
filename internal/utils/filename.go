package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces an uploaded file name to a flat, ASCII-only name
// that is safe to join to a storage directory. Path separators become
// underscores, other characters outside [A-Za-z0-9_.-] are dropped, and
// leading or trailing dots and underscores are trimmed. The result may be
// empty.
func SecureFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return ' '
		case r > unicode.MaxASCII:
			return -1
		default:
			return r
		}
	}, name)

	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")

	return strings.Trim(name, "._")
}
