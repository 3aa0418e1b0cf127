package bot

import (
	"strings"
	"unicode"
)

// ParseCommand splits raw message text into a lower-cased command token and
// at most two argument fields. The second argument is the verbatim
// remainder of the line, so free-text notes keep their internal spacing.
// Empty input yields an empty command.
func ParseCommand(text string) (string, []string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	command, rest := cutField(text)
	var args []string
	if rest != "" {
		first, tail := cutField(rest)
		args = append(args, first)
		if tail != "" {
			args = append(args, tail)
		}
	}
	return strings.ToLower(command), args
}

// cutField splits off the first whitespace-delimited field, returning it and
// the remainder with leading whitespace stripped.
func cutField(s string) (field, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
