package shell

import "strings"

// Tokenize breaks a line into the words of a single command.
//
// Words are separated by runs of whitespace. There is no quoting, escaping or
// expansion: every non-space rune belongs to exactly one word, and leading or
// trailing whitespace (including the line terminator) is dropped. A blank line
// yields no words.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
