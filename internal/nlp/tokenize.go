package nlp

import (
	"regexp"
	"strings"
)

// tokenPattern keeps '+' and '#' attached so "c++" and "c#" survive as single tokens.
// Dotted and slashed names ("node.js", "ci/cd") are split; the skill matcher
// recovers them from the raw text.
var tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9+#]*`)

// Tokenize lowercases text and splits it into word tokens.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
