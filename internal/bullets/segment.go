package bullets

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segmentation limits
const (
	minLineRunes      = 20
	maxLineRunes      = 300
	minCleanRunes     = 15
	maxHeaderRunes    = 50
	minStructuredRows = 5
	maxCandidates     = 15
)

var (
	leadingGlyph = regexp.MustCompile(`^[•‣◦⁃∙\-*>»]\s*`)
	dateLine     = regexp.MustCompile(`^[A-Za-z]{3,9}\s+\d{4}\s*[-–—]\s*`)
	emailLine    = regexp.MustCompile(`^[\w.+-]+@[\w-]+\.[\w.]+$`)
	phoneLine    = regexp.MustCompile(`^\+?\d[\d\s\-().]{7,}$`)
)

// Segment extracts up to 15 candidate bullets from resume text.
//
// Text with fewer than five non-blank lines (typical of flattened PDF output) is
// further split on sentence boundaries and inline bullet markers. Headers, dates,
// contact lines and skill lists are dropped.
func Segment(text string) []string {
	lines := strings.Split(text, "\n")
	if countNonBlank(lines) < minStructuredRows {
		var expanded []string
		for _, line := range lines {
			expanded = append(expanded, splitInline(line)...)
		}
		lines = expanded
	}

	out := make([]string, 0, maxCandidates)
	for _, line := range lines {
		if cleaned, ok := candidate(line); ok {
			out = append(out, cleaned)
			if len(out) == maxCandidates {
				break
			}
		}
	}
	return out
}

// candidate returns the cleaned line and whether it looks like a bullet.
func candidate(line string) (string, bool) {
	line = strings.TrimSpace(line)
	n := utf8.RuneCountInString(line)
	if n < minLineRunes || n > maxLineRunes {
		return "", false
	}

	clean := strings.TrimSpace(leadingGlyph.ReplaceAllString(line, ""))
	if utf8.RuneCountInString(clean) < minCleanRunes {
		return "", false
	}
	if isUpper(clean) && utf8.RuneCountInString(clean) < maxHeaderRunes {
		return "", false
	}
	if headerWords[strings.TrimRight(lower(clean), ":")] {
		return "", false
	}
	if dateLine.MatchString(clean) || emailLine.MatchString(clean) || phoneLine.MatchString(clean) {
		return "", false
	}
	if isSkillList(clean) {
		return "", false
	}
	return clean, true
}

func isSkillList(s string) bool {
	commas := strings.Count(s, ",")
	words := len(strings.Fields(s))
	return commas > 3 && float64(commas) > float64(words)/3
}

// isUpper reports whether s has at least one cased letter and no lowercase ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

func countNonBlank(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}

// splitInline splits one line at sentence boundaries (terminal punctuation,
// whitespace, then an uppercase ASCII letter), at the glyphs • ◦ ●, and at
// whitespace-preceded - or * markers followed by whitespace. Separators are dropped.
func splitInline(line string) []string {
	runes := []rune(line)
	var parts []string
	var cur strings.Builder
	flush := func() {
		parts = append(parts, cur.String())
		cur.Reset()
	}
	skipSpace := func(i int) int {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		return i
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		var prev rune
		if i > 0 {
			prev = runes[i-1]
		}

		switch {
		case unicode.IsSpace(r) && strings.ContainsRune(".!?", prev) && i > 0:
			j := skipSpace(i)
			if j < len(runes) && runes[j] >= 'A' && runes[j] <= 'Z' {
				flush()
				i = j
				continue
			}
		case r == '•' || r == '◦' || r == '●':
			flush()
			i = skipSpace(i + 1)
			continue
		case (r == '-' || r == '*') && i > 0 && unicode.IsSpace(prev) &&
			i+1 < len(runes) && unicode.IsSpace(runes[i+1]):
			flush()
			i = skipSpace(i + 1)
			continue
		}

		cur.WriteRune(r)
		i++
	}
	flush()
	return parts
}

func lower(s string) string {
	return strings.ToLower(s)
}
