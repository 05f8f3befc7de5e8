// Package ingestion loads resume and job posting text from files and URLs and
// normalizes it for analysis.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	innerSpacePattern  = regexp.MustCompile(`\s+`)
	excessBlankPattern = regexp.MustCompile(`\n\n\n+`)
)

// unsupportedExtensions lists formats that need an external text extractor.
var unsupportedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".doc":  {},
}

// Document is a cleaned text input together with its provenance.
type Document struct {
	Text      string
	Metadata  *Metadata
	SizeBytes int
}

// CleanText normalizes line endings and whitespace while keeping headings,
// bullet lines and paragraph breaks intact.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := excessBlankPattern.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims trailing whitespace and collapses inner runs of spaces.
// Headings lose their indentation; bullets and plain lines keep it.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(trimmed)
	if isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + trimmed
	}

	return strings.Repeat(" ", indent) + innerSpacePattern.ReplaceAllString(trimmed, " ")
}

// isBulletLine reports whether a line starts with a list marker.
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, marker := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// IngestFromFile reads a text or markdown file and returns its cleaned text.
// PDF and Word documents are rejected with an *UnsupportedFormatError.
func IngestFromFile(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, unsupported := unsupportedExtensions[ext]; unsupported {
		return nil, &UnsupportedFormatError{Path: path, Extension: ext}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleaned := CleanText(string(content))
	if cleaned == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDocument)
	}

	metadata := NewMetadata(cleaned, "")
	metadata.Source = path
	return &Document{Text: cleaned, Metadata: metadata, SizeBytes: len(content)}, nil
}

// IngestText cleans text supplied directly, such as an API request body.
func IngestText(text string) (*Document, error) {
	cleaned := CleanText(text)
	if cleaned == "" {
		return nil, ErrEmptyDocument
	}
	return &Document{Text: cleaned, Metadata: NewMetadata(cleaned, ""), SizeBytes: len(text)}, nil
}
