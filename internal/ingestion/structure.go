package ingestion

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ScannedTextThreshold is the minimum trimmed text length, in runes, of a
// document with a real text layer.
const ScannedTextThreshold = 100

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
)

// AnalyzeStructure reports basic properties of extracted resume text.
// sizeBytes is the size of the original file.
func AnalyzeStructure(text string, sizeBytes int) types.StructureAnalysis {
	return types.StructureAnalysis{
		FileSizeKB:         math.Round(float64(sizeBytes)/1024*10) / 10,
		TextLength:         utf8.RuneCountInString(text),
		IsScannedPDF:       utf8.RuneCountInString(strings.TrimSpace(text)) < ScannedTextThreshold,
		ContactInfoPresent: emailPattern.MatchString(text) || phonePattern.MatchString(text),
	}
}
