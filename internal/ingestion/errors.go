package ingestion

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when an input contains no text after cleaning.
var ErrEmptyDocument = errors.New("document contains no text")

// UnsupportedFormatError is returned for binary document formats that must be
// converted to text before ingestion.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s: convert the document to text or markdown first", e.Extension, e.Path)
}
