// Package catalog provides the static configuration tables used by the matcher:
// the categorized skill taxonomy, the interview question bank, and the market
// profile table. Tables are stored as JSON files embedded at compile time and
// parsed once on first use. They are never mutated after loading.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var dataFiles embed.FS

const (
	taxonomyFile  = "data/taxonomy.json"
	questionsFile = "data/questions.json"
	marketsFile   = "data/markets.json"
)

// readJSON decodes an embedded data file into v.
func readJSON(filename string, v any) error {
	data, err := dataFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", filename, err)
	}
	return nil
}

// mustReadJSON is readJSON for tables required at startup.
// The embedded files ship with the binary, so a failure here is a build defect.
func mustReadJSON(filename string, v any) {
	if err := readJSON(filename, v); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}
