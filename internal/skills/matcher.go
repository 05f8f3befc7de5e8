package skills

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/nlp"
)

// Lookup is the flattened skill vocabulary the matcher tests tokens against.
// *catalog.SkillTaxonomy satisfies it.
type Lookup interface {
	Has(skill string) bool
}

// symbolOverrides are skill names a word tokenizer splits apart.
// They are matched as substrings of the lowercased raw text.
var symbolOverrides = []string{
	"c++",
	"c#",
	"node.js",
	"next.js",
	"nuxt.js",
	"vue.js",
	"react.js",
	"express.js",
	"asp.net",
	"ci/cd",
	"scikit-learn",
}

// Match extracts the skills found in tokens and rawText.
//
// Three passes run against the lookup:
//  1. every lowercased token;
//  2. every adjacent token pair joined by one space, for multi-word skills;
//  3. fixed symbol-bearing names searched as substrings of the raw text.
//
// Duplicates merge; absent matches yield an empty set.
func Match(tokens []string, rawText string, lookup Lookup) Set {
	found := NewSet()

	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		if lookup.Has(tok) {
			found.Add(tok)
		}
	}

	for i := 0; i+1 < len(tokens); i++ {
		bigram := strings.ToLower(tokens[i]) + " " + strings.ToLower(tokens[i+1])
		if lookup.Has(bigram) {
			found.Add(bigram)
		}
	}

	lower := strings.ToLower(rawText)
	for _, name := range symbolOverrides {
		if lookup.Has(name) && strings.Contains(lower, name) {
			found.Add(name)
		}
	}

	return found
}

// Extract tokenizes text with the default tokenizer and matches it against the
// process-wide taxonomy.
func Extract(text string) Set {
	return Match(nlp.Tokenize(text), text, catalog.Taxonomy())
}
