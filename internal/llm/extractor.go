package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based structured extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "POSTagging")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint shown to the model
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\nReturn ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		fmt.Fprintf(&sb, "  %q: %s%s", field.Name, typeHint, requiredHint)
		if field.Description != "" {
			fmt.Fprintf(&sb, " // %s", field.Description)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Work only from the input text, do not invent content.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// POSTaggingSchema returns the extraction schema for part-of-speech tagging.
func POSTaggingSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "POSTagging",
		Description: `You are a part-of-speech tagger. Split the input into word tokens in order and tag each one
with its Universal Dependencies UPOS tag (VERB, NOUN, PROPN, ADJ, ADV, ADP, DET, PRON, NUM, PUNCT, ...).
Give the lowercase dictionary lemma of each token.`,
		Fields: []SchemaField{
			{
				Name:        "tokens",
				Type:        `[{"token": "string", "pos": "string", "lemma": "string"}]`,
				Description: "One entry per token, in input order",
				Required:    true,
			},
		},
	}
}
