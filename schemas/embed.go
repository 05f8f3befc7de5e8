// Package schemas holds the JSON Schemas of the artifacts the matcher produces.
package schemas

import _ "embed"

// AnalysisReportFile is the schema file name, relative to this directory.
const AnalysisReportFile = "analysis_report.schema.json"

// AnalysisReport is the JSON Schema of types.AnalysisReport.
//
//go:embed analysis_report.schema.json
var AnalysisReport []byte
