package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func sampleReport() *types.AnalysisReport {
	return &types.AnalysisReport{
		Score:         61,
		SectionScores: types.SectionScores{Semantic: 80, Skills: 33},
		MissingSkills: []string{"aws", "react"},
		PresentSkills: []string{"python"},
		Trajectory: []types.TrajectoryPoint{
			{Skill: "aws", ProjectedTotal: 75, Boost: 14},
		},
		BulletAnalysis: []types.BulletFinding{
			{Text: "Worked on stuff", QualityScore: 0, Suggestions: []string{"Start with a strong action verb."}},
		},
		Recommendations: []string{"Good start, but there are gaps."},
		InterviewQuestions: []types.InterviewQuestion{
			{Category: types.QuestionWeakness, Skill: "aws", Question: "Explain EC2 vs Lambda.", Difficulty: types.DifficultyHard},
		},
		MarketAnalysis: types.MarketProfile{
			Role: "Software Engineer", SalaryRange: "$90k - $160k", DemandLevel: types.DemandHigh,
			DemandGrowth: "+12%", TopSkills: []string{"Python", "AWS"}, AvgTenure: "2.1 years",
		},
		SuccessPrediction: types.SuccessPrediction{InterviewProbability: 61, Tips: []string{"Learn critical skills like aws and react."}},
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(sampleReport())
	output := buf.String()

	for _, want := range []string{
		"MATCH SCORE", "SKILL TRAJECTORY", "BULLET ANALYSIS", "RECOMMENDATIONS", "INTERVIEW PREP", "MARKET FIT",
		"Total:      61 / 100", "aws, react", "(+14)", "[  0] Worked on stuff", "1. Good start",
		"[Weakness/Hard] aws", "Software Engineer", "Interview probability: 61.0%",
	} {
		assert.Contains(t, output, want)
	}
	assert.NotContains(t, output, "RESUME STRUCTURE")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintStructure(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStructure(&types.StructureAnalysis{FileSizeKB: 1.5, TextLength: 40, IsScannedPDF: true})
	output := buf.String()

	assert.Contains(t, output, "1.5 KB")
	assert.Contains(t, output, "Contact info: no")
	assert.Contains(t, output, "Warning: little text; likely a scanned image")
	assert.NotContains(t, output, "...")
}

func TestPrintScore_GroupsGapsByCategory(t *testing.T) {
	report := sampleReport()
	report.MissingSkills = []string{"aws", "kubernetes", "react", "underwater welding"}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintScore(report)
	output := buf.String()

	assert.Contains(t, output, "Gaps by category:")
	assert.Contains(t, output, "Frontend: react")
	assert.Contains(t, output, "DevOps & Cloud: aws, kubernetes")
	assert.Contains(t, output, "Other: underwater welding")
	assert.Less(t, strings.Index(output, "Frontend: react"), strings.Index(output, "DevOps & Cloud:"))
	assert.Less(t, strings.Index(output, "DevOps & Cloud:"), strings.Index(output, "Other:"))
}

func TestPrintScore_NoGapSectionWhenNothingMissing(t *testing.T) {
	report := sampleReport()
	report.MissingSkills = nil

	var buf bytes.Buffer
	NewPrinter(&buf).PrintScore(report)
	assert.NotContains(t, buf.String(), "Gaps by category:")
}

func TestPrintBullets_LimitsItems(t *testing.T) {
	findings := make([]types.BulletFinding, 8)
	for i := range findings {
		findings[i] = types.BulletFinding{Text: "Handled tickets", QualityScore: 10}
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintBullets(findings)
	assert.Equal(t, maxItemsToShow, strings.Count(buf.String(), "Handled tickets"))
	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintBox_LinesHaveFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.printBox("TITLE", "short\n"+strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestEmptySectionsPrintNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintTrajectory(nil)
	p.PrintBullets(nil)
	p.PrintRecommendations(nil)
	p.PrintInterview(nil)
	p.PrintStructure(nil)
	assert.Empty(t, buf.String())
}
