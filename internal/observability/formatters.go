// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// otherCategory labels skills the taxonomy does not know
	otherCategory = "Other"
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if utf8.RuneCountInString(line) > inner {
			line = logger.Truncate(line, inner-3)
		}
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// PrintScore outputs the match score breakdown and skill gap.
func (p *Printer) PrintScore(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:     %3.0f / 100\n", report.Score))
	sb.WriteString(fmt.Sprintf("Semantic:  %3.0f\n", report.SectionScores.Semantic))
	sb.WriteString(fmt.Sprintf("Skills:    %3.0f\n", report.SectionScores.Skills))
	sb.WriteString("\n")
	writeList(&sb, "Present skills:", report.PresentSkills)
	writeList(&sb, "Missing skills:", report.MissingSkills)
	if len(report.MissingSkills) > 0 {
		sb.WriteString("Gaps by category:\n")
		for _, line := range gapsByCategory(report.MissingSkills) {
			sb.WriteString("  " + line + "\n")
		}
	}

	p.printBox("MATCH SCORE", sb.String())
}

// gapsByCategory groups missing skills under their taxonomy category, in
// taxonomy order. Skills outside the taxonomy are listed under "Other".
func gapsByCategory(missing []string) []string {
	taxonomy := catalog.Taxonomy()
	grouped := make(map[string][]string)
	for _, skill := range missing {
		category, ok := taxonomy.CategoryOf(skill)
		if !ok {
			category = otherCategory
		}
		grouped[category] = append(grouped[category], skill)
	}

	lines := make([]string, 0, len(grouped))
	for _, category := range append(taxonomy.Categories(), otherCategory) {
		if gap := grouped[category]; len(gap) > 0 {
			lines = append(lines, category+": "+strings.Join(gap, ", "))
		}
	}
	return lines
}

// PrintTrajectory outputs the projected score for each simulated skill.
func (p *Printer) PrintTrajectory(points []types.TrajectoryPoint) {
	if len(points) == 0 {
		return
	}

	var sb strings.Builder
	for _, point := range points {
		sb.WriteString(fmt.Sprintf("+ %-20s → %3.0f  (+%.0f)\n", point.Skill, point.ProjectedTotal, point.Boost))
	}
	p.printBox("SKILL TRAJECTORY", sb.String())
}

// PrintBullets outputs the weakest resume bullets with their suggestions.
func (p *Printer) PrintBullets(findings []types.BulletFinding) {
	if len(findings) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(findings), maxItemsToShow)
	for i := 0; i < count; i++ {
		f := findings[i]
		sb.WriteString(fmt.Sprintf("[%3d] %s\n", f.QualityScore, f.Text))
		for _, s := range f.Suggestions {
			sb.WriteString(fmt.Sprintf("      • %s\n", s))
		}
	}
	if len(findings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(findings)-maxItemsToShow))
	}
	p.printBox("BULLET ANALYSIS", sb.String())
}

// PrintRecommendations outputs the recommendation texts in order.
func (p *Printer) PrintRecommendations(recs []string) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
	}
	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintInterview outputs the selected interview questions.
func (p *Printer) PrintInterview(questions []types.InterviewQuestion) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for _, q := range questions {
		sb.WriteString(fmt.Sprintf("[%s/%s] %s\n", q.Category, q.Difficulty, q.Skill))
		sb.WriteString(fmt.Sprintf("  %s\n", q.Question))
	}
	p.printBox("INTERVIEW PREP", sb.String())
}

// PrintMarket outputs the market profile and the interview probability.
func (p *Printer) PrintMarket(profile types.MarketProfile, prediction types.SuccessPrediction) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", profile.Role))
	sb.WriteString(fmt.Sprintf("Salary:     %s\n", profile.SalaryRange))
	sb.WriteString(fmt.Sprintf("Demand:     %s (%s)\n", profile.DemandLevel, profile.DemandGrowth))
	sb.WriteString(fmt.Sprintf("Avg tenure: %s\n", profile.AvgTenure))
	if len(profile.TopSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Top skills: %s\n", strings.Join(profile.TopSkills, ", ")))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Interview probability: %.1f%%\n", prediction.InterviewProbability))
	for _, tip := range prediction.Tips {
		sb.WriteString(fmt.Sprintf("  • %s\n", tip))
	}
	p.printBox("MARKET FIT", sb.String())
}

// PrintStructure outputs the resume structure check.
func (p *Printer) PrintStructure(s *types.StructureAnalysis) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File size:    %.1f KB\n", s.FileSizeKB))
	sb.WriteString(fmt.Sprintf("Text length:  %d chars\n", s.TextLength))
	sb.WriteString(fmt.Sprintf("Contact info: %s\n", yesNo(s.ContactInfoPresent)))
	if s.IsScannedPDF {
		sb.WriteString("Warning: little text; likely a scanned image\n")
	}
	p.printBox("RESUME STRUCTURE", sb.String())
}

// PrintReport outputs every section of a report.
func (p *Printer) PrintReport(report *types.AnalysisReport) {
	if report == nil {
		return
	}
	p.PrintScore(report)
	p.PrintStructure(report.StructureAnalysis)
	p.PrintTrajectory(report.Trajectory)
	p.PrintBullets(report.BulletAnalysis)
	p.PrintRecommendations(report.Recommendations)
	p.PrintInterview(report.InterviewQuestions)
	p.PrintMarket(report.MarketAnalysis, report.SuccessPrediction)
}

func writeList(sb *strings.Builder, heading string, items []string) {
	sb.WriteString(heading + "\n")
	if len(items) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	count := min(len(items), maxItemsToShow)
	sb.WriteString("  " + strings.Join(items[:count], ", "))
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf(" ... and %d more", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
