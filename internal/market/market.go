// Package market estimates the target role from resume and job text and returns
// its static market profile.
package market

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/types"
)

type roleIndicator struct {
	role    string
	pattern *regexp.Regexp
}

// indicators are tested in order; the first match wins. Patterns anchor only
// the start of a word so plurals such as "data scientists" still match.
var indicators = []roleIndicator{
	{"data scientist", regexp.MustCompile(`\bdata scientist`)},
	{"product manager", regexp.MustCompile(`\bproduct manager`)},
	{"devops engineer", regexp.MustCompile(`\b(?:devops|sre)`)},
	{"frontend developer", regexp.MustCompile(`\b(?:frontend|front-end)`)},
	{"backend developer", regexp.MustCompile(`\b(?:backend|back-end)`)},
	{"full stack developer", regexp.MustCompile(`\b(?:full stack|fullstack)`)},
}

// DetectRole returns the lowercase role name indicated by the job and resume text.
func DetectRole(resumeText, jobText string) string {
	search := strings.ToLower(jobText + " " + resumeText)
	for _, ind := range indicators {
		if ind.pattern.MatchString(search) {
			return ind.role
		}
	}
	return catalog.DefaultRole
}

// Estimate returns the market profile of the detected role, with the role title-cased.
func Estimate(resumeText, jobText string) types.MarketProfile {
	role := DetectRole(resumeText, jobText)
	entry, _ := catalog.Market(role)
	return types.MarketProfile{
		Role:         cases.Title(language.English).String(entry.Role),
		SalaryRange:  entry.SalaryRange,
		DemandLevel:  types.DemandLevel(entry.DemandLevel),
		DemandGrowth: entry.DemandGrowth,
		TopSkills:    entry.TopSkills,
		AvgTenure:    entry.AvgTenure,
	}
}
