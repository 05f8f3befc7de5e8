// Package bullets critiques resume bullet points for action verbs, quantified
// impact and length.
package bullets

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Score components
const (
	verbPoints      = 40
	metricPoints    = 40
	lengthPoints    = 20
	vaguePenalty    = 10
	minWords        = 8
	maxWords        = 35
	leadWordsWindow = 5
	perfectScore    = 100
	maxFindings     = 10
)

// Suggestions, in the order they are emitted.
const (
	SuggestVerb     = "Start with a high-impact action verb (e.g., 'Spearheaded', 'Optimized' instead of 'Worked on')."
	SuggestMetric   = "Add metrics to prove value. (e.g., 'Reduced latency by 20%', 'Managed $50k budget', 'Served 10k users')."
	SuggestTooShort = "Too short. Add context: What did you do, How did you do it, and What was the result?"
	SuggestTooLong  = "Too long/run-on. Split into concise points."
	SuggestVague    = "Vague statement. Use the 'XYZ Method': 'Accomplished [X] as measured by [Y], by doing [Z]'."
)

var (
	metricPattern = regexp.MustCompile(`\d+\s*%|\$\s*[\d,.]+|\d+\s*x\b|\d+\s*[kKmMbB]\b|\d+\s*(?:users?|customers?|clients?|projects?|teams?|people|members|employees|transactions|requests|queries|records|years?|months?|days?|hours?|minutes?)`)
	wordPattern   = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// Score rates a single bullet from 0 to 100 and lists what would improve it.
// tagger may be nil, in which case only the leading words are checked for a verb.
func Score(ctx context.Context, bullet string, tagger nlp.Tagger) (types.BulletFinding, error) {
	finding := types.BulletFinding{Text: bullet, Suggestions: []string{}}

	hasVerb, err := hasStrongVerb(ctx, bullet, tagger)
	if err != nil {
		return types.BulletFinding{}, err
	}
	if hasVerb {
		finding.QualityScore += verbPoints
	} else {
		finding.Suggestions = append(finding.Suggestions, SuggestVerb)
	}

	hasMetric := HasMetric(bullet)
	if hasMetric {
		finding.QualityScore += metricPoints
	} else {
		finding.Suggestions = append(finding.Suggestions, SuggestMetric)
	}

	switch words := len(strings.Fields(bullet)); {
	case words < minWords:
		finding.Suggestions = append(finding.Suggestions, SuggestTooShort)
	case words > maxWords:
		finding.Suggestions = append(finding.Suggestions, SuggestTooLong)
	default:
		finding.QualityScore += lengthPoints
	}

	if !hasVerb && !hasMetric {
		finding.QualityScore = max(0, finding.QualityScore-vaguePenalty)
		finding.Suggestions = append(finding.Suggestions, SuggestVague)
	}

	return finding, nil
}

// Analyze segments text into bullets and returns the findings that score below 100,
// weakest first, at most 10.
func Analyze(ctx context.Context, text string, tagger nlp.Tagger) ([]types.BulletFinding, error) {
	findings := []types.BulletFinding{}
	for _, bullet := range Segment(text) {
		f, err := Score(ctx, bullet, tagger)
		if err != nil {
			return nil, fmt.Errorf("failed to score bullet: %w", err)
		}
		if f.QualityScore < perfectScore {
			findings = append(findings, f)
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].QualityScore < findings[j].QualityScore
	})
	if len(findings) > maxFindings {
		findings = findings[:maxFindings]
	}
	return findings, nil
}

// HasMetric reports whether text quantifies its impact.
func HasMetric(text string) bool {
	return metricPattern.MatchString(text)
}

func hasStrongVerb(ctx context.Context, bullet string, tagger nlp.Tagger) (bool, error) {
	if tagger != nil {
		tokens, err := tagger.Tag(ctx, bullet)
		if err != nil {
			return false, fmt.Errorf("failed to tag bullet: %w", err)
		}
		for _, tok := range tokens {
			if tok.POS == nlp.POSVerb && (IsStrongVerb(tok.Lemma) || IsStrongVerb(tok.Text)) {
				return true, nil
			}
		}
	}

	words := wordPattern.FindAllString(lower(bullet), leadWordsWindow)
	for _, w := range words {
		if strongVerbs[w] {
			return true, nil
		}
	}
	return false, nil
}
