// Package predict estimates the probability of landing an interview.
package predict

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Probability model parameters
const (
	minProbability      = 0.05
	maxProbability      = 0.95
	missingPenalty      = 0.05
	maxPenalizedMissing = 3
	lowProbability      = 0.5
)

// Tips
const (
	TipLowScore    = "Your resume score is low. Focus on adding more keywords."
	TipToughMarket = "The market for this role is tough. Consider broadening your search."
	TipGoodMarket  = "Market demand is on your side! Polish your resume to stand out."
)

var demandAdjustment = map[types.DemandLevel]float64{
	types.DemandVeryHigh: 0.15,
	types.DemandHigh:     0.10,
	types.DemandLow:      -0.10,
}

// Predict combines the match score, the skill gap and market demand into an
// interview probability (percent, one decimal, within [5,95]) and tips.
// missing is expected in canonical (sorted) order.
func Predict(total float64, missing []string, profile types.MarketProfile) types.SuccessPrediction {
	if math.IsNaN(total) {
		total = 0
	}
	p := total / 100
	p += demandAdjustment[profile.DemandLevel]
	p -= missingPenalty * float64(min(len(missing), maxPenalizedMissing))
	p = math.Max(minProbability, math.Min(maxProbability, p))

	tips := []string{}
	if p < lowProbability {
		tips = append(tips, TipLowScore)
	}
	if len(missing) >= 2 {
		tips = append(tips, fmt.Sprintf("Learn critical skills like %s and %s.", missing[0], missing[1]))
	}
	if profile.DemandLevel == types.DemandLow {
		tips = append(tips, TipToughMarket)
	} else {
		tips = append(tips, TipGoodMarket)
	}

	return types.SuccessPrediction{
		InterviewProbability: math.Round(p*1000) / 10,
		Tips:                 tips,
	}
}
