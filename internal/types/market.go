package types

// DemandLevel describes hiring demand for a role.
type DemandLevel string

// Demand levels
const (
	DemandLow        DemandLevel = "Low"
	DemandMedium     DemandLevel = "Medium"
	DemandMediumHigh DemandLevel = "Medium-High"
	DemandHigh       DemandLevel = "High"
	DemandVeryHigh   DemandLevel = "Very High"
)

// MarketProfile is the market-fit profile of the detected role.
type MarketProfile struct {
	Role         string      `json:"role"`
	SalaryRange  string      `json:"salary_range"`
	DemandLevel  DemandLevel `json:"demand_level"`
	DemandGrowth string      `json:"demand_growth"`
	TopSkills    []string    `json:"top_skills"`
	AvgTenure    string      `json:"avg_tenure"`
}

// SuccessPrediction is the estimated interview probability, as a percentage in [5,95].
type SuccessPrediction struct {
	InterviewProbability float64  `json:"interview_probability"`
	Tips                 []string `json:"tips"`
}
