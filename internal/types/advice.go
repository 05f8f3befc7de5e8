package types

// RecommendationKind identifies the rule that produced a recommendation.
type RecommendationKind string

// Recommendation kinds
const (
	RecommendationTier        RecommendationKind = "tier"
	RecommendationCategoryGap RecommendationKind = "category_gap"
	RecommendationSoftSkill   RecommendationKind = "soft_skill"
)

// Recommendation is one piece of advice, tagged with the rule that generated it.
type Recommendation struct {
	Kind     RecommendationKind `json:"kind"`
	Category string             `json:"category,omitempty"`
	Text     string             `json:"text"`
}

// RecommendationTexts flattens recommendations to their text, preserving order.
func RecommendationTexts(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Text
	}
	return out
}

// QuestionCategory classifies an interview question.
type QuestionCategory string

// Question categories
const (
	QuestionWeakness   QuestionCategory = "Weakness"
	QuestionStrength   QuestionCategory = "Strength"
	QuestionBehavioral QuestionCategory = "Behavioral"
)

// Difficulty of an interview question.
type Difficulty string

// Difficulty levels
const (
	DifficultyHard   Difficulty = "Hard"
	DifficultyMedium Difficulty = "Medium"
	DifficultyNA     Difficulty = "N/A"
)

// InterviewQuestion is one tailored interview preparation question.
type InterviewQuestion struct {
	Category   QuestionCategory `json:"category"`
	Skill      string           `json:"skill"`
	Question   string           `json:"question"`
	Difficulty Difficulty       `json:"difficulty"`
}
