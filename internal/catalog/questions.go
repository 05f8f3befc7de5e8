package catalog

import "sync"

// BehavioralCategory is the question bank category used for the fallback question.
const BehavioralCategory = "Behavioral"

// QuestionCategory is a named list of interview questions, in bank order.
type QuestionCategory struct {
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
}

var (
	questionsOnce sync.Once
	questions     []QuestionCategory
)

// Questions returns a copy of the interview question bank in its fixed category order.
func Questions() []QuestionCategory {
	questionsOnce.Do(func() {
		mustReadJSON(questionsFile, &questions)
	})
	out := make([]QuestionCategory, len(questions))
	for i, c := range questions {
		out[i] = QuestionCategory{Name: c.Name, Questions: append([]string(nil), c.Questions...)}
	}
	return out
}
