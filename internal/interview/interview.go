// Package interview selects tailored interview preparation questions from the
// static question bank.
package interview

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Selection limits
const (
	MaxQuestions        = 7
	behavioralBelow     = 5
	BehavioralSkillName = "Soft Skills"
)

// Matches reports whether a bank category applies to a skill.
//
// The rule is a case-insensitive substring test in either direction, so "sql"
// matches "SQL" and "postgresql" matches it too. It is intentionally loose:
// a one-letter skill such as "r" matches "React".
func Matches(category, skill string) bool {
	c := strings.ToLower(category)
	s := strings.ToLower(skill)
	if c == "" || s == "" {
		return false
	}
	return strings.Contains(s, c) || strings.Contains(c, s)
}

// Select builds the question list: one Hard question per missing skill (input
// order), one Medium question per confirmed strength (sorted), and a Behavioral
// question when fewer than five were produced. At most seven are returned.
func Select(missing []string, jobSkills []string) []types.InterviewQuestion {
	bank := catalog.Questions()
	questions := make([]types.InterviewQuestion, 0, MaxQuestions)

	for _, skill := range missing {
		if cat, ok := findCategory(bank, skill); ok {
			questions = append(questions, types.InterviewQuestion{
				Category:   types.QuestionWeakness,
				Skill:      skill,
				Question:   cat.Questions[0],
				Difficulty: types.DifficultyHard,
			})
		}
	}

	for _, skill := range strengths(missing, jobSkills) {
		if cat, ok := findCategory(bank, skill); ok {
			q := cat.Questions[0]
			if len(cat.Questions) > 1 {
				q = cat.Questions[1]
			}
			questions = append(questions, types.InterviewQuestion{
				Category:   types.QuestionStrength,
				Skill:      skill,
				Question:   q,
				Difficulty: types.DifficultyMedium,
			})
		}
	}

	if len(questions) < behavioralBelow {
		if q, ok := behavioralQuestion(bank); ok {
			questions = append(questions, q)
		}
	}

	if len(questions) > MaxQuestions {
		questions = questions[:MaxQuestions]
	}
	return questions
}

// strengths returns the job skills not listed as missing, sorted.
func strengths(missing, jobSkills []string) []string {
	return skills.NewSet(jobSkills...).Difference(skills.NewSet(missing...)).Sorted()
}

func findCategory(bank []catalog.QuestionCategory, skill string) (catalog.QuestionCategory, bool) {
	for _, cat := range bank {
		if len(cat.Questions) > 0 && Matches(cat.Name, skill) {
			return cat, true
		}
	}
	return catalog.QuestionCategory{}, false
}

func behavioralQuestion(bank []catalog.QuestionCategory) (types.InterviewQuestion, bool) {
	for _, cat := range bank {
		if cat.Name == catalog.BehavioralCategory && len(cat.Questions) > 0 {
			return types.InterviewQuestion{
				Category:   types.QuestionBehavioral,
				Skill:      BehavioralSkillName,
				Question:   cat.Questions[0],
				Difficulty: types.DifficultyNA,
			}, true
		}
	}
	return types.InterviewQuestion{}, false
}
