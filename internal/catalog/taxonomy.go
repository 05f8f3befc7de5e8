package catalog

import (
	"strings"
	"sync"
)

// Category names referenced by the recommendation engine.
const (
	CategoryLanguages  = "Languages"
	CategoryFrontend   = "Frontend"
	CategoryAIML       = "AI/ML"
	CategoryDatabase   = "Database"
	CategoryDevOps     = "DevOps & Cloud"
	CategoryTools      = "Tools"
	CategoryConcepts   = "Concepts"
	CategorySoftSkills = "Soft Skills"
)

// SkillCategory is one named group of canonical skill names.
type SkillCategory struct {
	Name   string   `json:"category"`
	Skills []string `json:"skills"`
}

// SkillTaxonomy maps canonical skill names to categories.
// All skill names are lowercase.
type SkillTaxonomy struct {
	categories []SkillCategory
	// skill -> first category that lists it
	index map[string]string
}

var (
	taxonomyOnce sync.Once
	taxonomy     *SkillTaxonomy
)

// Taxonomy returns the process-wide skill taxonomy.
func Taxonomy() *SkillTaxonomy {
	taxonomyOnce.Do(func() {
		var categories []SkillCategory
		mustReadJSON(taxonomyFile, &categories)
		taxonomy = NewSkillTaxonomy(categories)
	})
	return taxonomy
}

// NewSkillTaxonomy builds a taxonomy from categories, normalizing skill names to lowercase.
// When a skill appears in more than one category, the first category wins.
func NewSkillTaxonomy(categories []SkillCategory) *SkillTaxonomy {
	t := &SkillTaxonomy{
		categories: make([]SkillCategory, 0, len(categories)),
		index:      make(map[string]string),
	}
	for _, c := range categories {
		normalized := SkillCategory{Name: c.Name, Skills: make([]string, 0, len(c.Skills))}
		for _, s := range c.Skills {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			normalized.Skills = append(normalized.Skills, s)
			if _, exists := t.index[s]; !exists {
				t.index[s] = c.Name
			}
		}
		t.categories = append(t.categories, normalized)
	}
	return t
}

// Categories returns the category names in table order.
func (t *SkillTaxonomy) Categories() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Skills returns a copy of the skills listed under category, or nil if unknown.
func (t *SkillTaxonomy) Skills(category string) []string {
	for _, c := range t.categories {
		if c.Name == category {
			return append([]string(nil), c.Skills...)
		}
	}
	return nil
}

// CategoryOf reports the category a skill belongs to.
func (t *SkillTaxonomy) CategoryOf(skill string) (string, bool) {
	c, ok := t.index[strings.ToLower(strings.TrimSpace(skill))]
	return c, ok
}

// Has reports whether skill is a canonical skill name.
func (t *SkillTaxonomy) Has(skill string) bool {
	_, ok := t.index[skill]
	return ok
}
