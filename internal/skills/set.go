// Package skills provides the normalized skill set type and the taxonomy-based
// skill matcher that extracts skill sets from tokenized text.
package skills

import (
	"encoding/json"
	"sort"
	"strings"
)

// Set is a set of normalized skill names.
// Names are normalized when added, so membership is case-insensitive by construction.
type Set struct {
	m map[string]struct{}
}

// Normalize trims, lowercases and collapses inner whitespace of a skill name.
func Normalize(skill string) string {
	return strings.Join(strings.Fields(strings.ToLower(skill)), " ")
}

// NewSet creates a Set from the given names, normalizing each and dropping empties.
func NewSet(names ...string) Set {
	s := Set{m: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a normalized name. Empty names are ignored.
func (s *Set) Add(name string) {
	name = Normalize(name)
	if name == "" {
		return
	}
	if s.m == nil {
		s.m = make(map[string]struct{})
	}
	s.m[name] = struct{}{}
}

// Has reports whether name (normalized) is in the set.
func (s Set) Has(name string) bool {
	_, ok := s.m[Normalize(name)]
	return ok
}

// Len returns the number of skills.
func (s Set) Len() int {
	return len(s.m)
}

// IsEmpty reports whether the set has no skills.
func (s Set) IsEmpty() bool {
	return len(s.m) == 0
}

// Union returns a new set with the skills of s and o.
func (s Set) Union(o Set) Set {
	out := Set{m: make(map[string]struct{}, len(s.m)+len(o.m))}
	for k := range s.m {
		out.m[k] = struct{}{}
	}
	for k := range o.m {
		out.m[k] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the skills present in both s and o.
func (s Set) Intersect(o Set) Set {
	out := Set{m: make(map[string]struct{})}
	for k := range s.m {
		if _, ok := o.m[k]; ok {
			out.m[k] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set with the skills of s that are not in o.
func (s Set) Difference(o Set) Set {
	out := Set{m: make(map[string]struct{})}
	for k := range s.m {
		if _, ok := o.m[k]; !ok {
			out.m[k] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets hold the same skills.
func (s Set) Equal(o Set) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for k := range s.m {
		if _, ok := o.m[k]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the skills in lexicographic order.
// This is the canonical order used wherever a set becomes a list.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of names into the set.
func (s *Set) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NewSet(names...)
	return nil
}
