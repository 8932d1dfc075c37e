// Package content holds the static quiz catalog: categories, specializations
// (recursively nestable), levels, and questions. The catalog is loaded once at
// startup and never mutated.
package content

// Question is a single multiple-choice question. IDs are unique within the
// owning level.
type Question struct {
	ID           int      `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// Level is one difficulty tier within a specialization. Number is the 1-based
// contiguous display ordinal that defines unlock order; ID is the stable
// identifier and is unique only within the owning specialization. A level
// with no questions means the content has not been authored yet.
type Level struct {
	ID        int        `json:"id"`
	Number    int        `json:"number"`
	Questions []Question `json:"questions,omitempty"`
}

// HasQuestions reports whether the level has authored content.
func (l Level) HasQuestions() bool {
	return len(l.Questions) > 0
}

// Specialization is a track of study. It may nest child specializations to
// arbitrary depth; observed content stays within two levels but lookups must
// not assume that.
type Specialization struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Levels   []Level          `json:"levels,omitempty"`
	Children []Specialization `json:"children,omitempty"`
}

// HasChildren reports whether the specialization nests child specializations.
func (s Specialization) HasChildren() bool {
	return len(s.Children) > 0
}

// Placeholder reports whether the specialization has neither authored levels
// nor children ("coming soon").
func (s Specialization) Placeholder() bool {
	if s.HasChildren() {
		return false
	}
	for _, l := range s.Levels {
		if l.HasQuestions() {
			return false
		}
	}
	return true
}

// LevelByID returns the level with the given id, or nil.
func (s Specialization) LevelByID(id int) *Level {
	for i := range s.Levels {
		if s.Levels[i].ID == id {
			return &s.Levels[i]
		}
	}
	return nil
}

// Category is a top-level grouping of specializations. Categories never nest.
type Category struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Specializations []Specialization `json:"specializations"`
}

// Catalog is the root of the content tree.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// CategoryByID returns the category with the given id, or nil.
func (c *Catalog) CategoryByID(id string) *Category {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i]
		}
	}
	return nil
}
