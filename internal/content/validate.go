package content

import (
	"fmt"
	"strings"
)

// Validate performs structural checks on a catalog beyond what the JSON
// schema expresses. Returns a combined error describing all problems found,
// or nil if valid.
func Validate(cat *Catalog) error {
	var errs []string

	catIDs := make(map[string]bool, len(cat.Categories))
	specIDs := make(map[string]bool)

	for _, c := range cat.Categories {
		if catIDs[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
		}
		catIDs[c.ID] = true
		for _, s := range c.Specializations {
			errs = append(errs, validateSpecialization(s, specIDs)...)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateSpecialization checks one node and its whole subtree. specIDs
// accumulates across the entire catalog; specialization ids are globally
// unique, level ids only within their owning specialization.
func validateSpecialization(s Specialization, specIDs map[string]bool) []string {
	var errs []string

	if specIDs[s.ID] {
		errs = append(errs, fmt.Sprintf("duplicate specialization ID: %q", s.ID))
	}
	specIDs[s.ID] = true

	levelIDs := make(map[int]bool, len(s.Levels))
	for i, l := range s.Levels {
		if levelIDs[l.ID] {
			errs = append(errs, fmt.Sprintf("specialization %q: duplicate level ID %d", s.ID, l.ID))
		}
		levelIDs[l.ID] = true

		// Display ordinals are 1-based and contiguous in document order.
		if l.Number != i+1 {
			errs = append(errs, fmt.Sprintf("specialization %q: level %d has number %d, want %d", s.ID, l.ID, l.Number, i+1))
		}

		questionIDs := make(map[int]bool, len(l.Questions))
		for _, q := range l.Questions {
			if questionIDs[q.ID] {
				errs = append(errs, fmt.Sprintf("specialization %q level %d: duplicate question ID %d", s.ID, l.ID, q.ID))
			}
			questionIDs[q.ID] = true
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("specialization %q level %d question %d: correctIndex %d out of range for %d options", s.ID, l.ID, q.ID, q.CorrectIndex, len(q.Options)))
			}
		}
	}

	for _, child := range s.Children {
		errs = append(errs, validateSpecialization(child, specIDs)...)
	}
	return errs
}
