// Package progress tracks the best score achieved per (specialization,
// level) pair and persists it through a key-value record store.
package progress

// Progress maps specialization id to a map of level id to best score. Scores
// are monotonically non-decreasing for the lifetime of an entry: a new
// attempt overwrites only when strictly greater.
type Progress map[string]map[int]int

// Best returns the recorded best score for a (spec, level) pair.
func (p Progress) Best(specID string, levelID int) (int, bool) {
	levels, ok := p[specID]
	if !ok {
		return 0, false
	}
	score, ok := levels[levelID]
	return score, ok
}

// Clone returns a deep copy of the mapping.
func (p Progress) Clone() Progress {
	out := make(Progress, len(p))
	for specID, levels := range p {
		cp := make(map[int]int, len(levels))
		for levelID, score := range levels {
			cp[levelID] = score
		}
		out[specID] = cp
	}
	return out
}

// with returns a copy of the mapping with one entry replaced. The receiver
// is never mutated; progress merges are immutable-replace to avoid partial
// update hazards.
func (p Progress) with(specID string, levelID, score int) Progress {
	out := p.Clone()
	levels, ok := out[specID]
	if !ok {
		levels = make(map[int]int, 1)
		out[specID] = levels
	}
	levels[levelID] = score
	return out
}
