package content

// FindSpecialization searches a specialization forest depth-first, in document
// order, for the node with the given id. Returns nil if absent. Depth is
// unbounded; the walk uses an explicit stack rather than recursion.
func FindSpecialization(roots []Specialization, id string) *Specialization {
	// Pushed in reverse so document order is preserved.
	stack := make([]*Specialization, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, &roots[i])
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.ID == id {
			return node
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, &node.Children[i])
		}
	}
	return nil
}

// FindParentSpecialization returns the top-level specialization whose
// immediate children contain childID, or nil.
//
// This deliberately inspects only one level of nesting: each category's
// direct specializations' immediate children. A node nested deeper than one
// level below a top-level specialization has no findable parent here. Back
// navigation from the Levels screen relies on this exact behavior, so the
// limitation must not be "fixed" to a full ancestor search.
func FindParentSpecialization(categories []Category, childID string) *Specialization {
	for ci := range categories {
		specs := categories[ci].Specializations
		for si := range specs {
			for _, child := range specs[si].Children {
				if child.ID == childID {
					return &specs[si]
				}
			}
		}
	}
	return nil
}
