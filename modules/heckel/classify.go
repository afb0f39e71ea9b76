package heckel

// classify turns the position correspondence into edit steps.
func classify[E any](a, b []E, oa, na []ref, equal EqualFunc[E]) *Result[E] {
	r := &Result[E]{}

	// deleteOffsets[j] is the number of deletes before old position j.
	deleteOffsets := make([]int, len(a))
	runningOffset := 0
	for j, p := range oa {
		deleteOffsets[j] = runningOffset
		if !p.matched() {
			r.Deletes = append(r.Deletes, DeleteStep(a[j], j))
			runningOffset++
		}
	}

	runningOffset = 0
	for i, p := range na {
		j, ok := p.index()
		if !ok {
			r.Inserts = append(r.Inserts, InsertStep(b[i], i))
			runningOffset++
			continue
		}
		if !equal(a[j], b[i]) {
			r.Updates = append(r.Updates, UpdateStep(b[i], j, i))
		}
		// Where the element lands after deletes and inserts alone.
		if j-deleteOffsets[j]+runningOffset != i {
			r.Moves = append(r.Moves, MoveStep(b[i], j, i))
		}
	}
	return r
}
