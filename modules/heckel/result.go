package heckel

import (
	"cmp"
	"slices"
)

// Result is the edit script of one diff call, split by operation. Each
// bucket keeps the order in which its steps were discovered.
//
// Methods of Result never modify the receiver; rewrites return a new
// Result with freshly allocated buckets.
type Result[E any] struct {
	Deletes []Step[E]
	Inserts []Step[E]
	Moves   []Step[E]
	Updates []Step[E]
}

// NewResultFromSteps buckets a flat list of steps by operation. Steps with
// an unknown operation are ignored.
func NewResultFromSteps[E any](steps []Step[E]) *Result[E] {
	r := &Result[E]{}
	for _, s := range steps {
		switch s.Type {
		case Delete:
			r.Deletes = append(r.Deletes, s)
		case Insert:
			r.Inserts = append(r.Inserts, s)
		case Move:
			r.Moves = append(r.Moves, s)
		case Update:
			r.Updates = append(r.Updates, s)
		}
	}
	return r
}

// Len returns the total number of steps.
func (r *Result[E]) Len() int {
	return len(r.Deletes) + len(r.Inserts) + len(r.Moves) + len(r.Updates)
}

// Empty reports whether both sequences were identical.
func (r *Result[E]) Empty() bool {
	return r.Len() == 0
}

// Steps returns deletes, inserts, moves and updates concatenated. The order
// is meant for reporting; use ApplicableSteps to replay the script.
func (r *Result[E]) Steps() []Step[E] {
	return slices.Concat(r.Deletes, r.Inserts, r.Moves, r.Updates)
}

// ApplicableSteps returns the steps in the order they can be applied one
// after another to the old sequence: moves are rewritten as delete+insert,
// then deletes by descending index, inserts by ascending index, and updates
// in discovery order.
func (r *Result[E]) ApplicableSteps() []Step[E] {
	c := r.MovesAsDeletesInserts()
	deletes := slices.Clone(c.Deletes)
	slices.SortStableFunc(deletes, func(x, y Step[E]) int {
		return cmp.Compare(y.Index, x.Index)
	})
	inserts := slices.Clone(c.Inserts)
	slices.SortStableFunc(inserts, func(x, y Step[E]) int {
		return cmp.Compare(x.Index, y.Index)
	})
	return slices.Concat(deletes, inserts, c.Moves, c.Updates)
}

// AsDeletesInserts rewrites moves, then updates, into delete+insert pairs.
// The returned result contains deletes and inserts only.
func (r *Result[E]) AsDeletesInserts() *Result[E] {
	return r.MovesAsDeletesInserts().UpdatesAsDeletesInserts()
}

// MovesAsDeletesInserts replaces every move(from, to) with delete(from)
// and insert(to). The inserted value is the new content, so an update of a
// moved element is folded into its insert.
func (r *Result[E]) MovesAsDeletesInserts() *Result[E] {
	deletes := make([]Step[E], 0, len(r.Deletes)+len(r.Moves))
	inserts := make([]Step[E], 0, len(r.Inserts)+len(r.Moves))
	deletes = append(deletes, r.Deletes...)
	inserts = append(inserts, r.Inserts...)
	moved := make(map[int]bool, len(r.Moves))
	for _, s := range r.Moves {
		deletes = append(deletes, DeleteStep(s.Value, s.From))
		inserts = append(inserts, InsertStep(s.Value, s.To))
		moved[s.To] = true
	}
	updates := make([]Step[E], 0, len(r.Updates))
	for _, s := range r.Updates {
		if !moved[s.Index] {
			updates = append(updates, s)
		}
	}
	return &Result[E]{
		Deletes: deletes,
		Inserts: inserts,
		Updates: updates,
	}
}

// UpdatesAsDeletesInserts replaces every update with delete(from) and
// insert(index). An updated element that also moved produces a single
// delete+insert pair and its move is dropped.
func (r *Result[E]) UpdatesAsDeletesInserts() *Result[E] {
	deletes := make([]Step[E], 0, len(r.Deletes)+len(r.Updates))
	inserts := make([]Step[E], 0, len(r.Inserts)+len(r.Updates))
	deletes = append(deletes, r.Deletes...)
	inserts = append(inserts, r.Inserts...)
	updated := make(map[int]bool, len(r.Updates))
	for _, s := range r.Updates {
		deletes = append(deletes, DeleteStep(s.Value, s.From))
		inserts = append(inserts, InsertStep(s.Value, s.Index))
		updated[s.Index] = true
	}
	moves := make([]Step[E], 0, len(r.Moves))
	for _, s := range r.Moves {
		if !updated[s.To] {
			moves = append(moves, s)
		}
	}
	return &Result[E]{
		Deletes: deletes,
		Inserts: inserts,
		Moves:   moves,
	}
}
