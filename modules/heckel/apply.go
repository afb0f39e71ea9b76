package heckel

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrIndexOutOfRange  = errors.New("step index out of range")
	ErrUnknownOperation = errors.New("unknown step operation")
)

// Apply replays steps, in the given order, on a copy of s and returns the
// copy. Every index is interpreted against the sequence as it stands when
// the step is reached. s itself is left untouched.
func Apply[E any](s []E, steps []Step[E]) ([]E, error) {
	out := slices.Clone(s)
	for n, st := range steps {
		var err error
		if out, err = applyStep(out, st); err != nil {
			return nil, fmt.Errorf("step %d %v: %w", n, st, err)
		}
	}
	return out, nil
}

// ApplyResult applies r in its safe application order.
func ApplyResult[E any](s []E, r *Result[E]) ([]E, error) {
	return Apply(s, r.ApplicableSteps())
}

func applyStep[E any](out []E, st Step[E]) ([]E, error) {
	switch st.Type {
	case Delete:
		if st.Index < 0 || st.Index >= len(out) {
			return nil, ErrIndexOutOfRange
		}
		return slices.Delete(out, st.Index, st.Index+1), nil
	case Insert:
		if st.Index < 0 || st.Index > len(out) {
			return nil, ErrIndexOutOfRange
		}
		return slices.Insert(out, st.Index, st.Value), nil
	case Move:
		if st.From < 0 || st.From >= len(out) || st.To < 0 || st.To >= len(out) {
			return nil, ErrIndexOutOfRange
		}
		out = slices.Delete(out, st.From, st.From+1)
		return slices.Insert(out, st.To, st.Value), nil
	case Update:
		if st.Index < 0 || st.Index >= len(out) {
			return nil, ErrIndexOutOfRange
		}
		out[st.Index] = st.Value
		return out, nil
	}
	return nil, ErrUnknownOperation
}
