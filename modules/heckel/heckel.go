// Package heckel computes edit scripts between two ordered sequences in
// linear time.
//
// The matching follows Paul Heckel, "A technique for isolating differences
// between files" (CACM, 1978). A result lists deletes, inserts, moves and
// updates. Applying [Result.ApplicableSteps] to the old sequence, one step
// at a time, yields the new sequence.
//
// Keys and equality must be deterministic for the duration of a call. If an
// element reports a different key or equality between two queries the result
// may misclassify moves and updates.
package heckel

import (
	"fmt"
)

// https://dl.acm.org/doi/10.1145/359460.359467
// https://gist.github.com/ndarville/3166060

// Operation defines the operation of an edit step.
type Operation int8

const (
	// Delete removes the element at Index of the old sequence.
	Delete Operation = iota + 1
	// Insert places Value at Index of the new sequence.
	Insert
	// Move relocates the element at From (old sequence) to To (new sequence).
	Move
	// Update replaces the content at Index (new sequence) with Value.
	Update
)

var (
	operationNameMap = map[Operation]string{
		Delete: "delete",
		Insert: "insert",
		Move:   "move",
		Update: "update",
	}
)

func (o Operation) String() string {
	if n, ok := operationNameMap[o]; ok {
		return n
	}
	return "unknown"
}

// Diffable is the contract of a sequence element. DiffKey identifies the
// logical element across both sequences; DiffEqual reports whether the
// content of two elements sharing a key is unchanged.
type Diffable[K comparable, E any] interface {
	DiffKey() K
	DiffEqual(other E) bool
}

// KeyFunc extracts the identity of an element.
type KeyFunc[E any, K comparable] func(E) K

// EqualFunc reports whether two elements sharing a key have equal content.
type EqualFunc[E any] func(x, y E) bool

// Step is one edit operation. Index is an old-sequence position for
// deletes and a new-sequence position for inserts and updates. Moves carry
// From (old sequence) and To (new sequence) and leave Index unset. Updates
// also record in From the old position whose content was replaced.
type Step[E any] struct {
	Type  Operation
	Value E
	Index int
	From  int
	To    int
}

func DeleteStep[E any](value E, index int) Step[E] {
	return Step[E]{Type: Delete, Value: value, Index: index}
}

func InsertStep[E any](value E, index int) Step[E] {
	return Step[E]{Type: Insert, Value: value, Index: index}
}

func MoveStep[E any](value E, from, to int) Step[E] {
	return Step[E]{Type: Move, Value: value, From: from, To: to}
}

func UpdateStep[E any](value E, from, index int) Step[E] {
	return Step[E]{Type: Update, Value: value, Index: index, From: from}
}

func (s Step[E]) String() string {
	if s.Type == Move {
		return fmt.Sprintf("move(%v, %d -> %d)", s.Value, s.From, s.To)
	}
	return fmt.Sprintf("%s(%v, %d)", s.Type, s.Value, s.Index)
}

// DiffFunc computes the edit script from a to b. key extracts the identity
// of an element and equal compares the content of two elements sharing a
// key. Neither input is modified.
//
// Complexity: O(n+m) where n is len(a) and m is len(b).
func DiffFunc[E any, K comparable](a, b []E, key KeyFunc[E, K], equal EqualFunc[E]) *Result[E] {
	oa, na := match(a, b, key)
	return classify(a, b, oa, na, equal)
}

// Diff computes the edit script from a to b for elements implementing
// Diffable.
func Diff[K comparable, E Diffable[K, E]](a, b []E) *Result[E] {
	return DiffFunc(a, b, func(e E) K {
		return e.DiffKey()
	}, func(x, y E) bool {
		return x.DiffEqual(y)
	})
}

// DiffComparable computes the edit script for comparable elements; every
// element is its own key, so the result never contains updates.
func DiffComparable[E comparable](a, b []E) *Result[E] {
	return DiffFunc(a, b, func(e E) E {
		return e
	}, func(x, y E) bool {
		return x == y
	})
}
