package heckel

import (
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testUser struct {
	Name string
	Age  int
}

func (u testUser) DiffKey() string {
	return u.Name
}

func (u testUser) DiffEqual(o testUser) bool {
	return u == o
}

func split(s string) []string {
	if len(s) == 0 {
		return nil
	}
	return strings.Split(s, "")
}

// checkPartition verifies that no position is claimed twice and that
// deletes and inserts balance the matched positions.
func checkPartition[E any](t *testing.T, n, m int, r *Result[E]) {
	t.Helper()
	oldSeen := make([]int, n)
	newSeen := make([]int, m)
	inserted := make(map[int]bool)
	deleted := make(map[int]bool)
	for _, s := range r.Deletes {
		oldSeen[s.Index]++
		deleted[s.Index] = true
	}
	for _, s := range r.Inserts {
		newSeen[s.Index]++
		inserted[s.Index] = true
	}
	for _, s := range r.Moves {
		oldSeen[s.From]++
		newSeen[s.To]++
	}
	for j, c := range oldSeen {
		require.LessOrEqual(t, c, 1, "old position %d claimed %d times", j, c)
	}
	for i, c := range newSeen {
		require.LessOrEqual(t, c, 1, "new position %d claimed %d times", i, c)
	}
	for _, s := range r.Updates {
		require.False(t, inserted[s.Index], "update at inserted position %d", s.Index)
		require.False(t, deleted[s.From], "update of deleted position %d", s.From)
	}
	require.Equal(t, n-len(r.Deletes), m-len(r.Inserts))
}

func requireRoundTrip[E any](t *testing.T, a, b []E, r *Result[E]) {
	t.Helper()
	got, err := ApplyResult(a, r)
	require.NoError(t, err)
	if len(b) == 0 {
		require.Empty(t, got)
		return
	}
	require.Equal(t, b, got)
}

func TestDiff(t *testing.T) {
	cases := []struct {
		a, b string
	}{
		{"abc", "abc"},
		{"", "abcde"},
		{"abccc", ""},
		{"abccc", "ebcda"},
		{"pUbA5F", "OwZU"},
		{"pbUA5F", "OwZU"},
		{"xEgBfo3m", "jfLLmVgQ1"},
		{"jEgBfo3m", "jfLLmVgQ1"},
		{"abcd", "dcba"},
		{"aaaa", "aa"},
		{"abab", "baba"},
	}
	for _, c := range cases {
		a, b := split(c.a), split(c.b)
		r := DiffComparable(a, b)
		checkPartition(t, len(a), len(b), r)
		requireRoundTrip(t, a, b, r)
		requireRoundTrip(t, a, b, r.AsDeletesInserts())
	}
}

func TestDiffUpdate(t *testing.T) {
	a := []testUser{{Name: "1", Age: 0}, {Name: "2", Age: 0}}
	b := []testUser{{Name: "1", Age: 0}, {Name: "2", Age: 1}}
	r := Diff[string](a, b)
	require.Equal(t, []Step[testUser]{UpdateStep(testUser{Name: "2", Age: 1}, 1, 1)}, r.Updates)
	require.Empty(t, r.Deletes)
	require.Empty(t, r.Inserts)
	require.Empty(t, r.Moves)
	requireRoundTrip(t, a, b, r)
}

func TestContentOnlyChange(t *testing.T) {
	a := []testUser{{Name: "1", Age: 0}}
	b := []testUser{{Name: "1", Age: 1}}
	r := Diff[string](a, b)
	require.Equal(t, 1, r.Len())
	require.Len(t, r.Updates, 1)
	require.Equal(t, 0, r.Updates[0].Index)
	require.Equal(t, b[0], r.Updates[0].Value)
}

func TestIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "abc", "ccc", "abcabc", "aabbaa"} {
		a := split(s)
		r := DiffComparable(a, slices.Clone(a))
		require.True(t, r.Empty(), "diff of %q against itself: %v", s, r.Steps())
	}
}

func TestPureInsert(t *testing.T) {
	b := split("xyzxy")
	r := DiffComparable(nil, b)
	require.Empty(t, r.Deletes)
	require.Empty(t, r.Moves)
	require.Empty(t, r.Updates)
	require.Len(t, r.Inserts, len(b))
	for i, s := range r.Inserts {
		require.Equal(t, i, s.Index)
		require.Equal(t, b[i], s.Value)
	}
}

func TestPureDelete(t *testing.T) {
	a := split("xyzxy")
	r := DiffComparable(a, nil)
	require.Empty(t, r.Inserts)
	require.Empty(t, r.Moves)
	require.Empty(t, r.Updates)
	indexes := make([]int, 0, len(r.Deletes))
	for _, s := range r.Deletes {
		indexes = append(indexes, s.Index)
	}
	slices.Sort(indexes)
	require.Equal(t, []int{0, 1, 2, 3, 4}, indexes)
	requireRoundTrip(t, a, nil, r)
}

func TestReorderOnly(t *testing.T) {
	a, b := split("abc"), split("cab")
	r := DiffComparable(a, b)
	require.Empty(t, r.Deletes)
	require.Empty(t, r.Inserts)
	require.Empty(t, r.Updates)
	require.NotEmpty(t, r.Moves)
	requireRoundTrip(t, a, b, r)
}

func TestMoveAfterDelete(t *testing.T) {
	// b and c shift left after the delete without being reported as moves
	a, b := split("abc"), split("bc")
	r := DiffComparable(a, b)
	require.Equal(t, []Step[string]{DeleteStep("a", 0)}, r.Deletes)
	require.Empty(t, r.Moves)
	require.Empty(t, r.Inserts)
}

func TestDuplicatesCollapse(t *testing.T) {
	a, b := split("ccc"), split("c")
	r := DiffComparable(a, b)
	require.Empty(t, r.Inserts)
	require.Empty(t, r.Moves)
	require.Len(t, r.Deletes, 2)
	checkPartition(t, len(a), len(b), r)
	requireRoundTrip(t, a, b, r)
}

func TestDuplicatesNeverConnected(t *testing.T) {
	// the c run is anchored on neither side, so it falls back to delete+insert
	a, b := split("xcc"), split("ccy")
	r := DiffComparable(a, b)
	require.Len(t, r.Deletes, 3)
	require.Len(t, r.Inserts, 3)
	require.Empty(t, r.Moves)
	require.Empty(t, r.Updates)
	requireRoundTrip(t, a, b, r)
}

func TestMovedAndUpdated(t *testing.T) {
	a := []testUser{{Name: "a"}, {Name: "b"}}
	b := []testUser{{Name: "b", Age: 1}, {Name: "a"}}
	r := Diff[string](a, b)
	require.Len(t, r.Updates, 1)
	require.Len(t, r.Moves, 2)
	requireRoundTrip(t, a, b, r)

	n := r.AsDeletesInserts()
	require.Empty(t, n.Moves)
	require.Empty(t, n.Updates)
	require.Len(t, n.Deletes, 2)
	require.Len(t, n.Inserts, 2)
	requireRoundTrip(t, a, b, n)

	u := r.UpdatesAsDeletesInserts()
	require.Empty(t, u.Updates)
	require.Len(t, u.Moves, 1)
	requireRoundTrip(t, a, b, u)

	m := r.MovesAsDeletesInserts()
	require.Empty(t, m.Moves)
	require.Empty(t, m.Updates)
	requireRoundTrip(t, a, b, m)
}

func TestUpdateAfterShift(t *testing.T) {
	a := []testUser{{Name: "a"}, {Name: "x"}}
	b := []testUser{{Name: "y"}, {Name: "a", Age: 2}}
	r := Diff[string](a, b)
	require.Len(t, r.Updates, 1)
	require.Equal(t, 0, r.Updates[0].From)
	require.Equal(t, 1, r.Updates[0].Index)
	requireRoundTrip(t, a, b, r)
	requireRoundTrip(t, a, b, r.AsDeletesInserts())
}

func TestInputsUntouched(t *testing.T) {
	a, b := split("abcdef"), split("fedxba")
	ca, cb := slices.Clone(a), slices.Clone(b)
	r := DiffComparable(a, b)
	_, err := ApplyResult(a, r)
	require.NoError(t, err)
	require.Equal(t, ca, a)
	require.Equal(t, cb, b)
}

func randomString(rng *rand.Rand, alphabet string) []string {
	n := rng.IntN(500)
	out := make([]string, 0, n)
	for range n {
		out = append(out, string(alphabet[rng.IntN(len(alphabet))]))
	}
	return out
}

func randomUsers(rng *rand.Rand) []testUser {
	n := rng.IntN(500)
	out := make([]testUser, 0, n)
	for range n {
		out = append(out, testUser{Name: fmt.Sprintf("u%d", rng.IntN(40)), Age: rng.IntN(2)})
	}
	return out
}

func TestRandomDiffs(t *testing.T) {
	rng := rand.New(rand.NewPCG(1978, 6))
	for i := range 1000 {
		a := randomString(rng, "abcdefghij")
		b := randomString(rng, "abcdefghij")
		r := DiffComparable(a, b)
		got, err := ApplyResult(a, r)
		require.NoError(t, err)
		if !slices.Equal(got, b) {
			fmt.Fprintf(os.Stderr, "round %d\nold = %v\nnew = %v\n", i, a, b)
			t.FailNow()
		}
		checkPartition(t, len(a), len(b), r)
		n := r.AsDeletesInserts()
		require.Empty(t, n.Moves)
		require.Empty(t, n.Updates)
		got, err = ApplyResult(a, n)
		require.NoError(t, err)
		require.True(t, slices.Equal(got, b), "normalized round %d", i)
	}
}

func TestRandomDiffsWithUpdates(t *testing.T) {
	rng := rand.New(rand.NewPCG(1016, 19))
	for i := range 1000 {
		a := randomUsers(rng)
		b := randomUsers(rng)
		r := Diff[string](a, b)
		checkPartition(t, len(a), len(b), r)
		for _, res := range []*Result[testUser]{r, r.MovesAsDeletesInserts(), r.UpdatesAsDeletesInserts(), r.AsDeletesInserts()} {
			got, err := ApplyResult(a, res)
			require.NoError(t, err)
			require.True(t, slices.Equal(got, b), "round %d", i)
		}
	}
}
