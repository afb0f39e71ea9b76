package heckel

// symbol is a symbol table entry: one per distinct key in either sequence.
type symbol struct {
	oc   int // occurrences in the old sequence
	nc   int // occurrences in the new sequence
	olno int // old position of the entry, only meaningful while oc == 1
}

// symbolTable owns the entries of a single diff call.
type symbolTable[K comparable] struct {
	index   map[K]int
	entries []symbol
}

func newSymbolTable[K comparable](capacity int) *symbolTable[K] {
	return &symbolTable[K]{
		index:   make(map[K]int, capacity),
		entries: make([]symbol, 0, capacity),
	}
}

func (t *symbolTable[K]) lookup(k K) int {
	if s, ok := t.index[k]; ok {
		return s
	}
	s := len(t.entries)
	t.index[k] = s
	t.entries = append(t.entries, symbol{olno: -1})
	return s
}

// ref is a position reference. A negative value is an unmatched position
// holding the handle of its symbol table entry; a non-negative value is
// the matched position in the other sequence.
type ref int

func symbolRef(s int) ref {
	return ref(-s - 1)
}

func indexRef(i int) ref {
	return ref(i)
}

func (r ref) symbol() (int, bool) {
	if r < 0 {
		return int(-r - 1), true
	}
	return 0, false
}

func (r ref) index() (int, bool) {
	if r >= 0 {
		return int(r), true
	}
	return 0, false
}

func (r ref) matched() bool {
	return r >= 0
}

// sameSymbol reports whether two unmatched references point at the same entry.
func sameSymbol(x, y ref) bool {
	return !x.matched() && x == y
}

// match establishes the correspondence between positions of a (oa) and
// b (na). Both sequences are bracketed by virtual begin and end markers
// that are matched to each other, so runs of duplicates adjacent to the
// sequence boundaries are anchored as well.
func match[E any, K comparable](a, b []E, key KeyFunc[E, K]) (oa, na []ref) {
	t := newSymbolTable[K](max(len(a), len(b)))
	oa = make([]ref, len(a))
	na = make([]ref, len(b))

	// Pass 1: count occurrences, every position starts unmatched.
	for j, e := range a {
		s := t.lookup(key(e))
		t.entries[s].oc++
		t.entries[s].olno = j
		oa[j] = symbolRef(s)
	}
	for i, e := range b {
		s := t.lookup(key(e))
		t.entries[s].nc++
		na[i] = symbolRef(s)
	}

	// Pass 2: keys occurring exactly once in each sequence.
	for i, r := range na {
		s, ok := r.symbol()
		if !ok {
			continue
		}
		sym := &t.entries[s]
		if sym.oc != 1 || sym.nc != 1 {
			continue
		}
		j := sym.olno
		sym.olno = -1
		na[i] = indexRef(j)
		oa[j] = indexRef(i)
	}

	// Pass 3: extend matches forward. i == -1 stands for the begin marker.
	for i := -1; i < len(na)-1; i++ {
		j := -1
		if i >= 0 {
			var ok bool
			if j, ok = na[i].index(); !ok {
				continue
			}
		}
		if j+1 >= len(oa) {
			continue
		}
		if sameSymbol(na[i+1], oa[j+1]) {
			na[i+1] = indexRef(j + 1)
			oa[j+1] = indexRef(i + 1)
		}
	}

	// Pass 4: extend matches backward. i == len(na) stands for the end marker.
	for i := len(na); i > 0; i-- {
		j := len(oa)
		if i < len(na) {
			var ok bool
			if j, ok = na[i].index(); !ok {
				continue
			}
		}
		if j-1 < 0 {
			continue
		}
		if sameSymbol(na[i-1], oa[j-1]) {
			na[i-1] = indexRef(j - 1)
			oa[j-1] = indexRef(i - 1)
		}
	}
	return oa, na
}
