// Package names aggregates name-tagged tokens across a book and
// reconciles spurious long names into their shorter, high-frequency
// roots.
package names

import "sort"

// Tally counts name candidates while preserving first-insertion order,
// so reconciliation over candidates of equal length (and Sorted over
// equal counts) is deterministic regardless of goroutine completion
// order.
type Tally struct {
	counts map[string]int
	order  []string
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add increments candidate's count by n, recording its insertion
// position the first time it is seen.
func (t *Tally) Add(candidate string, n int) {
	if n <= 0 {
		return
	}
	if _, seen := t.counts[candidate]; !seen {
		t.order = append(t.order, candidate)
	}
	t.counts[candidate] += n
}

// Count returns candidate's current count, 0 if absent.
func (t *Tally) Count(candidate string) int {
	return t.counts[candidate]
}

// Merge folds other into t in other's insertion order.
func (t *Tally) Merge(other *Tally) {
	for _, c := range other.order {
		t.Add(c, other.counts[c])
	}
}

// Pair is a candidate and its count.
type Pair struct {
	Name  string
	Count int
}

// candidatesByLengthDesc returns every candidate with a positive count,
// ordered by descending rune length, ties broken by insertion order.
func (t *Tally) candidatesByLengthDesc() []string {
	cands := make([]string, 0, len(t.order))
	for _, c := range t.order {
		if t.counts[c] > 0 {
			cands = append(cands, c)
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return len([]rune(cands[i])) > len([]rune(cands[j]))
	})
	return cands
}

// Sorted returns every surviving candidate descending by count, ties
// broken by insertion order.
func (t *Tally) Sorted() []Pair {
	cands := append([]string(nil), t.order...)
	sort.SliceStable(cands, func(i, j int) bool {
		return t.counts[cands[i]] > t.counts[cands[j]]
	})
	pairs := make([]Pair, 0, len(cands))
	for _, c := range cands {
		if t.counts[c] > 0 {
			pairs = append(pairs, Pair{Name: c, Count: t.counts[c]})
		}
	}
	return pairs
}

// Reconcile collapses spurious long names into their shorter,
// high-frequency roots: iterating candidates by descending length, for
// every proper substring s (|s| >= 2) of candidate c with count(s) > 0,
// if count(s)*0.2 > count(c), c's count is zeroed and added to s.
func (t *Tally) Reconcile() {
	for _, c := range t.candidatesByLengthDesc() {
		count := t.counts[c]
		if count <= 0 {
			continue
		}
		runes := []rune(c)
		for length := len(runes) - 1; length >= 2; length-- {
			absorbed := false
			for start := 0; start+length <= len(runes); start++ {
				if start == 0 && length == len(runes) {
					continue
				}
				s := string(runes[start : start+length])
				sc := t.counts[s]
				if sc <= 0 {
					continue
				}
				if float64(sc)*0.2 > float64(count) {
					t.counts[s] += count
					t.counts[c] = 0
					absorbed = true
					break
				}
			}
			if absorbed {
				break
			}
		}
	}
}
