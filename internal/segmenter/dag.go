package segmenter

import (
	"math"

	"github.com/jamen-go/jamen/internal/dict"
	"github.com/jamen-go/jamen/internal/namegrammar"
)

// edge is one candidate span starting at some position i, ending
// (inclusively) at End, with the best weight/POS found across every
// dictionary consulted for that span.
type edge struct {
	End    int
	Weight uint32
	POS    string
}

// dag maps a start position to every viable edge leaving it. Every
// position 0..n-1 always has at least one single-rune edge: a
// dictionary hit for that rune or, failing that, the weight-0 fallback.
type dag [][]edge

// buildDAG scans every span of clip against the general dictionary, the
// name grammar, and the Japanese/English dictionaries, keeping the
// highest-weight terminal hit per span, per §4.C. Scanning for a given
// start stops the moment no dictionary yields even a prefix match for
// the span scanned so far.
func buildDAG(clip []rune, store *dict.Store, grammar *namegrammar.Matcher) dag {
	n := len(clip)
	g := make(dag, n)

	for i := 0; i < n; i++ {
		var edges []edge
		for j := i + 1; j <= n; j++ {
			span := string(clip[i:j])

			if !store.HasAnyPrefix(span) {
				break
			}

			var bestWeight uint32
			var bestPOS string
			found := false

			if e, ok := store.General.Lookup(span); ok && e.Weight > 0 {
				bestWeight, bestPOS, found = e.Weight, e.POS, true
			}
			if w := grammar.Match(span); w > 0 && uint32(w) > bestWeight {
				bestWeight, bestPOS, found = uint32(w), posName, true
			}
			if e, ok := store.Japanese.Lookup(span); ok && e.Weight > 0 && e.Weight > bestWeight {
				bestWeight, bestPOS, found = e.Weight, posName, true
			}
			if e, ok := store.English.Lookup(span); ok && e.Weight > 0 && e.Weight > bestWeight {
				bestWeight, bestPOS, found = e.Weight, posName, true
			}

			if found {
				edges = append(edges, edge{End: j - 1, Weight: bestWeight, POS: bestPOS})
			}
		}

		// Admit the weight-0 single-rune fallback whenever the scan found
		// no single-rune edge, so every position has an outgoing edge
		// (§8 property 3). It is inserted in End order so
		// g[i] stays sorted ascending by End regardless of which spans
		// the scan above found — findBestPath's tie-break must not
		// depend on append order.
		hasFallback := false
		for _, e := range edges {
			if e.End == i {
				hasFallback = true
				break
			}
		}
		if !hasFallback {
			edges = append(edges, edge{})
			copy(edges[1:], edges[:len(edges)-1])
			edges[0] = edge{End: i, Weight: 0, POS: ""}
		}

		g[i] = edges
	}

	return g
}

// routeStep is the chosen edge at a position under best-path decode.
type routeStep struct {
	Score  float64
	End    int
	Weight uint32
	POS    string
}

// findBestPath runs the right-to-left Viterbi-style decode described in
// §4.C: score(i) = max over edges(i) of
// log(max(weight,1)) - log(totalWeight) + score(end+1).
func findBestPath(g dag, totalWeight uint64) []routeStep {
	n := len(g)
	route := make([]routeStep, n+1)
	logTotal := math.Log(float64(maxUint64(totalWeight, 1)))

	for i := n - 1; i >= 0; i-- {
		best := routeStep{Score: math.Inf(-1)}
		for _, e := range g[i] {
			w := e.Weight
			if w == 0 {
				w = 1
			}
			score := math.Log(float64(w)) - logTotal + route[e.End+1].Score
			if score > best.Score || (score == best.Score && e.End > best.End) {
				best = routeStep{Score: score, End: e.End, Weight: e.Weight, POS: e.POS}
			}
		}
		route[i] = best
	}

	return route[:n]
}

func maxUint64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
