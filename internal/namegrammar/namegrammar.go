// Package namegrammar implements the compositional Chinese-name matcher:
// <prefix?> <family?> <given?> <suffix?>, each slot drawn from its own
// dictionary, with the coverage and exclusion rules from the system
// specification.
package namegrammar

import "github.com/jamen-go/jamen/internal/dict"

const (
	maxPrefixLen = 2
	maxFamilyLen = 2
	maxGivenLen  = 2
	maxSuffixLen = 4

	// minMatchWeight is the floor every valid decomposition's weight is
	// raised to, so a recognised name always outranks a common noun of
	// comparable dictionary weight during DAG scoring.
	minMatchWeight = 10
)

// Matcher scores a candidate string against the name grammar. It holds
// only dictionary references set at construction and is safe for
// concurrent use.
type Matcher struct {
	prefix *dict.Dictionary
	family *dict.Dictionary
	given  *dict.Dictionary
	suffix *dict.Dictionary
}

// New builds a Matcher over the four name-component dictionaries in
// store.
func New(store *dict.Store) *Matcher {
	return &Matcher{
		prefix: store.NamePrefixes,
		family: store.FamilyNames,
		given:  store.GivenNames,
		suffix: store.NameSuffixes,
	}
}

// Match returns the maximum terminal weight among every valid
// decomposition of candidate, raised to at least 10, or -1 if no
// decomposition is valid.
func (m *Matcher) Match(candidate string) int {
	runes := []rune(candidate)
	n := len(runes)
	if n == 0 {
		return -1
	}

	best := -1
	for prefixLen := 0; prefixLen <= maxPrefixLen && prefixLen <= n; prefixLen++ {
		var prefixWeight uint32
		hasPrefix := prefixLen > 0
		if hasPrefix {
			e, ok := m.prefix.Lookup(string(runes[:prefixLen]))
			if !ok || e.Weight == 0 {
				continue
			}
			prefixWeight = e.Weight
		}

		for familyLen := 0; familyLen <= maxFamilyLen && prefixLen+familyLen <= n; familyLen++ {
			var familyWeight uint32
			hasFamily := familyLen > 0
			if hasFamily {
				e, ok := m.family.Lookup(string(runes[prefixLen : prefixLen+familyLen]))
				if !ok || e.Weight == 0 {
					continue
				}
				familyWeight = e.Weight
			}

			for givenLen := 0; givenLen <= maxGivenLen && prefixLen+familyLen+givenLen <= n; givenLen++ {
				hasGiven := givenLen > 0
				if hasGiven && hasPrefix && !hasFamily && givenLen == 2 {
					// Prefix + two-character given with no family is
					// not idiomatic.
					continue
				}

				var givenWeight uint32
				if hasGiven {
					e, ok := m.given.Lookup(string(runes[prefixLen+familyLen : prefixLen+familyLen+givenLen]))
					if !ok || e.Weight == 0 {
						continue
					}
					givenWeight = e.Weight
				}

				suffixLen := n - prefixLen - familyLen - givenLen
				hasSuffix := suffixLen > 0
				var suffixWeight uint32
				if hasSuffix {
					if hasGiven || (hasPrefix && hasFamily) || suffixLen > maxSuffixLen {
						continue
					}
					e, ok := m.suffix.Lookup(string(runes[n-suffixLen:]))
					if !ok || e.Weight == 0 {
						continue
					}
					suffixWeight = e.Weight
				}

				nonEmpty := 0
				for _, present := range []bool{hasPrefix, hasFamily, hasGiven, hasSuffix} {
					if present {
						nonEmpty++
					}
				}
				if nonEmpty == 0 {
					continue
				}
				if nonEmpty == 1 && !hasGiven {
					// A bare prefix, bare family name, or bare
					// role-noun suffix is not, on its own, a name.
					continue
				}

				w := uint32(0)
				for _, cand := range []uint32{prefixWeight, familyWeight, givenWeight, suffixWeight} {
					if cand > w {
						w = cand
					}
				}
				if int(w) > best {
					best = int(w)
				}
			}
		}
	}

	if best < 0 {
		return -1
	}
	if best < minMatchWeight {
		return minMatchWeight
	}
	return best
}
