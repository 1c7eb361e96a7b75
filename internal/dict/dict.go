// Package dict implements the prefix-dictionary store: loading weighted
// terms from text files, synthesising prefix-only entries, and caching
// the compiled result to disk.
//
// A Dictionary is immutable once built. It has no lock because nothing
// in this module mutates one after NewStore returns it — segmenter,
// namegrammar, and names all treat *Store as a read-only, process-
// lifetime value shared across goroutines.
package dict

import "golang.org/x/text/unicode/norm"

// Entry is one dictionary record. Weight 0 means the key exists only as
// a prefix of some longer terminal; weight > 0 means the key is itself
// a recognised word.
type Entry struct {
	Weight uint32
	POS    string
}

// Dictionary is one of the seven logical word lists described in the
// system's data model: general lexicon, family names, given names, name
// prefixes, name suffixes, Japanese names, or English names.
type Dictionary struct {
	entries map[string]Entry
	total   uint64
}

// NewDictionary returns an empty dictionary ready for AddTerminal calls.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]Entry)}
}

// AddTerminal inserts word as a terminal entry and synthesises a
// prefix-only entry (weight 0) for every strict, non-empty prefix of
// word that isn't already present. Re-adding the same word replaces its
// weight/POS but adds the new weight to TotalWeight again; the file
// loader calls AddTerminal once per line, so a word listed more than
// once (in one file or across files) is counted once per listing.
func (d *Dictionary) AddTerminal(word string, weight uint32, pos string) {
	word = norm.NFC.String(word)
	if word == "" {
		return
	}
	d.entries[word] = Entry{Weight: weight, POS: pos}
	d.total += uint64(weight)

	runes := []rune(word)
	for i := 1; i < len(runes); i++ {
		prefix := string(runes[:i])
		if _, exists := d.entries[prefix]; !exists {
			d.entries[prefix] = Entry{}
		}
	}
}

// Lookup returns the entry for word, if any.
func (d *Dictionary) Lookup(word string) (Entry, bool) {
	e, ok := d.entries[word]
	return e, ok
}

// Has reports whether word exists in the dictionary at all, as either a
// prefix-only or terminal entry. The segmenter uses this to decide
// whether to keep extending a candidate span.
func (d *Dictionary) Has(word string) bool {
	_, ok := d.entries[word]
	return ok
}

// TotalWeight is the memoised sum of every terminal's weight, used to
// normalise log-probabilities during best-path decode.
func (d *Dictionary) TotalWeight() uint64 {
	return d.total
}

// Len returns the number of entries, terminal and prefix-only combined.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
