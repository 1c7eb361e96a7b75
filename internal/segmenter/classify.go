package segmenter

import (
	"golang.org/x/text/width"
)

type runeClass int

const (
	classCJK runeClass = iota
	classASCIIWord
	classOther
)

// isCJK reports whether r falls in the ideograph range this system
// treats as Chinese prose body text.
func isCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FD5
}

func isASCIIWord(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_' || r == '-'
}

func classify(r rune) runeClass {
	switch {
	case isCJK(r):
		return classCJK
	case isASCIIWord(r):
		return classASCIIWord
	default:
		return classOther
	}
}

// run is one maximal span of like-classed runes, indexed against the
// original (unfolded) rune slice so emitted token text always matches
// the caller's input byte-for-byte.
type run struct {
	class      runeClass
	start, end int // [start, end) into the original rune slice
}

// splitRuns folds full-width ASCII and the full-width space to their
// narrow forms purely to decide class boundaries (§4.C); the returned
// run offsets always index the original, unfolded rune slice, so
// concatenating the original text sliced by these offsets reproduces
// the input exactly.
func splitRuns(text []rune) []run {
	folded := make([]rune, len(text))
	for i, r := range text {
		folded[i] = width.Narrow.Rune(r)
	}

	var runs []run
	i := 0
	for i < len(text) {
		c := classify(folded[i])
		j := i + 1
		for j < len(text) && classify(folded[j]) == c {
			j++
		}
		runs = append(runs, run{class: c, start: i, end: j})
		i = j
	}
	return runs
}
