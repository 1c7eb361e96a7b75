package segmenter

import (
	"golang.org/x/text/unicode/norm"

	"github.com/jamen-go/jamen/internal/dict"
	"github.com/jamen-go/jamen/internal/namegrammar"
)

// Segment splits text into tagged tokens. It is a pure function: it
// allocates no package-level state, spawns no goroutines, and is safe
// to call concurrently against the same store and grammar (§5).
func Segment(text string, store *dict.Store, grammar *namegrammar.Matcher) []Token {
	normalized := norm.NFC.String(text)
	runes := []rune(normalized)

	var tokens []Token
	for _, r := range splitRuns(runes) {
		clip := runes[r.start:r.end]
		switch r.class {
		case classCJK:
			tokens = append(tokens, segmentCJK(clip, store, grammar)...)
		case classASCIIWord:
			tokens = append(tokens, Token{Text: string(clip), POS: posEnglish})
		default:
			tokens = append(tokens, Token{Text: string(clip), POS: posSymbol})
		}
	}
	return tokens
}

func segmentCJK(clip []rune, store *dict.Store, grammar *namegrammar.Matcher) []Token {
	n := len(clip)
	if n == 0 {
		return nil
	}

	g := buildDAG(clip, store, grammar)
	route := findBestPath(g, store.General.TotalWeight())

	var tokens []Token
	var bufferStart = -1

	flush := func(end int) {
		if bufferStart < 0 {
			return
		}
		tokens = append(tokens, splitBuffer(string(clip[bufferStart:end]), store.NotIncluded)...)
		bufferStart = -1
	}

	p := 0
	for p < n {
		step := route[p]
		if step.Weight == 0 && step.End == p {
			if bufferStart < 0 {
				bufferStart = p
			}
			p++
			continue
		}
		flush(p)
		tokens = append(tokens, Token{Text: string(clip[p : step.End+1]), POS: step.POS})
		p = step.End + 1
	}
	flush(n)

	return tokens
}
