package dialogue

import (
	"strings"

	"github.com/jamen-go/jamen/internal/namegrammar"
	"github.com/jamen-go/jamen/internal/names"
)

// Attributor assigns a speaker to every quoted segment of a List via
// the heuristic cascade of §4.G. It holds only read-only references and
// is safe for concurrent use against distinct Lists.
type Attributor struct {
	tally   *names.Tally
	grammar *namegrammar.Matcher
}

// New builds an Attributor over a book-level name tally and the name
// grammar's fallback matcher.
func New(tally *names.Tally, grammar *namegrammar.Matcher) *Attributor {
	return &Attributor{tally: tally, grammar: grammar}
}

// Attribute walks l in document order, setting Speaker on every quoted
// segment. Processing in document order is required for step 4 of the
// cascade, which reads an earlier quoted segment's already-resolved
// speaker.
func (a *Attributor) Attribute(l *List) {
	for idx := l.head; idx != nilIndex; idx = l.nodes[idx].next {
		if !l.nodes[idx].IsQuoted {
			continue
		}
		l.nodes[idx].Speaker = a.speakerFor(l, idx)
	}
}

func (a *Attributor) speakerFor(l *List, idx int) string {
	node := l.nodes[idx]

	// 1. same-row suffix narration, first sentence only.
	if nextIdx := node.next; nextIdx != nilIndex {
		next := l.nodes[nextIdx]
		if !next.IsQuoted && next.RowNum == node.RowNum {
			if s := a.scanSentence(firstSentence(next.Text)); s != "" {
				return s
			}
		}
	}

	// 2. same-row prefix narration, last sentence only.
	if prevIdx := node.prev; prevIdx != nilIndex {
		prev := l.nodes[prevIdx]
		if !prev.IsQuoted && prev.RowNum == node.RowNum {
			if s := a.scanSentence(lastSentence(prev.Text)); s != "" {
				return s
			}
		}
	}

	// 3. previous narration ending in a colon cue, scanned whole.
	if prevIdx := node.prev; prevIdx != nilIndex {
		prev := l.nodes[prevIdx]
		if !prev.IsQuoted && strings.HasSuffix(strings.TrimRight(prev.Text, "　 \t"), "：") {
			if s := a.scanSentence(prev.Text); s != "" {
				return s
			}
		}
	}

	// 4. second-preceding quoted segment's speaker, as stored (may be
	// empty, in which case the cascade falls through to step 5).
	if p1 := prevQuoted(l, node.prev); p1 != nilIndex {
		if p2 := prevQuoted(l, l.nodes[p1].prev); p2 != nilIndex {
			if s := l.nodes[p2].Speaker; s != "" {
				return s
			}
		}
	}

	// 5. nearest following narration node, scanned whole.
	if nxt := nextNarration(l, node.next); nxt != nilIndex {
		if s := a.scanSentence(l.nodes[nxt].Text); s != "" {
			return s
		}
	}

	return ""
}

func prevQuoted(l *List, start int) int {
	for idx := start; idx != nilIndex; idx = l.nodes[idx].prev {
		if l.nodes[idx].IsQuoted {
			return idx
		}
	}
	return nilIndex
}

func nextNarration(l *List, start int) int {
	for idx := start; idx != nilIndex; idx = l.nodes[idx].next {
		if !l.nodes[idx].IsQuoted {
			return idx
		}
	}
	return nilIndex
}

func firstSentence(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if isSentenceEnd(r) {
			return string(runes[:i+1])
		}
	}
	return s
}

func lastSentence(s string) string {
	runes := []rune(s)
	last := -1
	for i, r := range runes {
		if isSentenceEnd(r) {
			last = i
		}
	}
	if last == -1 {
		return s
	}
	return string(runes[last+1:])
}

func isSentenceEnd(r rune) bool {
	return r == '！' || r == '？' || r == '。'
}

// scanSentence runs pass 1 (book-level name tally) then, only if that
// finds nothing, pass 2 (name grammar fallback) over text.
func (a *Attributor) scanSentence(text string) string {
	if s := scanByTally(text, a.tally); s != "" {
		return s
	}
	return scanByGrammar(text, a.grammar)
}

const (
	minSpeakerSpan = 2
	maxSpeakerSpan = 6
)

// scanByTally enumerates every contiguous all-CJK substring of length
// 2..6 left to right and returns the earliest one present in tally with
// a positive count, preferring the longest such substring at a given
// start position over a shorter one it strictly extends.
func scanByTally(text string, tally *names.Tally) string {
	runes := []rune(text)
	n := len(runes)
	for begin := 0; begin < n; begin++ {
		best := ""
		for length := minSpeakerSpan; length <= maxSpeakerSpan && begin+length <= n; length++ {
			cand := string(runes[begin : begin+length])
			if !allCJK(cand) {
				break
			}
			if tally.Count(cand) > 0 {
				best = cand
			}
		}
		if best != "" {
			return best
		}
	}
	return ""
}

// scanByGrammar returns the earliest all-CJK substring of length 2..6
// accepted by the name grammar.
func scanByGrammar(text string, grammar *namegrammar.Matcher) string {
	runes := []rune(text)
	n := len(runes)
	for begin := 0; begin < n; begin++ {
		for length := minSpeakerSpan; length <= maxSpeakerSpan && begin+length <= n; length++ {
			cand := string(runes[begin : begin+length])
			if !allCJK(cand) {
				break
			}
			if grammar.Match(cand) > 0 {
				return cand
			}
		}
	}
	return ""
}

func allCJK(s string) bool {
	for _, r := range s {
		if r < 0x4E00 || r > 0x9FD5 {
			return false
		}
	}
	return true
}
