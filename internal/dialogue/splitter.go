package dialogue

import (
	"regexp"
	"strings"
)

var quoteRE = regexp.MustCompile(`“.*?”`)

// Split breaks book into a List of segments: one RowNum per newline-
// delimited line (1-indexed), each line further split on "“…”" spans,
// every non-empty piece becoming its own segment tagged IsQuoted.
func Split(book string) *List {
	l := newList()
	for i, line := range strings.Split(book, "\n") {
		rowNum := i + 1
		for _, piece := range splitQuotes(line) {
			if piece.text == "" {
				continue
			}
			l.push(segment{RowNum: rowNum, Text: piece.text, IsQuoted: piece.quoted})
		}
	}
	return l
}

type piece struct {
	text   string
	quoted bool
}

// splitQuotes splits line on quoteRE, keeping the matched spans as
// their own pieces in original order.
func splitQuotes(line string) []piece {
	matches := quoteRE.FindAllStringIndex(line, -1)
	if len(matches) == 0 {
		return []piece{{text: line, quoted: false}}
	}

	var pieces []piece
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			pieces = append(pieces, piece{text: line[prev:m[0]], quoted: false})
		}
		pieces = append(pieces, piece{text: line[m[0]:m[1]], quoted: true})
		prev = m[1]
	}
	if prev < len(line) {
		pieces = append(pieces, piece{text: line[prev:], quoted: false})
	}
	return pieces
}
