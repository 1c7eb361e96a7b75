package segmenter

import "regexp"

const posUnknown = "x"

// splitBuffer re-splits a run of bonded single-rune fallback tokens
// against the not-included regex (§4.A/§4.C), so a recognisable span
// such as a chapter heading inside an otherwise unknown-word run still
// emits as its own token rather than being swallowed whole.
func splitBuffer(buf string, notIncluded *regexp.Regexp) []Token {
	if buf == "" {
		return nil
	}
	if notIncluded == nil {
		return []Token{{Text: buf, POS: posUnknown}}
	}

	matches := notIncluded.FindAllStringIndex(buf, -1)
	if len(matches) == 0 {
		return []Token{{Text: buf, POS: posUnknown}}
	}

	var tokens []Token
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			tokens = append(tokens, Token{Text: buf[prev:m[0]], POS: posUnknown})
		}
		tokens = append(tokens, Token{Text: buf[m[0]:m[1]], POS: posUnknown})
		prev = m[1]
	}
	if prev < len(buf) {
		tokens = append(tokens, Token{Text: buf[prev:], POS: posUnknown})
	}
	return tokens
}
