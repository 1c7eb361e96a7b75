// Package segmenter implements the DAG-construction and best-path
// decode word segmenter over the weighted dictionary store and the name
// grammar.
package segmenter

// Token is one segmented span of the input text.
type Token struct {
	Text string
	POS  string
}

const (
	posEnglish = "eng"
	posSymbol  = "sym"
	posName    = "nr"
)
