package names

import (
	"strings"
	"sync"

	"github.com/jamen-go/jamen/internal/dict"
	"github.com/jamen-go/jamen/internal/namegrammar"
	"github.com/jamen-go/jamen/internal/segmenter"
)

const nameTokenPOS = "nr"

// chunk is one unit of book text handed to a worker, indexed by its
// position in the original split so results can be merged back in a
// deterministic order regardless of which worker finishes first.
type chunk struct {
	id   int
	text string
}

// splitChunks breaks book into blank-line-delimited paragraphs,
// falling back to the whole book as a single chunk when it contains no
// blank lines.
func splitChunks(book string) []string {
	parts := strings.Split(book, "\n\n")
	chunks := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		chunks = append(chunks, p)
	}
	if len(chunks) == 0 {
		return []string{book}
	}
	return chunks
}

// ExtractFromBook runs the segmenter over the whole book and tallies
// every token tagged nr. When numWorkers <= 1 it runs inline with no
// goroutines, for deterministic single-threaded callers such as tests;
// otherwise it fans the book out by paragraph across numWorkers workers,
// the same channel/worker-pool shape used elsewhere in this codebase
// for parallel segmentation, merging partial tallies back in chunk
// order rather than completion order.
func ExtractFromBook(book string, store *dict.Store, grammar *namegrammar.Matcher, numWorkers int) *Tally {
	chunks := splitChunks(book)

	if numWorkers <= 1 || len(chunks) <= 1 {
		total := NewTally()
		for _, c := range chunks {
			total.Merge(tallyChunk(c, store, grammar))
		}
		return total
	}

	jobs := make(chan chunk, len(chunks))
	go func() {
		defer close(jobs)
		for i, c := range chunks {
			jobs <- chunk{id: i, text: c}
		}
	}()

	results := make([]*Tally, len(chunks))
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.id] = tallyChunk(j.text, store, grammar)
			}
		}()
	}
	wg.Wait()

	total := NewTally()
	for _, r := range results {
		if r != nil {
			total.Merge(r)
		}
	}
	return total
}

func tallyChunk(text string, store *dict.Store, grammar *namegrammar.Matcher) *Tally {
	t := NewTally()
	for _, tok := range segmenter.Segment(text, store, grammar) {
		if tok.POS == nameTokenPOS {
			t.Add(tok.Text, 1)
		}
	}
	return t
}
