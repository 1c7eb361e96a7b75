// Package jamen wires the dictionary store, segmenter, name extractor,
// and dialogue attributor behind a single Book API: load a book's text
// once, get back every line attributed to its speaker (or marked
// narration/unknown).
package jamen

import (
	"github.com/rs/zerolog"

	"github.com/jamen-go/jamen/internal/dialogue"
	"github.com/jamen-go/jamen/internal/dict"
	"github.com/jamen-go/jamen/internal/logging"
	"github.com/jamen-go/jamen/internal/namegrammar"
	"github.com/jamen-go/jamen/internal/names"
)

// TextLoader is the caller's contract for getting book text into the
// core. File loading with UTF-8/GB18030 fallback is out of scope here;
// a caller that needs it implements this interface itself.
type TextLoader interface {
	Load() (string, error)
}

// SpeechSink is the caller's contract for doing something with an
// attributed utterance (e.g. driving a text-to-speech backend). The
// core never calls this itself; it is documented here only as the
// named contract a downstream consumer implements against.
type SpeechSink interface {
	Speak(u dialogue.Utterance) error
}

// Utterance re-exports dialogue.Utterance as the consumer-facing type.
type Utterance = dialogue.Utterance

// Options configures a Book.
type Options struct {
	// CacheDir is where compiled dictionaries are cached. Defaults to
	// "tmp" when empty.
	CacheDir string
	// NumWorkers controls the name extractor's fan-out (§4.D). <= 1
	// runs inline with no goroutines.
	NumWorkers int
}

// Book holds everything needed to analyze book text: the loaded
// dictionary store and the name grammar built over it. Both are
// process-lifetime and immutable once Open returns, so a single Book
// may be shared across concurrent Analyze calls.
type Book struct {
	store      *dict.Store
	grammar    *namegrammar.Matcher
	numWorkers int
}

// Open loads the dictionary store named by paths and returns a Book
// ready to analyze text. A missing or malformed dictionary file is a
// fatal, caller-visible error.
func Open(paths dict.StorePaths, opts Options) (*Book, error) {
	store, err := dict.NewStore(paths, dict.StoreOptions{CacheDir: opts.CacheDir})
	if err != nil {
		return nil, err
	}

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}

	return &Book{
		store:      store,
		grammar:    namegrammar.New(store),
		numWorkers: numWorkers,
	}, nil
}

// Analyze runs the full pipeline over text: name extraction and
// reconciliation, dialogue splitting, quote merging, and speaker
// attribution. It returns every utterance in document order.
func (b *Book) Analyze(text string) []Utterance {
	tally := names.ExtractFromBook(text, b.store, b.grammar, b.numWorkers)
	tally.Reconcile()

	list := dialogue.Split(text)
	dialogue.Merge(list)

	dialogue.New(tally, b.grammar).Attribute(list)

	return list.Utterances()
}

// SetLogger wires a zerolog.Logger into the core's dictionary-load and
// cache logging (§7); the name extractor does not log. The core is silent until a caller
// does this.
func SetLogger(l zerolog.Logger) {
	logging.Set(l)
}
