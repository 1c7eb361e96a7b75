package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamen-go/jamen/internal/dict"
	"github.com/jamen-go/jamen/internal/namegrammar"
)

func newExtractorTestStore() (*dict.Store, *namegrammar.Matcher) {
	general := dict.NewDictionary()
	general.AddTerminal("说", 9000, "v")
	general.AddTerminal("道", 3000, "v")
	general.AddTerminal("的", 5000, "u")
	general.AddTerminal("了", 3000, "u")

	family := dict.NewDictionary()
	family.AddTerminal("秦", 70, "family")
	family.AddTerminal("王", 900, "family")

	given := dict.NewDictionary()
	given.AddTerminal("海", 15, "given")
	given.AddTerminal("晓晨", 18, "given")

	store := &dict.Store{
		General:      general,
		FamilyNames:  family,
		GivenNames:   given,
		NamePrefixes: dict.NewDictionary(),
		NameSuffixes: dict.NewDictionary(),
		Japanese:     dict.NewDictionary(),
		English:      dict.NewDictionary(),
	}
	return store, namegrammar.New(store)
}

func TestExtractFromBookTalliesNameTokens(t *testing.T) {
	store, grammar := newExtractorTestStore()
	book := "秦海说了。\n\n秦海道别。"

	tl := ExtractFromBook(book, store, grammar, 1)
	assert.GreaterOrEqual(t, tl.Count("秦海"), 1)
}

func TestExtractFromBookParallelMatchesInline(t *testing.T) {
	store, grammar := newExtractorTestStore()
	var paragraphs []string
	for i := 0; i < 20; i++ {
		paragraphs = append(paragraphs, "王晓晨说了的了道。")
	}
	book := strings.Join(paragraphs, "\n\n")

	inline := ExtractFromBook(book, store, grammar, 1)
	parallel := ExtractFromBook(book, store, grammar, 4)

	require.Equal(t, len(inline.Sorted()), len(parallel.Sorted()))
	for _, p := range inline.Sorted() {
		assert.Equal(t, p.Count, parallel.Count(p.Name), "candidate %q", p.Name)
	}
}

func TestSplitChunksFallsBackToWholeBook(t *testing.T) {
	chunks := splitChunks("只有一段话，没有空行。")
	require.Len(t, chunks, 1)
	assert.Equal(t, "只有一段话，没有空行。", chunks[0])
}

func TestSplitChunksSplitsOnBlankLines(t *testing.T) {
	chunks := splitChunks("第一段。\n\n第二段。\n\n第三段。")
	require.Len(t, chunks, 3)
}
