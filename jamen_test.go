package jamen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamen-go/jamen/internal/dict"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testPaths(t *testing.T) (dict.StorePaths, string) {
	dir := t.TempDir()
	return dict.StorePaths{
		General:      []string{writeFixture(t, dir, "general.dict", "说 9000 v\n道 3000 v\n的 5000 u\n了 3000 u\n")},
		FamilyNames:  []string{writeFixture(t, dir, "family.dict", "柴 40\n王 900\n")},
		GivenNames:   []string{writeFixture(t, dir, "given.dict", "培德 12\n晓晨 18\n")},
		NamePrefixes: []string{writeFixture(t, dir, "prefix.dict", "老 40\n")},
		NameSuffixes: []string{writeFixture(t, dir, "suffix.dict", "科长 25\n")},
		Japanese:     []string{writeFixture(t, dir, "japanese.dict", "山本 10\n")},
		English:      []string{writeFixture(t, dir, "english.dict", "约翰 10\n")},
	}, dir
}

func TestOpenAndAnalyzeEndToEnd(t *testing.T) {
	paths, dir := testPaths(t)
	book, err := Open(paths, Options{CacheDir: filepath.Join(dir, "cache")})
	require.NoError(t, err)

	utterances := book.Analyze("柴培德：\n“我们走吧。”")
	require.Len(t, utterances, 2)
	assert.False(t, utterances[0].IsQuoted)
	assert.True(t, utterances[1].IsQuoted)
	assert.Equal(t, "柴培德", utterances[1].Speaker)
}

func TestOpenFailsOnMissingDictionaryFile(t *testing.T) {
	paths, dir := testPaths(t)
	paths.General = []string{filepath.Join(dir, "does-not-exist.dict")}

	_, err := Open(paths, Options{CacheDir: filepath.Join(dir, "cache")})
	assert.Error(t, err)
}

func TestAnalyzeUnattributedQuoteHasEmptySpeaker(t *testing.T) {
	paths, dir := testPaths(t)
	book, err := Open(paths, Options{CacheDir: filepath.Join(dir, "cache")})
	require.NoError(t, err)

	utterances := book.Analyze("“这是谁说的呢。”")
	require.Len(t, utterances, 1)
	assert.Equal(t, "", utterances[0].Speaker)
}
