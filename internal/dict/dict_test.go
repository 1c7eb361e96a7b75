package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTerminalSynthesisesPrefixes(t *testing.T) {
	d := NewDictionary()
	d.AddTerminal("秦海文", 5, "nr")

	for _, want := range []string{"秦", "秦海"} {
		e, ok := d.Lookup(want)
		require.True(t, ok, "expected prefix entry for %q", want)
		assert.Equal(t, uint32(0), e.Weight)
	}

	e, ok := d.Lookup("秦海文")
	require.True(t, ok)
	assert.Equal(t, uint32(5), e.Weight)
	assert.Equal(t, "nr", e.POS)
}

func TestAddTerminalDoesNotDowngradeExistingTerminal(t *testing.T) {
	d := NewDictionary()
	d.AddTerminal("秦海", 50, "nr")
	d.AddTerminal("秦海文", 5, "nr")

	e, ok := d.Lookup("秦海")
	require.True(t, ok)
	assert.Equal(t, uint32(50), e.Weight, "a later terminal's prefix synthesis must not clobber an existing terminal")
}

func TestHasReportsPrefixOrTerminal(t *testing.T) {
	d := NewDictionary()
	d.AddTerminal("老刘", 3, "nr")

	assert.True(t, d.Has("老"))
	assert.True(t, d.Has("老刘"))
	assert.False(t, d.Has("老刘家"))
}

func TestTotalWeightSumsTerminals(t *testing.T) {
	d := NewDictionary()
	d.AddTerminal("今天", 2, "n")
	d.AddTerminal("大學", 4, "n")

	assert.Equal(t, uint64(6), d.TotalWeight())
}
