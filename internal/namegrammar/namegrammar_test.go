package namegrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamen-go/jamen/internal/dict"
)

func newTestStore() *dict.Store {
	family := dict.NewDictionary()
	family.AddTerminal("刘", 100, "family")
	family.AddTerminal("柴", 40, "family")
	family.AddTerminal("韦", 30, "family")
	family.AddTerminal("欧阳", 20, "family") // compound (复姓) family name

	given := dict.NewDictionary()
	given.AddTerminal("海文", 15, "given")
	given.AddTerminal("培德", 12, "given")
	given.AddTerminal("宝林", 8, "given")
	given.AddTerminal("晓晨", 6, "given")
	given.AddTerminal("默", 5, "given")

	prefix := dict.NewDictionary()
	prefix.AddTerminal("老", 25, "prefix")
	prefix.AddTerminal("小", 20, "prefix")

	suffix := dict.NewDictionary()
	suffix.AddTerminal("科长", 18, "suffix")
	suffix.AddTerminal("工", 14, "suffix")

	return &dict.Store{
		FamilyNames:  family,
		GivenNames:   given,
		NamePrefixes: prefix,
		NameSuffixes: suffix,
	}
}

func TestMatchFamilyPlusGiven(t *testing.T) {
	m := New(newTestStore())
	assert.Equal(t, 40, m.Match("柴培德"))
}

func TestMatchPrefixPlusFamily(t *testing.T) {
	m := New(newTestStore())
	got := m.Match("老刘")
	assert.Greater(t, got, 0)
}

func TestBareFamilyNameIsRejected(t *testing.T) {
	store := newTestStore()
	store.FamilyNames.AddTerminal("周", 300, "family")
	m := New(store)
	assert.Equal(t, -1, m.Match("周"))
}

func TestFamilyNamePlusSuffixIsAccepted(t *testing.T) {
	// family("冷") + suffix("科长") fills two slots, so the "bare single
	// slot" rejection does not apply and the role-name "冷科长" matches.
	family := newTestStore().FamilyNames
	family.AddTerminal("冷", 10, "family")
	store := newTestStore()
	store.FamilyNames = family
	m := New(store)
	got := m.Match("冷科长")
	assert.Greater(t, got, 0)
}

func TestLoneGivenNameIsAccepted(t *testing.T) {
	m := New(newTestStore())
	assert.Greater(t, m.Match("默"), 0)
}

func TestNoDecompositionReturnsNegativeOne(t *testing.T) {
	m := New(newTestStore())
	assert.Equal(t, -1, m.Match("这不是名字"))
}

func TestMatchFloorsWeightAtTen(t *testing.T) {
	family := dict.NewDictionary()
	family.AddTerminal("柴", 2, "family")
	given := dict.NewDictionary()
	given.AddTerminal("培德", 3, "given")
	store := &dict.Store{
		FamilyNames:  family,
		GivenNames:   given,
		NamePrefixes: dict.NewDictionary(),
		NameSuffixes: dict.NewDictionary(),
	}
	m := New(store)
	assert.Equal(t, 10, m.Match("柴培德"))
}

func TestCompoundFamilyNamePlusGiven(t *testing.T) {
	m := New(newTestStore())
	given := m.given
	given.AddTerminal("晓晨", 6, "given")
	assert.Greater(t, m.Match("欧阳晓晨"), 0)
}
