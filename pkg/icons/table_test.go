package icons

import (
	"strings"
	"testing"

	"github.com/beachfall/Forgeon/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericRules_Table(t *testing.T) {
	rules := GenericRules()
	require.Len(t, rules, 25)

	// Spot-check exact markup strings against the consuming document
	assert.Equal(t, "🔗", rules[0].FromText)
	assert.Equal(t, `<img src="icons/misc/link.svg" alt="" width="14" height="14" style="vertical-align: middle;">`, rules[0].ToText)

	for _, r := range rules {
		assert.NotEmpty(t, r.FromText)
		assert.Equal(t, "*.js", r.FileFilterGlob)
		assert.Contains(t, r.ToText, `<img src="icons/`)
		assert.Contains(t, r.ToText, `style="vertical-align: middle;"`)
	}
}

func TestGenericRules_ScalesUsesLargerSize(t *testing.T) {
	for _, r := range GenericRules() {
		if r.FromText == "⚖️" {
			assert.Contains(t, r.ToText, `width="16" height="16"`)
			return
		}
	}
	t.Fatal("⚖️ rule not found")
}

// No replacement text may itself contain a pattern the table would match
// again. This is what makes the whole pass idempotent.
func TestTable_Idempotent(t *testing.T) {
	var all []text.ReplacementRule
	all = append(all, GenericRules()...)
	all = append(all, GearContextRules()...)
	all = append(all, GearCatchAllRule())

	for _, produced := range all {
		for _, matched := range all {
			assert.NotContains(t, produced.ToText, matched.FromText,
				"replacement for %q re-matches rule %q", produced.FromText, matched.FromText)
		}
	}
}

func TestGearContextRules_PreserveSurroundingLiterals(t *testing.T) {
	rules := GearContextRules()
	require.Len(t, rules, 4)

	for _, r := range rules {
		assert.Contains(t, r.FromText, GearSymbol)
		assert.Contains(t, r.ToText, GearMarkup)
		assert.NotContains(t, r.ToText, GearSymbol)
	}

	// Quoted values keep their key and quotes
	assert.Equal(t, `icon: '`+GearMarkup+`'`, rules[0].ToText)
	assert.Equal(t, `mechanic: '`+GearMarkup+` Mechanics'`, rules[1].ToText)
	assert.Equal(t, `: '`+GearMarkup+` Instance</span>'`, rules[2].ToText)
}

// The typeIcon ternary has a theme branch that must survive byte-for-byte;
// only the second branch's gear is rewritten.
func TestGearContextRules_TypeIconKeepsThemeBranch(t *testing.T) {
	rules := GearContextRules()
	ternary := rules[3]

	assert.Equal(t, `const typeIcon = cls.classType === 'character' ? '🎭' : '⚙️';`, ternary.FromText)
	assert.Contains(t, ternary.ToText, `? '🎭' :`)
	assert.True(t, strings.HasSuffix(ternary.ToText, `: '`+GearMarkup+`';`))
}

func TestExcludedSymbols_NeverInTable(t *testing.T) {
	excluded := ExcludedSymbols()
	require.Len(t, excluded, 11)

	var all []text.ReplacementRule
	all = append(all, GenericRules()...)
	all = append(all, GearCatchAllRule())

	for _, sym := range excluded {
		for _, r := range all {
			assert.NotEqual(t, sym, r.FromText, "excluded symbol %q must not be replaced", sym)
		}
	}
}

func TestAllRules_Valid(t *testing.T) {
	replacer := text.NewSimpleTextReplacer()

	var all []text.ReplacementRule
	all = append(all, GenericRules()...)
	all = append(all, GearContextRules()...)
	all = append(all, GearCatchAllRule())

	require.NoError(t, replacer.ValidateRules(all))
}
