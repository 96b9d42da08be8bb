package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	category_cache "github.com/coldline/catalog/cache"
)

func TestClassify_Rules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"reach in", "True T-49 Two Section Reach In Refrigerator", "Reach-In"},
		{"merchandiser", "Beverage-Air MT27-1 Merchandiser", "Merchandiser"},
		{"merchandising", "Merchandising Refrigerator 23 cu ft", "Merchandiser"},
		{"prep table", "48\" Pizza Prep Table", "Prep Table"},
		{"sandwich", "Sandwich/Salad Unit 60\"", "Prep Table"},
		{"bakery case", "Curved Glass Bakery Case", "Bakery Case"},
		{"bar cooler", "Three Door Bar Cooler", "Bar Cooler"},
		{"back bar", "Back Bar Storage Cabinet", "Bar Cooler"},
		{"undercounter", "27\" Undercounter Refrigerator", "Undercounter"},
		{"chef base", "Refrigerated Chef Base 52\"", "Chef Base"},
		{"glass door", "Glass Door Freezer", "Glass Door"},
		{"display", "Countertop Display Refrigerator", "Display Case"},
		{"upright", "One Section Upright Freezer", "Upright"},
		{"worktop", "Worktop Refrigerator 48\"", "Worktop"},
		{"buffet", "Cold Buffet Table", "Buffet/Salad Bar"},
		{"salad bar", "Portable Salad Bar", "Buffet/Salad Bar"},
		{"no match", "Ice Machine Head 500 lb", "Other"},
		{"empty", "", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "Upright", Classify("UPRIGHT FREEZER"))
	assert.Equal(t, "Chef Base", Classify("cHeF BaSe"))
}

func TestClassify_RuleOrderBreaksTies(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// glass door (rule 8) precedes display (rule 9)
		{"Glass Door Display Refrigerator", "Glass Door"},
		{"Display Case with Glass Door", "Glass Door"},
		// merchandiser (rule 2) precedes glass door (rule 8)
		{"Glass Door Merchandiser", "Merchandiser"},
		// reach in (rule 1) precedes everything
		{"Upright Reach In Glass Door Merchandiser", "Reach-In"},
		// prep table (rule 3) precedes undercounter (rule 6)
		{"Undercounter Sandwich Prep Table", "Prep Table"},
		// display (rule 9) precedes upright (rule 10)
		{"Upright Display Freezer", "Display Case"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassifier_Labels(t *testing.T) {
	labels := Default().Labels()

	require.Len(t, labels, 13)
	assert.Equal(t, "Reach-In", labels[0])
	assert.Equal(t, "Other", labels[len(labels)-1])
}

func TestClassifier_VersionTracksRuleTable(t *testing.T) {
	a := New(DefaultRules())
	b := New(DefaultRules())
	assert.Equal(t, a.Version(), b.Version())

	reordered := DefaultRules()
	reordered[7], reordered[8] = reordered[8], reordered[7]
	c := New(reordered)
	assert.NotEqual(t, a.Version(), c.Version())
	assert.Equal(t, "Display Case", c.Classify("Glass Door Display"))
}

func TestClassifier_CacheDoesNotChangeResults(t *testing.T) {
	cache := category_cache.New()
	original := New(DefaultRules(), WithCache(cache))
	assert.Equal(t, "Glass Door", original.Classify("Glass Door Display"))
	assert.Equal(t, 1, cache.Len())

	// Same cache, edited rule table: the memoised label must not be reused.
	edited := DefaultRules()
	edited[7], edited[8] = edited[8], edited[7]
	swapped := New(edited, WithCache(cache))
	assert.Equal(t, "Display Case", swapped.Classify("Glass Door Display"))

	assert.Equal(t, "Glass Door", original.Classify("Glass Door Display"))
}

func TestClassifier_DuplicateKeywordKeepsFirstRule(t *testing.T) {
	c := New([]Rule{
		{Keywords: []string{"cooler"}, Label: "First"},
		{Keywords: []string{"Cooler", "box"}, Label: "Second"},
	})

	assert.Equal(t, "First", c.Classify("walk-in cooler"))
	assert.Equal(t, "Second", c.Classify("cold box"))
}

func TestClassifier_EmptyRuleTable(t *testing.T) {
	c := New(nil)
	assert.Equal(t, "Other", c.Classify("anything"))
	assert.Equal(t, []string{"Other"}, c.Labels())
}

func TestNew_CopiesRules(t *testing.T) {
	rules := DefaultRules()
	c := New(rules)
	rules[0].Label = "Mutated"
	rules[0].Keywords[0] = "zzz"

	assert.Equal(t, "Reach-In", c.Classify("reach in cooler"))
}
