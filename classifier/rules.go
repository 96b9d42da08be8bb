package classifier

// Rule maps a set of keywords to a category label. A rule matches when any of
// its keywords is a substring of the lower-cased product name.
type Rule struct {
	Keywords []string
	Label    string
}

// DefaultRules returns the catalog rule table. Order is the tie-break: the
// first matching rule wins, so "glass door display" is a Glass Door.
func DefaultRules() []Rule {
	return []Rule{
		{Keywords: []string{"reach in"}, Label: "Reach-In"},
		{Keywords: []string{"merchandiser", "merchandising"}, Label: "Merchandiser"},
		{Keywords: []string{"prep table", "sandwich"}, Label: "Prep Table"},
		{Keywords: []string{"bakery case"}, Label: "Bakery Case"},
		{Keywords: []string{"bar cooler", "back bar"}, Label: "Bar Cooler"},
		{Keywords: []string{"undercounter"}, Label: "Undercounter"},
		{Keywords: []string{"chef base"}, Label: "Chef Base"},
		{Keywords: []string{"glass door"}, Label: "Glass Door"},
		{Keywords: []string{"display"}, Label: "Display Case"},
		{Keywords: []string{"upright"}, Label: "Upright"},
		{Keywords: []string{"worktop"}, Label: "Worktop"},
		{Keywords: []string{"buffet", "salad bar"}, Label: "Buffet/Salad Bar"},
	}
}
