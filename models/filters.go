package models

// FilterState is the (search text, category filter) pair that determines which
// products are visible. It is always replaced as a whole value.
type FilterState struct {
	SearchText     string `json:"searchText" example:"cooler"`
	CategoryFilter string `json:"categoryFilter" example:"Upright"`
}

// DefaultFilterState returns the state used when nothing was serialized.
func DefaultFilterState() FilterState {
	return FilterState{SearchText: "", CategoryFilter: AllCategories}
}

// HasFilters reports whether the state narrows the catalog at all.
func (s FilterState) HasFilters() bool {
	return s.SearchText != "" || (s.CategoryFilter != AllCategories && s.CategoryFilter != "")
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Categories   []string         `json:"categories"`
	Distribution []CategoryCount  `json:"distribution"`
	PriceStats   *PriceStats      `json:"priceStats"`
	Dataset      *DatasetMetadata `json:"dataset"`
}

// FilterQuery is the serialized form of a FilterState returned to clients so
// they can update their location bar.
type FilterQuery struct {
	State      FilterState       `json:"state"`
	Query      map[string]string `json:"query"`
	ShareQuery string            `json:"share_query" example:"cat=Upright&q=cooler"`
}
