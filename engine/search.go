package engine

import (
	"strings"

	"github.com/coldline/catalog/models"
)

// Search keeps the products whose name contains searchText (case-insensitive)
// and whose category equals categoryFilter. An empty searchText and the "All"
// (or empty) category match everything. Input order is preserved.
func (e *Engine) Search(products []models.Product, searchText, categoryFilter string) []models.Product {
	needle := strings.ToLower(searchText)
	anyCategory := categoryFilter == "" || categoryFilter == models.AllCategories

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if !anyCategory && e.classifier.Classify(p.Name) != categoryFilter {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SearchState is Search driven by a FilterState.
func (e *Engine) SearchState(products []models.Product, state models.FilterState) []models.Product {
	return e.Search(products, state.SearchText, state.CategoryFilter)
}
