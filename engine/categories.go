package engine

import (
	"slices"
	"sort"

	"github.com/coldline/catalog/models"
)

// ListCategories returns the distinct labels present in products, sorted
// lexicographically. Labels no product maps to are absent.
func (e *Engine) ListCategories(products []models.Product) []string {
	seen := make(map[string]bool)
	labels := make([]string, 0)
	for _, p := range products {
		label := e.classifier.Classify(p.Name)
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	slices.Sort(labels)
	return labels
}

// CategoryDistribution counts products per label, largest first. Equal counts
// keep the order in which the label was first encountered.
func (e *Engine) CategoryDistribution(products []models.Product) []models.CategoryCount {
	index := make(map[string]int)
	counts := make([]models.CategoryCount, 0)
	for _, p := range products {
		label := e.classifier.Classify(p.Name)
		i, ok := index[label]
		if !ok {
			i = len(counts)
			index[label] = i
			counts = append(counts, models.CategoryCount{Name: label})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
