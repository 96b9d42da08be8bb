package engine

import (
	"strings"

	"github.com/coldline/catalog/models"
)

const (
	// FeaturedKeyword marks products eligible for the featured strip.
	FeaturedKeyword = "nsf"
	// FeaturedLimit is how many products the storefront features.
	FeaturedLimit = 2
)

// Featured selects, in order, the first limit products of an already filtered
// result whose name mentions FeaturedKeyword.
func Featured(filtered []models.Product, limit int) []models.Product {
	featured, _ := SplitFeatured(filtered, limit)
	return featured
}

// SplitFeatured partitions filtered into the featured selection and the
// remaining products, both in input order.
func SplitFeatured(filtered []models.Product, limit int) (featured, regular []models.Product) {
	limit = max(limit, 0)
	featured = make([]models.Product, 0, limit)
	regular = make([]models.Product, 0, len(filtered))
	for _, p := range filtered {
		if len(featured) < limit && strings.Contains(strings.ToLower(p.Name), FeaturedKeyword) {
			featured = append(featured, p)
			continue
		}
		regular = append(regular, p)
	}
	return featured, regular
}
