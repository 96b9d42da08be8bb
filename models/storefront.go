// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

// StorefrontProduct is a product as rendered by the storefront, with its
// derived category attached.
type StorefrontProduct struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	URL      *string `json:"url"`
	Category string  `json:"category"`
	Featured bool    `json:"featured,omitempty"` // Hidden if false
}

// HasLink applies Product.HasLink to the rendered product.
func (p StorefrontProduct) HasLink() bool {
	return hasLink(p.URL)
}

// CatalogView is everything the presentation layer needs to render one state
// of the catalog.
type CatalogView struct {
	State      FilterState         `json:"state"`
	Query      map[string]string   `json:"query"`
	ShareQuery string              `json:"share_query"`
	HasFilters bool                `json:"has_filters"`
	Total      int                 `json:"total"`
	Categories []string            `json:"categories"`
	Products   []StorefrontProduct `json:"products"`
	Featured   []StorefrontProduct `json:"featured"`
	Regular    []StorefrontProduct `json:"regular"`
}
