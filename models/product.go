package models

import "strings"

// ═══════════════════════════════════════════════════════════
// Catalog records
// ═══════════════════════════════════════════════════════════

// Product is a single catalog record. It is supplied by the dataset and never
// mutated after load.
type Product struct {
	Name  string  `json:"name" example:"True T-49-HC Reach In Refrigerator"`
	Image string  `json:"image" example:"https://cdn.example.com/t-49.jpg"`
	URL   *string `json:"url" example:"https://shop.example.com/t-49"` // nil = no purchasable link
}

// HasLink reports whether the product carries an outbound link. A blank URL
// counts as no link.
func (p Product) HasLink() bool {
	return hasLink(p.URL)
}

func hasLink(url *string) bool {
	return url != nil && strings.TrimSpace(*url) != ""
}

// Dataset is the static input record loaded at startup. The count fields are
// advisory and are never reconciled against Products or PriceSamples.
type Dataset struct {
	Category      string    `json:"category"`
	SourceURL     string    `json:"source_url"`
	TotalProducts int       `json:"total_products"`
	NSFProducts   int       `json:"nsf_products"`
	OtherProducts int       `json:"other_products"`
	Products      []Product `json:"products"`
	PricesFound   int       `json:"prices_found"`
	PriceSamples  []string  `json:"price_samples"`
}

// DatasetMetadata is the descriptive part of a Dataset, exposed for display only.
type DatasetMetadata struct {
	Category      string `json:"category"`
	SourceURL     string `json:"source_url"`
	TotalProducts int    `json:"total_products"`
	NSFProducts   int    `json:"nsf_products"`
	OtherProducts int    `json:"other_products"`
	PricesFound   int    `json:"prices_found"`
	LoadedCount   int    `json:"loaded_count"`
}
