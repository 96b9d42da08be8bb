package models

// PriceStats summarises the parseable price samples. A nil *PriceStats means no
// sample could be parsed.
type PriceStats struct {
	Min    float64 `json:"min" example:"800"`
	Max    float64 `json:"max" example:"1200"`
	Mean   float64 `json:"mean" example:"1000"`
	Median float64 `json:"median" example:"1200"` // upper-middle element for even counts
	Count  int     `json:"count" example:"2"`
}
