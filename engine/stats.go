package engine

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/coldline/catalog/models"
)

// leadingNumber matches the numeric prefix a lenient float parser accepts,
// so "1299.00 ea" still yields 1299.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

var priceNoise = strings.NewReplacer("$", "", ",", "")

// ParsePrice strips currency symbols and thousands separators and parses the
// leading number. ok is false when no number remains.
func ParsePrice(raw string) (value float64, ok bool) {
	cleaned := strings.TrimSpace(priceNoise.Replace(raw))
	match := leadingNumber.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// PriceStatistics summarises the parseable samples. Unparseable samples are
// excluded from every figure. It returns nil when nothing parses.
//
// Median is the element at index n/2 of the ascending sort, i.e. the
// upper-middle element for even n.
func PriceStatistics(samples []string) *models.PriceStats {
	prices := make([]float64, 0, len(samples))
	for _, s := range samples {
		if v, ok := ParsePrice(s); ok {
			prices = append(prices, v)
		}
	}
	if len(prices) == 0 {
		return nil
	}

	slices.Sort(prices)

	var sum float64
	for _, p := range prices {
		sum += p
	}

	return &models.PriceStats{
		Min:    prices[0],
		Max:    prices[len(prices)-1],
		Mean:   sum / float64(len(prices)),
		Median: prices[len(prices)/2],
		Count:  len(prices),
	}
}
