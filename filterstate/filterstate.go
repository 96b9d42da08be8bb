// Package filterstate converts filter state to and from its serialized query
// representation. It knows nothing about navigation; callers decide when to
// push the result into a location bar.
package filterstate

import (
	"net/url"

	"github.com/coldline/catalog/models"
)

// Query parameter keys of the shareable representation.
const (
	SearchKey   = "q"
	CategoryKey = "cat"
)

// ToQuery serializes state. A key is omitted, never set to "", when its field
// holds the default.
func ToQuery(state models.FilterState) map[string]string {
	query := make(map[string]string, 2)
	if state.SearchText != "" {
		query[SearchKey] = state.SearchText
	}
	if state.CategoryFilter != models.AllCategories && state.CategoryFilter != "" {
		query[CategoryKey] = state.CategoryFilter
	}
	return query
}

// FromQuery restores state from a mapping. Missing keys fall back to the
// defaults; category values are not validated. An empty cat is treated like a
// missing one and restores "All", so "?cat=" shows the whole catalog.
func FromQuery(query map[string]string) models.FilterState {
	state := models.DefaultFilterState()
	if q, ok := query[SearchKey]; ok {
		state.SearchText = q
	}
	if cat := query[CategoryKey]; cat != "" {
		state.CategoryFilter = cat
	}
	return state
}

// FromValues restores state from url.Values, using the first value of each key.
func FromValues(values url.Values) models.FilterState {
	query := make(map[string]string, 2)
	for _, key := range []string{SearchKey, CategoryKey} {
		if v, ok := values[key]; ok && len(v) > 0 {
			query[key] = v[0]
		}
	}
	return FromQuery(query)
}

// ToValues is ToQuery as url.Values.
func ToValues(state models.FilterState) url.Values {
	values := url.Values{}
	for k, v := range ToQuery(state) {
		values.Set(k, v)
	}
	return values
}

// Apply returns a copy of base with the filter keys rewritten for state.
// Unrelated parameters are preserved.
func Apply(base url.Values, state models.FilterState) url.Values {
	out := make(url.Values, len(base)+2)
	for k, v := range base {
		out[k] = append([]string(nil), v...)
	}
	out.Del(SearchKey)
	out.Del(CategoryKey)
	for k, v := range ToQuery(state) {
		out.Set(k, v)
	}
	return out
}

// Encode renders the canonical query string for state, keys sorted.
func Encode(state models.FilterState) string {
	return ToValues(state).Encode()
}

// Parse restores state from a raw query string. A leading "?" is accepted. A
// query that cannot be parsed yields the default state.
func Parse(raw string) models.FilterState {
	if len(raw) > 0 && raw[0] == '?' {
		raw = raw[1:]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return models.DefaultFilterState()
	}
	return FromValues(values)
}
