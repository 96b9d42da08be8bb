// Package catalog holds the immutable product dataset.
//
// A Store is built once at startup and injected into the engine and the HTTP
// layer. It has no write path; every accessor returns a copy so callers can
// never mutate the shared sequence.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/coldline/catalog/data"
	"github.com/coldline/catalog/models"
)

type Store struct {
	products     []models.Product
	priceSamples []string
	metadata     models.DatasetMetadata
}

// NewStore copies ds into a read-only store.
func NewStore(ds models.Dataset) *Store {
	products := make([]models.Product, len(ds.Products))
	copy(products, ds.Products)
	samples := make([]string, len(ds.PriceSamples))
	copy(samples, ds.PriceSamples)

	return &Store{
		products:     products,
		priceSamples: samples,
		metadata: models.DatasetMetadata{
			Category:      ds.Category,
			SourceURL:     ds.SourceURL,
			TotalProducts: ds.TotalProducts,
			NSFProducts:   ds.NSFProducts,
			OtherProducts: ds.OtherProducts,
			PricesFound:   ds.PricesFound,
			LoadedCount:   len(products),
		},
	}
}

// Load decodes a JSON dataset from r.
func Load(r io.Reader) (*Store, error) {
	var ds models.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return NewStore(ds), nil
}

// LoadFile decodes the JSON dataset stored at path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	store, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return store, nil
}

// LoadEmbedded decodes the dataset compiled into the binary.
func LoadEmbedded() (*Store, error) {
	return Load(bytes.NewReader(data.ProductsJSON))
}

// Open loads path when it is set and falls back to the embedded dataset.
func Open(path string) (*Store, error) {
	if path == "" {
		return LoadEmbedded()
	}
	return LoadFile(path)
}

// Products returns the products in dataset order.
func (s *Store) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// PriceSamples returns the raw price strings in dataset order.
func (s *Store) PriceSamples() []string {
	out := make([]string, len(s.priceSamples))
	copy(out, s.priceSamples)
	return out
}

func (s *Store) Len() int {
	return len(s.products)
}

// Metadata returns the advisory dataset description.
func (s *Store) Metadata() models.DatasetMetadata {
	return s.metadata
}
