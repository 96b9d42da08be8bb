// Package data holds the catalog dataset compiled into the binaries.
package data

import _ "embed"

// ProductsJSON is the default dataset, used when no DATA_PATH is configured.
//
//go:embed products.json
var ProductsJSON []byte
