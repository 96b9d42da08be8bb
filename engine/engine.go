// Package engine implements the catalog query engine: text and category
// filtering, category enumeration and distribution, price statistics and the
// featured-item selection.
//
// Every function is pure. Nothing here blocks, performs I/O or fails; bad
// input degrades to empty results.
package engine

import (
	"github.com/coldline/catalog/classifier"
)

type Engine struct {
	classifier *classifier.Classifier
}

// New returns an engine classifying with cls, or with the default rule table
// when cls is nil.
func New(cls *classifier.Classifier) *Engine {
	if cls == nil {
		cls = classifier.Default()
	}
	return &Engine{classifier: cls}
}

// Classify exposes the engine's classifier.
func (e *Engine) Classify(name string) string {
	return e.classifier.Classify(name)
}
