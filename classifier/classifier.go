// Package classifier derives a product category from its free-text name.
//
// Classification is a pure function of the name: every name maps to exactly
// one label of a closed set, with "Other" as the catch-all. Keyword hits are
// found in a single pass with an Aho-Corasick automaton and the lowest-index
// rule among the hits decides the label.
package classifier

import (
	"hash/fnv"
	"strconv"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	category_cache "github.com/coldline/catalog/cache"
	"github.com/coldline/catalog/models"
)

// Classifier is safe for concurrent use once constructed.
type Classifier struct {
	rules    []Rule
	keywords []string // normalized, deduplicated
	kwRule   []int    // keyword index -> rule index
	matcher  *ahocorasick.Matcher
	version  string
	cache    *category_cache.LabelCache
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithCache memoises labels per (rule-table version, name).
func WithCache(cache *category_cache.LabelCache) Option {
	return func(c *Classifier) {
		c.cache = cache
	}
}

var defaultClassifier = New(DefaultRules())

// Default returns the classifier built from DefaultRules.
func Default() *Classifier {
	return defaultClassifier
}

// Classify labels name with the default rule table.
func Classify(name string) string {
	return defaultClassifier.Classify(name)
}

// New builds the automaton for rules. The rules slice is copied.
func New(rules []Rule, opts ...Option) *Classifier {
	c := &Classifier{
		rules: make([]Rule, len(rules)),
	}
	for i, r := range rules {
		c.rules[i] = Rule{Keywords: append([]string(nil), r.Keywords...), Label: r.Label}
	}

	seen := make(map[string]bool)
	for ruleIdx, rule := range c.rules {
		for _, kw := range rule.Keywords {
			normalized := strings.ToLower(kw)
			// An empty keyword would match every name.
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			c.keywords = append(c.keywords, normalized)
			c.kwRule = append(c.kwRule, ruleIdx)
		}
	}
	if len(c.keywords) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(c.keywords)
	}
	c.version = fingerprint(c.rules)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the label of the first rule with a keyword contained in the
// lower-cased name, or "Other".
func (c *Classifier) Classify(name string) string {
	if c.cache != nil {
		if label, ok := c.cache.Get(c.version, name); ok {
			return label
		}
	}

	label := c.match(name)

	if c.cache != nil {
		c.cache.Set(c.version, name, label)
	}
	return label
}

func (c *Classifier) match(name string) string {
	if c.matcher == nil || name == "" {
		return models.OtherCategory
	}

	best := -1
	for _, hit := range c.matcher.MatchThreadSafe([]byte(strings.ToLower(name))) {
		if hit < 0 || hit >= len(c.kwRule) {
			continue
		}
		if ruleIdx := c.kwRule[hit]; best == -1 || ruleIdx < best {
			best = ruleIdx
		}
	}
	if best == -1 {
		return models.OtherCategory
	}
	return c.rules[best].Label
}

// Labels lists every label the classifier can return, in rule order, ending
// with "Other".
func (c *Classifier) Labels() []string {
	labels := make([]string, 0, len(c.rules)+1)
	seen := make(map[string]bool, len(c.rules)+1)
	for _, r := range c.rules {
		if !seen[r.Label] {
			seen[r.Label] = true
			labels = append(labels, r.Label)
		}
	}
	if !seen[models.OtherCategory] {
		labels = append(labels, models.OtherCategory)
	}
	return labels
}

// Version fingerprints the rule table, including its order.
func (c *Classifier) Version() string {
	return c.version
}

func fingerprint(rules []Rule) string {
	h := fnv.New64a()
	for _, r := range rules {
		h.Write([]byte(r.Label))
		h.Write([]byte{0})
		for _, kw := range r.Keywords {
			h.Write([]byte(kw))
			h.Write([]byte{0x1f})
		}
		h.Write([]byte{0x1e})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
