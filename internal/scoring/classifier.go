package scoring

import (
	"github.com/greenscore-dev/greenscore/internal/categories"
	"github.com/greenscore-dev/greenscore/internal/model"
)

// Classifier decides whether a transaction counts as green. The MCC table
// is checked first, then the green category list; either match wins.
type Classifier struct {
	lookup func(int) model.MCCEntry
	cats   categories.Set
}

// NewClassifier creates a Classifier over an MCC lookup and a green
// category set. The lookup must synthesize a not-green entry for absent
// codes (loader.Tables.Lookup does).
func NewClassifier(lookup func(int) model.MCCEntry, cats categories.Set) *Classifier {
	return &Classifier{lookup: lookup, cats: cats}
}

// Classify returns whether tx is green and the status of its MCC entry.
// MCCStatus stays not-green when the match came from the category list.
func (c *Classifier) Classify(tx model.Transaction) (bool, model.GreenStatus) {
	entry := c.lookup(tx.MCC)
	if entry.Status == model.StatusGreen {
		return true, entry.Status
	}
	if c.cats.Contains(tx.Category) {
		return true, entry.Status
	}
	return false, entry.Status
}
