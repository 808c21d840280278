package recommend

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/greenscore-dev/greenscore/internal/model"
	"github.com/greenscore-dev/greenscore/internal/report"
)

// Messages surfaced to users. Deterministic rule lookup, no ranking model.
const (
	NoDataMessage   = "No purchase history yet. Recommendations will appear after your first transactions."
	GeneralMessage  = "Look for green-labeled merchants when you shop. Purchases there earn eco-points."
	LowRatioMessage = "Your green share is under 10%. One green purchase a week is an easy way to lift it."
)

// Rule maps not-green spending patterns to a green alternative tip.
// Keywords are matched as lowercase substrings of the category name.
type Rule struct {
	Name     string
	Keywords []string
	Message  string
}

func (r Rule) matches(category string) bool {
	lower := strings.ToLower(category)
	for _, kw := range r.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// DefaultRules returns the built-in tip rules, checked in order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "dining",
			Keywords: []string{"cafe", "coffee", "restaurant"},
			Message:  "Bring a reusable cup on your next coffee run. Many partner cafes offer a discount for it.",
		},
		{
			Name:     "driving",
			Keywords: []string{"auto", "fuel", "gas", "gasoline", "parking"},
			Message:  "Swap short car trips for public transport or bike sharing to start earning eco-points.",
		},
	}
}

// Generator produces recommendations from a user's spending patterns.
type Generator struct {
	rules    []Rule
	lowRatio decimal.Decimal
	topN     int
}

// NewGenerator creates a Generator with the built-in rules. lowRatio is
// the green-ratio boundary under which the low-score nudge is added.
func NewGenerator(lowRatio decimal.Decimal) *Generator {
	return NewGeneratorWithRules(DefaultRules(), lowRatio)
}

// NewGeneratorWithRules creates a Generator with custom rules.
func NewGeneratorWithRules(rules []Rule, lowRatio decimal.Decimal) *Generator {
	return &Generator{rules: rules, lowRatio: lowRatio, topN: 3}
}

// For builds the ordered recommendation list for one user. The top
// not-green spending categories are scanned against the rules; the first
// match wins. With no match a general tip is issued, and users under the
// low-ratio boundary get an extra nudge. Never returns an empty list.
func (g *Generator) For(profile model.UserProfile, txns []model.EnrichedTransaction) []string {
	if len(txns) == 0 {
		return []string{NoDataMessage}
	}

	var recs []string
	for _, cat := range report.TopCategories(txns, false, g.topN) {
		matched := false
		for _, rule := range g.rules {
			if rule.matches(cat.Category) {
				recs = append(recs, rule.Message)
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}

	if len(recs) == 0 {
		recs = append(recs, GeneralMessage)
	}
	if profile.GreenRatio.LessThan(g.lowRatio) {
		recs = append(recs, LowRatioMessage)
	}
	return recs
}
