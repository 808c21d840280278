package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/greenscore-dev/greenscore/internal/model"
)

// StatusRules holds the tier boundaries.
type StatusRules struct {
	LeaderRank      int
	ActiveRatio     decimal.Decimal
	DevelopingRatio decimal.Decimal
}

// DefaultStatusRules returns the program's standard boundaries.
func DefaultStatusRules() StatusRules {
	return StatusRules{
		LeaderRank:      5,
		ActiveRatio:     decimal.NewFromFloat(0.20),
		DevelopingRatio: decimal.NewFromFloat(0.10),
	}
}

// Tier assigns a status tier, first match wins:
//
//  1. Eco-Leader: rank within the leader band, regardless of ratio.
//  2. Active participant: ratio >= ActiveRatio.
//  3. Developing habits: ratio >= DevelopingRatio.
//  4. Beginner: everyone else.
//
// The rank check takes precedence over the ratio checks; a top-ranked
// user with a tiny ratio is still an Eco-Leader.
func (r StatusRules) Tier(rank int, ratio decimal.Decimal) model.StatusTier {
	switch {
	case rank >= 1 && rank <= r.LeaderRank:
		return model.TierEcoLeader
	case ratio.GreaterThanOrEqual(r.ActiveRatio):
		return model.TierActive
	case ratio.GreaterThanOrEqual(r.DevelopingRatio):
		return model.TierDeveloping
	default:
		return model.TierBeginner
	}
}

// AssignTiers stamps tiers onto ranked profiles in place.
func AssignTiers(profiles []model.UserProfile, rules StatusRules) {
	for i := range profiles {
		profiles[i].Tier = rules.Tier(profiles[i].Rank, profiles[i].GreenRatio)
	}
}
