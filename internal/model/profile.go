package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusTier is a user's standing in the green program.
type StatusTier string

const (
	TierEcoLeader  StatusTier = "eco-leader"
	TierActive     StatusTier = "active-participant"
	TierDeveloping StatusTier = "developing-habits"
	TierBeginner   StatusTier = "beginner"
)

// Level orders tiers from Beginner (0) to Eco-Leader (3).
func (t StatusTier) Level() int {
	switch t {
	case TierEcoLeader:
		return 3
	case TierActive:
		return 2
	case TierDeveloping:
		return 1
	default:
		return 0
	}
}

// Display returns the human-readable tier name.
func (t StatusTier) Display() string {
	switch t {
	case TierEcoLeader:
		return "Eco-Leader"
	case TierActive:
		return "Active participant"
	case TierDeveloping:
		return "Developing habits"
	default:
		return "Beginner"
	}
}

// UserProfile is the per-user aggregate produced by a scoring run.
// GreenRatio is amount-based: GreenSpent / TotalSpent.
type UserProfile struct {
	UserID            int             `json:"user_id"`
	Rank              int             `json:"rank"`
	GreenScore        int64           `json:"green_score"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	GreenSpent        decimal.Decimal `json:"green_spent"`
	GreenRatio        decimal.Decimal `json:"green_ratio"`
	Transactions      int             `json:"transactions"`
	GreenTransactions int             `json:"green_transactions"`
	Tier              StatusTier      `json:"tier"`
	FirstActivity     time.Time       `json:"first_activity"`
	LastActivity      time.Time       `json:"last_activity"`
}
