package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/greenscore-dev/greenscore/internal/categories"
	"github.com/greenscore-dev/greenscore/internal/model"
)

var oneHundred = decimal.NewFromInt(100)

// Summary is the program-level KPI block served to the dashboard.
// Ratio figures are percentages rounded to two decimal places.
type Summary struct {
	Users             int                      `json:"users"`
	Transactions      int                      `json:"transactions"`
	GreenTransactions int                      `json:"green_transactions"`
	TotalEcoPoints    int64                    `json:"total_eco_points"`
	AverageGreenRatio decimal.Decimal          `json:"average_green_ratio"`
	ActiveClientShare decimal.Decimal          `json:"active_client_share"`
	TargetProgress    decimal.Decimal          `json:"target_progress"`
	TierCounts        map[model.StatusTier]int `json:"tier_counts"`
}

// BuildSummary computes program KPIs. activeRatio is the green-ratio
// boundary counting a user as active; targetAverage is the program goal
// for the average green ratio, in percent. Progress toward the target is
// capped at 100.
func BuildSummary(profiles []model.UserProfile, enriched []model.EnrichedTransaction, activeRatio, targetAverage decimal.Decimal) Summary {
	s := Summary{
		Users:        len(profiles),
		Transactions: len(enriched),
		TierCounts:   make(map[model.StatusTier]int, 4),
	}

	for _, tx := range enriched {
		if tx.IsGreen {
			s.GreenTransactions++
		}
	}

	ratioSum := decimal.Zero
	active := 0
	for _, p := range profiles {
		s.TotalEcoPoints += p.GreenScore
		ratioSum = ratioSum.Add(p.GreenRatio)
		if p.GreenRatio.GreaterThanOrEqual(activeRatio) {
			active++
		}
		s.TierCounts[p.Tier]++
	}

	if len(profiles) > 0 {
		users := decimal.NewFromInt(int64(len(profiles)))
		s.AverageGreenRatio = ratioSum.Div(users).Mul(oneHundred).Round(2)
		s.ActiveClientShare = decimal.NewFromInt(int64(active)).Div(users).Mul(oneHundred).Round(2)
	}

	if targetAverage.IsPositive() {
		progress := s.AverageGreenRatio.Div(targetAverage).Mul(oneHundred).Round(2)
		if progress.GreaterThan(oneHundred) {
			progress = oneHundred
		}
		s.TargetProgress = progress
	}
	return s
}

// CategoryAmount is spending attributed to one normalized category.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TopCategories ranks categories by spent amount over transactions whose
// IsGreen matches green. Categories are normalized for grouping; empty
// ones are skipped. Ties break by category name.
func TopCategories(txns []model.EnrichedTransaction, green bool, n int) []CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txns {
		if tx.IsGreen != green {
			continue
		}
		cat := categories.Normalize(tx.Category)
		if cat == "" {
			continue
		}
		totals[cat] = totals[cat].Add(tx.Amount)
	}

	ranked := make([]CategoryAmount, 0, len(totals))
	for cat, amount := range totals {
		ranked = append(ranked, CategoryAmount{Category: cat, Amount: amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Amount.Equal(ranked[j].Amount) {
			return ranked[i].Amount.GreaterThan(ranked[j].Amount)
		}
		return ranked[i].Category < ranked[j].Category
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopGreenUsers returns the first n profiles of the ranking.
func TopGreenUsers(profiles []model.UserProfile, n int) []model.UserProfile {
	if n > 0 && len(profiles) > n {
		return profiles[:n]
	}
	return profiles
}
