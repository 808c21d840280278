package scoring

import (
	"sort"

	"github.com/greenscore-dev/greenscore/internal/model"
)

// Aggregate groups enriched transactions into user profiles, ranked by
// GreenScore descending with UserID ascending breaking ties. Ranks are
// 1-based and dense over the returned slice. GreenRatio is amount-based:
// GreenSpent / TotalSpent, zero when nothing was spent.
func Aggregate(enriched []model.EnrichedTransaction) []model.UserProfile {
	byUser := make(map[int]*model.UserProfile)
	for _, tx := range enriched {
		p := byUser[tx.UserID]
		if p == nil {
			p = &model.UserProfile{UserID: tx.UserID}
			byUser[tx.UserID] = p
		}

		p.TotalSpent = p.TotalSpent.Add(tx.Amount)
		p.Transactions++
		if tx.IsGreen {
			p.GreenSpent = p.GreenSpent.Add(tx.Amount)
			p.GreenTransactions++
			p.GreenScore += tx.EcoPoints
		}
		if p.FirstActivity.IsZero() || tx.Date.Before(p.FirstActivity) {
			p.FirstActivity = tx.Date
		}
		if tx.Date.After(p.LastActivity) {
			p.LastActivity = tx.Date
		}
	}

	profiles := make([]model.UserProfile, 0, len(byUser))
	for _, p := range byUser {
		if p.TotalSpent.IsPositive() {
			p.GreenRatio = p.GreenSpent.Div(p.TotalSpent)
		}
		profiles = append(profiles, *p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].GreenScore != profiles[j].GreenScore {
			return profiles[i].GreenScore > profiles[j].GreenScore
		}
		return profiles[i].UserID < profiles[j].UserID
	})
	for i := range profiles {
		profiles[i].Rank = i + 1
	}
	return profiles
}
