package scoring

import (
	"sort"

	"github.com/greenscore-dev/greenscore/internal/model"
)

// merchantKey identifies a user's purchase history at one merchant.
type merchantKey struct {
	user     int
	merchant string
}

// assignPoints computes eco-points in place. Base rule: floor(amount)
// points per green transaction, zero otherwise. A green purchase at a
// merchant where the user already made an earlier green purchase earns
// the repeat bonus: floor(base * bonusPercent / 100) extra points, flat,
// independent of how many earlier purchases exist.
//
// "Earlier" means strictly earlier date, or earlier input position on
// equal dates. The walk runs in that order while results land at the
// original positions, so input order never changes the outcome beyond
// same-date ties.
func assignPoints(enriched []model.EnrichedTransaction, bonusPercent int64) {
	order := make([]int, len(enriched))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ta, tb := enriched[order[a]].Date, enriched[order[b]].Date
		if !ta.Equal(tb) {
			return ta.Before(tb)
		}
		return order[a] < order[b]
	})

	seen := make(map[merchantKey]bool)
	for _, i := range order {
		tx := &enriched[i]
		if !tx.IsGreen {
			continue
		}

		base := tx.Amount.IntPart()
		points := base

		// An empty merchant cannot establish a purchase history.
		if tx.Merchant != "" {
			key := merchantKey{user: tx.UserID, merchant: tx.Merchant}
			if seen[key] {
				tx.RepeatPurchase = true
				points += base * bonusPercent / 100
			}
			seen[key] = true
		}

		tx.EcoPoints = points
	}
}
