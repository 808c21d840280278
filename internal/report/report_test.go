package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscore-dev/greenscore/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func profile(userID, rank int, score int64, ratio string, tier model.StatusTier) model.UserProfile {
	return model.UserProfile{
		UserID:     userID,
		Rank:       rank,
		GreenScore: score,
		GreenRatio: dec(ratio),
		Tier:       tier,
	}
}

func catTx(category, amount string, green bool) model.EnrichedTransaction {
	return model.EnrichedTransaction{
		Transaction: model.Transaction{
			Date:     date(2025, 3, 1),
			Amount:   dec(amount),
			Category: category,
		},
		IsGreen: green,
	}
}

func TestBuildSummary(t *testing.T) {
	profiles := []model.UserProfile{
		profile(1, 1, 500, "0.50", model.TierEcoLeader),
		profile(2, 2, 300, "0.25", model.TierEcoLeader),
		profile(3, 3, 100, "0.05", model.TierEcoLeader),
		profile(4, 4, 0, "0", model.TierEcoLeader),
	}
	enriched := []model.EnrichedTransaction{
		catTx("transit", "100", true),
		catTx("fuel", "200", false),
		catTx("cafe", "50", false),
	}

	s := BuildSummary(profiles, enriched, dec("0.20"), dec("20"))

	assert.Equal(t, 4, s.Users)
	assert.Equal(t, 3, s.Transactions)
	assert.Equal(t, 1, s.GreenTransactions)
	assert.Equal(t, int64(900), s.TotalEcoPoints)
	// Mean ratio (0.50 + 0.25 + 0.05 + 0) / 4 = 0.20 = 20%.
	assert.True(t, s.AverageGreenRatio.Equal(dec("20")), "avg %s", s.AverageGreenRatio)
	// 2 of 4 users at or above the 0.20 boundary.
	assert.True(t, s.ActiveClientShare.Equal(dec("50")), "active %s", s.ActiveClientShare)
	// 20% average against a 20% target: on target.
	assert.True(t, s.TargetProgress.Equal(dec("100")), "progress %s", s.TargetProgress)
	assert.Equal(t, 4, s.TierCounts[model.TierEcoLeader])
}

func TestBuildSummary_ProgressCapped(t *testing.T) {
	profiles := []model.UserProfile{profile(1, 1, 100, "0.90", model.TierEcoLeader)}

	s := BuildSummary(profiles, nil, dec("0.20"), dec("20"))
	assert.True(t, s.TargetProgress.Equal(dec("100")), "progress capped, got %s", s.TargetProgress)
}

func TestBuildSummary_Empty(t *testing.T) {
	s := BuildSummary(nil, nil, dec("0.20"), dec("20"))

	assert.Equal(t, 0, s.Users)
	assert.True(t, s.AverageGreenRatio.IsZero())
	assert.True(t, s.ActiveClientShare.IsZero())
	assert.True(t, s.TargetProgress.IsZero())
	assert.Equal(t, int64(0), s.TotalEcoPoints)
}

func TestTopCategories(t *testing.T) {
	enriched := []model.EnrichedTransaction{
		catTx("Fuel", "300", false),
		catTx("fuel", "200", false),
		catTx("Cafe", "400", false),
		catTx("Taxi", "50", false),
		catTx("Parking", "25", false),
		catTx("Transit", "999", true),
	}

	top := TopCategories(enriched, false, 3)
	require.Len(t, top, 3)

	// "Fuel" and "fuel" group together: 500 beats cafe's 400.
	assert.Equal(t, "fuel", top[0].Category)
	assert.True(t, top[0].Amount.Equal(dec("500")))
	assert.Equal(t, "cafe", top[1].Category)
	assert.Equal(t, "taxi", top[2].Category)
}

func TestTopCategories_Green(t *testing.T) {
	enriched := []model.EnrichedTransaction{
		catTx("Transit", "100", true),
		catTx("Fuel", "900", false),
	}

	top := TopCategories(enriched, true, 5)
	require.Len(t, top, 1)
	assert.Equal(t, "transit", top[0].Category)
}

func TestTopCategories_SkipsEmptyAndTiesByName(t *testing.T) {
	enriched := []model.EnrichedTransaction{
		catTx("", "999", false),
		catTx("zoo", "100", false),
		catTx("aquarium", "100", false),
	}

	top := TopCategories(enriched, false, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "aquarium", top[0].Category)
	assert.Equal(t, "zoo", top[1].Category)
}

func TestTopGreenUsers(t *testing.T) {
	profiles := []model.UserProfile{
		profile(1, 1, 500, "0.5", model.TierEcoLeader),
		profile(2, 2, 300, "0.3", model.TierEcoLeader),
		profile(3, 3, 100, "0.1", model.TierEcoLeader),
	}

	top := TopGreenUsers(profiles, 2)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].UserID)
	assert.Equal(t, 2, top[1].UserID)

	assert.Len(t, TopGreenUsers(profiles, 10), 3)
	assert.Len(t, TopGreenUsers(profiles, 0), 3)
}
