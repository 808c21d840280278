package scoring

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscore-dev/greenscore/internal/categories"
	"github.com/greenscore-dev/greenscore/internal/loader"
	"github.com/greenscore-dev/greenscore/internal/model"
)

func testTables() *loader.Tables {
	txs := []model.Transaction{
		tx(1, date(2025, 3, 1), "450.50", "Metro Card", "Public Transport", 4111),
		tx(1, date(2025, 3, 5), "90", "Coffee Corner", "Cafe", 5812),
		tx(1, date(2025, 3, 9), "120", "Metro Card", "Public Transport", 4111),
		tx(2, date(2025, 3, 2), "1200", "GasPro", "Fuel", 5541),
		tx(2, date(2025, 3, 7), "80", "Farm Box", "Farmers Market", 5999),
	}
	entries := []model.MCCEntry{
		{Code: 4111, Status: model.StatusGreen, Name: "Transit"},
		{Code: 5812, Status: model.StatusNotGreen, Name: "Restaurants"},
		{Code: 5541, Status: model.StatusNotGreen, Name: "Service Stations"},
	}
	return loader.NewTables(txs, entries)
}

func testEngine() *Engine {
	cats := categories.New([]string{"farmers market"})
	return NewEngine(cats, 10, DefaultStatusRules(), zerolog.Nop())
}

func TestEngineRun(t *testing.T) {
	result := testEngine().Run(testTables())

	require.Len(t, result.Enriched, 5)
	require.Len(t, result.Profiles, 2)
	assert.NotEmpty(t, result.RunID)

	// Input order preserved.
	assert.Equal(t, "Metro Card", result.Enriched[0].Merchant)
	assert.Equal(t, "GasPro", result.Enriched[3].Merchant)

	// Classification: green MCC, not-green MCC, category fallback.
	assert.True(t, result.Enriched[0].IsGreen)
	assert.Equal(t, model.StatusGreen, result.Enriched[0].MCCStatus)
	assert.False(t, result.Enriched[1].IsGreen)
	assert.True(t, result.Enriched[4].IsGreen, "farmers market matches the category list")
	assert.Equal(t, model.StatusNotGreen, result.Enriched[4].MCCStatus)

	// Points: 450 base, then a repeat purchase at Metro Card: 120 + 12.
	assert.Equal(t, int64(450), result.Enriched[0].EcoPoints)
	assert.Equal(t, int64(0), result.Enriched[1].EcoPoints)
	assert.Equal(t, int64(132), result.Enriched[2].EcoPoints)
	assert.True(t, result.Enriched[2].RepeatPurchase)
	assert.Equal(t, int64(80), result.Enriched[4].EcoPoints)
}

func TestEngineRun_Profiles(t *testing.T) {
	result := testEngine().Run(testTables())

	p1, ok := result.Profile(1)
	require.True(t, ok)
	assert.Equal(t, int64(582), p1.GreenScore, "450 + 132")
	assert.Equal(t, 1, p1.Rank)
	assert.Equal(t, model.TierEcoLeader, p1.Tier)
	assert.True(t, p1.TotalSpent.Equal(dec("660.50")), "total %s", p1.TotalSpent)
	assert.True(t, p1.GreenSpent.Equal(dec("570.50")), "green %s", p1.GreenSpent)

	p2, ok := result.Profile(2)
	require.True(t, ok)
	assert.Equal(t, int64(80), p2.GreenScore)
	assert.Equal(t, 2, p2.Rank)
	assert.Equal(t, model.TierEcoLeader, p2.Tier, "rank 2 is inside the leader band")

	_, ok = result.Profile(99)
	assert.False(t, ok)
}

func TestEngineRun_Deterministic(t *testing.T) {
	engine := testEngine()
	first := engine.Run(testTables())
	second := engine.Run(testTables())

	assert.Equal(t, first.Enriched, second.Enriched)
	assert.Equal(t, first.Profiles, second.Profiles)
	assert.NotEqual(t, first.RunID, second.RunID, "run ids are per-run metadata")
}

func TestEngineRun_Empty(t *testing.T) {
	result := testEngine().Run(loader.NewTables(nil, nil))

	assert.Empty(t, result.Enriched)
	assert.Empty(t, result.Profiles)
	assert.NotEmpty(t, result.RunID)
}

func TestUserTransactions(t *testing.T) {
	result := testEngine().Run(testTables())

	txs := result.UserTransactions(1)
	require.Len(t, txs, 3)
	assert.Equal(t, date(2025, 3, 1), txs[0].Date)
	assert.Equal(t, date(2025, 3, 9), txs[2].Date)

	assert.Empty(t, result.UserTransactions(99))
}
