package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscore-dev/greenscore/internal/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testProfile() model.UserProfile {
	return model.UserProfile{
		UserID:            42,
		Rank:              3,
		GreenScore:        582,
		TotalSpent:        dec("660.50"),
		GreenSpent:        dec("570.50"),
		GreenRatio:        dec("0.863739"),
		Transactions:      5,
		GreenTransactions: 3,
		Tier:              model.TierActive,
		FirstActivity:     date(2025, time.March, 1),
		LastActivity:      date(2025, time.March, 20),
	}
}

func TestMarshalProfile(t *testing.T) {
	row := MarshalProfile(testProfile())

	require.Len(t, row, profileFields)
	assert.Equal(t, "42", row[pColUserID])
	assert.Equal(t, "3", row[pColRank])
	assert.Equal(t, "582", row[pColGreenScore])
	assert.Equal(t, "660.50", row[pColTotalSpent])
	assert.Equal(t, "570.50", row[pColGreenSpent])
	assert.Equal(t, "0.8637", row[pColGreenRatio])
	assert.Equal(t, "5", row[pColTxCount])
	assert.Equal(t, "3", row[pColGreenTxs])
	assert.Equal(t, "active-participant", row[pColTier])
	assert.Equal(t, "2025-03-01", row[pColFirstActive])
	assert.Equal(t, "2025-03-20", row[pColLastActive])
}

func TestMarshalProfileZeroActivity(t *testing.T) {
	p := testProfile()
	p.FirstActivity = time.Time{}
	p.LastActivity = time.Time{}

	row := MarshalProfile(p)

	assert.Empty(t, row[pColFirstActive])
	assert.Empty(t, row[pColLastActive])
}

func TestWriteProfiles(t *testing.T) {
	var buf bytes.Buffer
	err := WriteProfiles(&buf, []model.UserProfile{testProfile()})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, strings.Split(ProfilesHeader, ","), rows[0])
	assert.Equal(t, "42", rows[1][pColUserID])
	assert.Equal(t, "active-participant", rows[1][pColTier])
}

func TestWriteProfilesEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteProfiles(&buf, nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, strings.Split(ProfilesHeader, ","), rows[0])
}

func TestMarshalTransaction(t *testing.T) {
	e := model.EnrichedTransaction{
		Transaction: model.Transaction{
			UserID:   7,
			Date:     date(2025, time.March, 5),
			Amount:   dec("120.75"),
			Merchant: "GreenMarket",
			Category: "farmers market",
			MCC:      5411,
		},
		MCCStatus:      model.StatusNotGreen,
		IsGreen:        true,
		EcoPoints:      132,
		RepeatPurchase: true,
	}

	row := MarshalTransaction(e)

	require.Len(t, row, txFields)
	assert.Equal(t, "7", row[tColUserID])
	assert.Equal(t, "2025-03-05", row[tColDate])
	assert.Equal(t, "120.75", row[tColAmount])
	assert.Equal(t, "GreenMarket", row[tColMerchant])
	assert.Equal(t, "farmers market", row[tColCategory])
	assert.Equal(t, "5411", row[tColMCC])
	assert.Equal(t, "not-green", row[tColMCCStatus])
	assert.Equal(t, "true", row[tColIsGreen])
	assert.Equal(t, "132", row[tColEcoPoints])
	assert.Equal(t, "true", row[tColRepeat])
}

func TestWriteTransactionsKeepsOrder(t *testing.T) {
	txns := []model.EnrichedTransaction{
		{Transaction: model.Transaction{UserID: 2, Date: date(2025, time.March, 10), Amount: dec("50"), MCC: 4111}},
		{Transaction: model.Transaction{UserID: 1, Date: date(2025, time.March, 1), Amount: dec("25"), MCC: 5812}},
	}

	var buf bytes.Buffer
	err := WriteTransactions(&buf, txns)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2", rows[1][tColUserID])
	assert.Equal(t, "1", rows[2][tColUserID])
}

func TestWriteProfilesDeterministic(t *testing.T) {
	profiles := []model.UserProfile{testProfile()}

	var first, second bytes.Buffer
	require.NoError(t, WriteProfiles(&first, profiles))
	require.NoError(t, WriteProfiles(&second, profiles))

	assert.Equal(t, first.Bytes(), second.Bytes(), "identical inputs export identical bytes")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	profilesPath, txPath, err := WriteFiles(dir, []model.UserProfile{testProfile()}, []model.EnrichedTransaction{
		{Transaction: model.Transaction{UserID: 42, Date: date(2025, time.March, 1), Amount: dec("10"), MCC: 4111}},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "profiles.csv"), profilesPath)
	assert.Equal(t, filepath.Join(dir, "transactions.csv"), txPath)

	data, err := os.ReadFile(profilesPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), ProfilesHeader))

	data, err = os.ReadFile(txPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), TransactionsHeader))
}
