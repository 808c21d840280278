package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/greenscore-dev/greenscore/internal/model"
)

// ProfilesHeader is the CSV header for profiles.csv, the ranked per-user
// handoff file consumed by the dashboard.
const ProfilesHeader = "user_id,rank,green_score,total_spent,green_spent,green_ratio,transactions,green_transactions,tier,first_activity,last_activity"

const (
	profileFields   = 11
	dateFormat      = "2006-01-02"
	pColUserID      = 0
	pColRank        = 1
	pColGreenScore  = 2
	pColTotalSpent  = 3
	pColGreenSpent  = 4
	pColGreenRatio  = 5
	pColTxCount     = 6
	pColGreenTxs    = 7
	pColTier        = 8
	pColFirstActive = 9
	pColLastActive  = 10
)

// MarshalProfile converts a UserProfile to a CSV row.
func MarshalProfile(p model.UserProfile) []string {
	row := make([]string, profileFields)
	row[pColUserID] = strconv.Itoa(p.UserID)
	row[pColRank] = strconv.Itoa(p.Rank)
	row[pColGreenScore] = strconv.FormatInt(p.GreenScore, 10)
	row[pColTotalSpent] = p.TotalSpent.StringFixed(2)
	row[pColGreenSpent] = p.GreenSpent.StringFixed(2)
	row[pColGreenRatio] = p.GreenRatio.StringFixed(4)
	row[pColTxCount] = strconv.Itoa(p.Transactions)
	row[pColGreenTxs] = strconv.Itoa(p.GreenTransactions)
	row[pColTier] = string(p.Tier)

	if !p.FirstActivity.IsZero() {
		row[pColFirstActive] = p.FirstActivity.Format(dateFormat)
	}
	if !p.LastActivity.IsZero() {
		row[pColLastActive] = p.LastActivity.Format(dateFormat)
	}
	return row
}

// WriteProfiles writes ranked profiles to a profiles.csv writer
// (including header).
func WriteProfiles(w io.Writer, profiles []model.UserProfile) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ProfilesHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range profiles {
		if err := cw.Write(MarshalProfile(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
