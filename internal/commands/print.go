package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenscore-dev/greenscore/internal/loader"
	"github.com/greenscore-dev/greenscore/internal/model"
	"github.com/greenscore-dev/greenscore/internal/report"
	"github.com/greenscore-dev/greenscore/internal/scoring"
)

var oneHundred = decimal.NewFromInt(100)

// asPercent renders a 0..1 ratio as "12.34%".
func asPercent(ratio decimal.Decimal) string {
	return ratio.Mul(oneHundred).Round(2).StringFixed(2) + "%"
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

type reportJSON struct {
	RunID         string                  `json:"run_id"`
	GeneratedAt   time.Time               `json:"generated_at"`
	Program       string                  `json:"program"`
	Summary       report.Summary          `json:"summary"`
	Stats         loader.LoadStats        `json:"stats"`
	TopUsers      []model.UserProfile     `json:"top_users"`
	TopCategories []report.CategoryAmount `json:"top_categories"`
}

func printReport(w io.Writer, program string, result *scoring.Result, summary report.Summary, topUsers, topCats int) {
	fmt.Fprintf(w, "GreenScore report: %s\n", program)
	fmt.Fprintf(w, "Run %s at %s\n\n", shortRunID(result.RunID), result.GeneratedAt.Format(dateFormat))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Users\t%d\n", summary.Users)
	fmt.Fprintf(tw, "Transactions\t%d (%d green)\n", summary.Transactions, summary.GreenTransactions)
	if result.Stats.TransactionsExcluded > 0 || result.Stats.MCCExcluded > 0 {
		fmt.Fprintf(tw, "Excluded rows\t%d\n", result.Stats.TransactionsExcluded+result.Stats.MCCExcluded)
	}
	if result.Stats.TransactionsFiltered > 0 {
		fmt.Fprintf(tw, "Filtered out\t%d\n", result.Stats.TransactionsFiltered)
	}
	fmt.Fprintf(tw, "Total eco-points\t%d\n", summary.TotalEcoPoints)
	fmt.Fprintf(tw, "Average green ratio\t%s%%\n", summary.AverageGreenRatio.StringFixed(2))
	fmt.Fprintf(tw, "Active clients\t%s%%\n", summary.ActiveClientShare.StringFixed(2))
	fmt.Fprintf(tw, "Target progress\t%s%%\n", summary.TargetProgress.StringFixed(2))
	tw.Flush()

	fmt.Fprintf(w, "\nTiers\n")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, tier := range []model.StatusTier{model.TierEcoLeader, model.TierActive, model.TierDeveloping, model.TierBeginner} {
		fmt.Fprintf(tw, "  %s\t%d\n", tier.Display(), summary.TierCounts[tier])
	}
	tw.Flush()

	leaders := report.TopGreenUsers(result.Profiles, topUsers)
	if len(leaders) > 0 {
		fmt.Fprintf(w, "\nTop green users\n")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  RANK\tUSER\tGREEN SCORE\tRATIO\tTIER")
		for _, p := range leaders {
			fmt.Fprintf(tw, "  %d\t%d\t%d\t%s\t%s\n", p.Rank, p.UserID, p.GreenScore, asPercent(p.GreenRatio), p.Tier.Display())
		}
		tw.Flush()
	}

	cats := report.TopCategories(result.Enriched, true, topCats)
	if len(cats) > 0 {
		fmt.Fprintf(w, "\nTop green categories\n")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, c := range cats {
			fmt.Fprintf(tw, "  %s\t%s\n", c.Category, c.Amount.StringFixed(2))
		}
		tw.Flush()
	}
}

type profileJSON struct {
	Profile         model.UserProfile           `json:"profile"`
	Transactions    []model.EnrichedTransaction `json:"transactions"`
	Recommendations []string                    `json:"recommendations"`
	Benefits        report.BenefitStatus        `json:"benefits"`
}

func printProfile(w io.Writer, p model.UserProfile, totalUsers int, txns []model.EnrichedTransaction, recs []string, benefits report.BenefitStatus) {
	fmt.Fprintf(w, "User %d: %s (rank %d of %d)\n\n", p.UserID, p.Tier.Display(), p.Rank, totalUsers)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "GreenScore\t%d eco-points\n", p.GreenScore)
	fmt.Fprintf(tw, "Total spent\t%s\n", p.TotalSpent.StringFixed(2))
	fmt.Fprintf(tw, "Green spent\t%s\n", p.GreenSpent.StringFixed(2))
	fmt.Fprintf(tw, "Green ratio\t%s\n", asPercent(p.GreenRatio))
	fmt.Fprintf(tw, "Transactions\t%d (%d green)\n", p.Transactions, p.GreenTransactions)
	fmt.Fprintf(tw, "First activity\t%s\n", p.FirstActivity.Format(dateFormat))
	fmt.Fprintf(tw, "Last activity\t%s\n", p.LastActivity.Format(dateFormat))
	tw.Flush()

	if len(txns) > 0 {
		fmt.Fprintf(w, "\nActivity\n")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  DATE\tMERCHANT\tCATEGORY\tAMOUNT\tGREEN\tPOINTS")
		repeats := false
		for _, tx := range txns {
			points := fmt.Sprintf("%d", tx.EcoPoints)
			if tx.RepeatPurchase {
				points += "*"
				repeats = true
			}
			green := "no"
			if tx.IsGreen {
				green = "yes"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				tx.Date.Format(dateFormat), tx.Merchant, tx.Category, tx.Amount.StringFixed(2), green, points)
		}
		tw.Flush()
		if repeats {
			fmt.Fprintln(w, "  * includes repeat-purchase bonus")
		}
	}

	if len(recs) > 0 {
		fmt.Fprintf(w, "\nRecommendations\n")
		for _, rec := range recs {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}

	fmt.Fprintf(w, "\nBenefits\n")
	printBenefitList(w, "Unlocked", benefits.Unlocked)
	printBenefitList(w, "Locked", benefits.Locked)
}

func printBenefitList(w io.Writer, label string, list []report.Benefit) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", label)
	for _, b := range list {
		if b.Cost == 0 {
			fmt.Fprintf(w, "    - %s (free)\n", b.Name)
		} else {
			fmt.Fprintf(w, "    - %s (%d eco-points)\n", b.Name, b.Cost)
		}
	}
}
