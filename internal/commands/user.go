package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/greenscore-dev/greenscore/internal/report"
)

func newUserCommand() *cobra.Command {
	var workspaceDir string
	var flags dataFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "user <user_id>",
		Short: "Show one user's green profile, recommendations and benefits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			ws, err := openWorkspace(workspaceDir, logLevel(cmd))
			if err != nil {
				return err
			}

			result, err := ws.score(cmd.Context(), "user", flags)
			if err != nil {
				return err
			}

			profile, ok := result.Profile(userID)
			if !ok {
				return fmt.Errorf("user %d not found in scored data", userID)
			}

			txns := result.UserTransactions(userID)
			recs := ws.recommender().For(profile, txns)
			benefits := report.BenefitsFor(profile.Tier, profile.GreenScore)

			if jsonOut {
				return printJSON(os.Stdout, profileJSON{
					Profile:         profile,
					Transactions:    txns,
					Recommendations: recs,
					Benefits:        benefits,
				})
			}

			printProfile(os.Stdout, profile, len(result.Profiles), txns, recs, benefits)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceDir, "workspace", "w", ".", "workspace directory")
	addDataFlags(cmd, &flags)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the profile as JSON")

	return cmd
}
