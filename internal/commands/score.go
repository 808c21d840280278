package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/greenscore-dev/greenscore/internal/report"
)

func newScoreCommand() *cobra.Command {
	var workspaceDir string
	var flags dataFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score transactions and print the program report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(workspaceDir, logLevel(cmd))
			if err != nil {
				return err
			}

			result, err := ws.score(cmd.Context(), "score", flags)
			if err != nil {
				return err
			}
			summary := ws.buildSummary(result)

			if jsonOut {
				payload := reportJSON{
					RunID:         result.RunID,
					GeneratedAt:   result.GeneratedAt,
					Program:       ws.cfg.Program.Name,
					Summary:       summary,
					Stats:         result.Stats,
					TopUsers:      report.TopGreenUsers(result.Profiles, ws.cfg.Report.TopUsers),
					TopCategories: report.TopCategories(result.Enriched, true, ws.cfg.Report.TopCategories),
				}
				if err := printJSON(os.Stdout, payload); err != nil {
					return err
				}
			} else {
				printReport(os.Stdout, ws.cfg.Program.Name, result, summary, ws.cfg.Report.TopUsers, ws.cfg.Report.TopCategories)
			}

			ws.autoCommit("score: run " + shortRunID(result.RunID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceDir, "workspace", "w", ".", "workspace directory")
	addDataFlags(cmd, &flags)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")

	return cmd
}
