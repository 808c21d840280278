package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenscore-dev/greenscore/internal/exporter"
)

func newExportCommand() *cobra.Command {
	var workspaceDir string
	var flags dataFlags
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Score transactions and write the CSV handoff files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(workspaceDir, logLevel(cmd))
			if err != nil {
				return err
			}

			result, err := ws.score(cmd.Context(), "export", flags)
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = "exports"
			}
			profilesPath, txPath, err := exporter.WriteFiles(ws.resolve(dir), result.Profiles, result.Enriched)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d profiles to %s\n", len(result.Profiles), profilesPath)
			fmt.Printf("Exported %d transactions to %s\n", len(result.Enriched), txPath)

			ws.autoCommit("export: run " + shortRunID(result.RunID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceDir, "workspace", "w", ".", "workspace directory")
	addDataFlags(cmd, &flags)
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (defaults to exports/ in the workspace)")

	return cmd
}
