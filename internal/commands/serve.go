package commands

import (
	"github.com/spf13/cobra"

	"github.com/greenscore-dev/greenscore/internal/server"
)

func newServeCommand() *cobra.Command {
	var workspaceDir string
	var flags dataFlags
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Score transactions and serve the dashboard API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(workspaceDir, logLevel(cmd))
			if err != nil {
				return err
			}

			result, err := ws.score(cmd.Context(), "serve", flags)
			if err != nil {
				return err
			}

			listenAddr := addr
			if listenAddr == "" {
				listenAddr = ws.cfg.Server.Addr
			}
			if listenAddr == "" {
				listenAddr = ":8080"
			}

			srv := server.New(result, ws.buildSummary(result), ws.recommender(),
				ws.cfg.Report.TopUsers, ws.cfg.Report.TopCategories, ws.log)
			return srv.ListenAndServe(listenAddr)
		},
	}

	cmd.Flags().StringVarP(&workspaceDir, "workspace", "w", ".", "workspace directory")
	addDataFlags(cmd, &flags)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config)")

	return cmd
}
