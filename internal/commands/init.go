package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/greenscore-dev/greenscore/internal/categories"
	"github.com/greenscore-dev/greenscore/internal/config"
	"github.com/greenscore-dev/greenscore/internal/gitops"
	"github.com/greenscore-dev/greenscore/internal/loader"
)

// starterMCC seeds a new workspace with common codes so the first scoring
// run works before the bank's full table is dropped in.
const starterMCC = loader.MCCHeader + `
4111,green,Local commuter transport,Commuter rail and metro fares
4121,not-green,Taxis and rideshare,
4131,green,Bus lines,Intercity and city buses
5411,not-green,Grocery stores,
5499,not-green,Specialty food stores,
5541,not-green,Service stations,Fuel and forecourt sales
5812,not-green,Restaurants,
5814,not-green,Fast food,
5931,green,Second-hand stores,Used merchandise and thrift
7523,not-green,Parking lots and garages,
7699,green,Repair shops,Appliance and household repair
`

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new GreenScore workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "loyalty program name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	// Create directory structure.
	dirs := []string{
		"data",
		"logs",
		"exports",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write greenscore.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the green category asset.
	catsPath := filepath.Join(dir, filepath.FromSlash(cfg.Data.GreenCategories))
	if err := categories.Save(catsPath, categories.Default()); err != nil {
		return fmt.Errorf("writing green categories: %w", err)
	}

	// Write the starter MCC table.
	mccPath := filepath.Join(dir, filepath.FromSlash(cfg.Data.MCC))
	if err := os.WriteFile(mccPath, []byte(starterMCC), 0o644); err != nil {
		return fmt.Errorf("writing MCC table: %w", err)
	}

	// Write an empty transactions table with the expected header.
	txPath := filepath.Join(dir, filepath.FromSlash(cfg.Data.Transactions))
	if err := os.WriteFile(txPath, []byte(loader.TransactionsHeader+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing transactions table: %w", err)
	}

	// Write .gitignore.
	gitignore := "exports/\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Write logs/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "logs", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	// Initialize git and create initial commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: Initialize "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized GreenScore workspace at %s (%s)\n", dir, hash)
	return nil
}
