// Package exporter writes scoring results to CSV handoff files for the
// dashboard and downstream analytics.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/greenscore-dev/greenscore/internal/model"
)

const (
	// ProfilesFile is the file name for the ranked profile export.
	ProfilesFile = "profiles.csv"
	// TransactionsFile is the file name for the enriched transaction export.
	TransactionsFile = "transactions.csv"
)

// WriteFiles writes profiles.csv and transactions.csv under dir, creating
// the directory when missing. It returns the paths of both files.
func WriteFiles(dir string, profiles []model.UserProfile, txns []model.EnrichedTransaction) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating export dir: %w", err)
	}

	profilesPath := filepath.Join(dir, ProfilesFile)
	if err := writeFile(profilesPath, func(f *os.File) error {
		return WriteProfiles(f, profiles)
	}); err != nil {
		return "", "", err
	}

	txPath := filepath.Join(dir, TransactionsFile)
	if err := writeFile(txPath, func(f *os.File) error {
		return WriteTransactions(f, txns)
	}); err != nil {
		return "", "", err
	}
	return profilesPath, txPath, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
