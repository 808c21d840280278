package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/greenscore-dev/greenscore/internal/categories"
	"github.com/greenscore-dev/greenscore/internal/config"
	"github.com/greenscore-dev/greenscore/internal/gitops"
	"github.com/greenscore-dev/greenscore/internal/loader"
	"github.com/greenscore-dev/greenscore/internal/logger"
	"github.com/greenscore-dev/greenscore/internal/recommend"
	"github.com/greenscore-dev/greenscore/internal/report"
	"github.com/greenscore-dev/greenscore/internal/runlog"
	"github.com/greenscore-dev/greenscore/internal/scoring"
)

const dateFormat = "2006-01-02"

// workspace is an opened GreenScore workspace: its root directory, parsed
// configuration and the command logger.
type workspace struct {
	root string
	cfg  *config.Config
	log  zerolog.Logger
}

func openWorkspace(dir, level string) (*workspace, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no %s in %s, run 'greenscore init' first", config.FileName, absDir)
		}
		return nil, err
	}

	return &workspace{root: absDir, cfg: cfg, log: logger.New(level)}, nil
}

// resolve turns a config-relative path into an absolute one.
func (w *workspace) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.root, path)
}

func (w *workspace) dataPaths(txOverride, mccOverride string) (string, string) {
	tx := w.cfg.Data.Transactions
	if txOverride != "" {
		tx = txOverride
	}
	mcc := w.cfg.Data.MCC
	if mccOverride != "" {
		mcc = mccOverride
	}
	return w.resolve(tx), w.resolve(mcc)
}

// categories loads the green category asset, falling back to the built-in
// list when the config names no file or the file is missing.
func (w *workspace) categories() (categories.Set, error) {
	if w.cfg.Data.GreenCategories == "" {
		return categories.Default(), nil
	}
	set, err := categories.Load(w.resolve(w.cfg.Data.GreenCategories))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			w.log.Debug().Str("file", w.cfg.Data.GreenCategories).Msg("green category asset missing, using defaults")
			return categories.Default(), nil
		}
		return categories.Set{}, err
	}
	return set, nil
}

// statusRules builds tier boundaries from config, keeping defaults for
// unset fields.
func (w *workspace) statusRules() scoring.StatusRules {
	rules := scoring.DefaultStatusRules()
	if w.cfg.Scoring.LeaderRank > 0 {
		rules.LeaderRank = w.cfg.Scoring.LeaderRank
	}
	if w.cfg.Scoring.ActiveRatio > 0 {
		rules.ActiveRatio = decimal.NewFromFloat(w.cfg.Scoring.ActiveRatio)
	}
	if w.cfg.Scoring.DevelopingRatio > 0 {
		rules.DevelopingRatio = decimal.NewFromFloat(w.cfg.Scoring.DevelopingRatio)
	}
	return rules
}

func (w *workspace) buildSummary(result *scoring.Result) report.Summary {
	return report.BuildSummary(
		result.Profiles,
		result.Enriched,
		w.statusRules().ActiveRatio,
		decimal.NewFromFloat(w.cfg.Report.TargetAverageRatio),
	)
}

func (w *workspace) recommender() *recommend.Generator {
	return recommend.NewGenerator(w.statusRules().DevelopingRatio)
}

// dataFlags are the input-selection flags shared by the scoring commands.
type dataFlags struct {
	transactions string
	mcc          string
	from         string
	to           string
}

func addDataFlags(cmd *cobra.Command, f *dataFlags) {
	cmd.Flags().StringVar(&f.transactions, "transactions", "", "transactions CSV (defaults to config)")
	cmd.Flags().StringVar(&f.mcc, "mcc", "", "MCC table CSV (defaults to config)")
	cmd.Flags().StringVar(&f.from, "from", "", "keep transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "keep transactions on or before this date (YYYY-MM-DD)")
}

func parseFilter(from, to string) (loader.DateFilter, error) {
	var f loader.DateFilter
	if from != "" {
		t, err := time.Parse(dateFormat, from)
		if err != nil {
			return f, fmt.Errorf("parsing --from: %w", err)
		}
		f.From = t
	}
	if to != "" {
		t, err := time.Parse(dateFormat, to)
		if err != nil {
			return f, fmt.Errorf("parsing --to: %w", err)
		}
		f.To = t
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return f, fmt.Errorf("--to %s is before --from %s", to, from)
	}
	return f, nil
}

// score runs the full pipeline for one command invocation and records it
// in the run log.
func (w *workspace) score(ctx context.Context, command string, f dataFlags) (*scoring.Result, error) {
	txPath, mccPath := w.dataPaths(f.transactions, f.mcc)
	filter, err := parseFilter(f.from, f.to)
	if err != nil {
		return nil, err
	}

	svc, err := loader.NewService(w.log)
	if err != nil {
		return nil, err
	}
	tables, err := svc.Load(ctx, txPath, mccPath, filter)
	if err != nil {
		return nil, err
	}

	cats, err := w.categories()
	if err != nil {
		return nil, err
	}

	engine := scoring.NewEngine(cats, w.cfg.Scoring.RepeatBonusPercent, w.statusRules(), w.log)
	result := engine.Run(tables)

	entry := runlog.Entry{
		Timestamp:        result.GeneratedAt,
		RunID:            result.RunID,
		Command:          command,
		TransactionsFile: filepath.Base(txPath),
		MCCFile:          filepath.Base(mccPath),
		Fingerprint:      result.Fingerprint,
		Transactions:     len(result.Enriched),
		Users:            len(result.Profiles),
		Excluded:         result.Stats.TransactionsExcluded + result.Stats.MCCExcluded,
	}
	if err := runlog.Append(w.root, []runlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write run log: %v\n", err)
	}

	return result, nil
}

// autoCommit versions the workspace after a run when git integration is on.
// Failures warn and never fail the command.
func (w *workspace) autoCommit(message string) {
	if !w.cfg.Git.AutoCommit || !gitops.IsRepo(w.root) {
		return
	}
	dirty, err := gitops.HasChanges(w.root)
	if err != nil {
		w.log.Warn().Err(err).Msg("git status failed, skipping auto-commit")
		return
	}
	if !dirty {
		return
	}
	hash, err := gitops.CommitAll(w.root, message, w.cfg.Git.AuthorName, w.cfg.Git.AuthorEmail)
	if err != nil {
		w.log.Warn().Err(err).Msg("auto-commit failed")
		return
	}
	w.log.Info().Str("commit", hash).Msg("workspace committed")
}

func logLevel(cmd *cobra.Command) string {
	level, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return "info"
	}
	return level
}

func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
