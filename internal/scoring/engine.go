package scoring

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/greenscore-dev/greenscore/internal/categories"
	"github.com/greenscore-dev/greenscore/internal/loader"
	"github.com/greenscore-dev/greenscore/internal/model"
)

// Engine runs the scoring pipeline over loaded tables: classify, assign
// eco-points, aggregate, rank, tier.
type Engine struct {
	cats  categories.Set
	bonus int64
	rules StatusRules
	log   zerolog.Logger
	now   func() time.Time
}

// NewEngine creates an Engine. bonusPercent is the repeat-purchase bonus
// in whole percent (10 means +10%).
func NewEngine(cats categories.Set, bonusPercent int64, rules StatusRules, log zerolog.Logger) *Engine {
	return &Engine{
		cats:  cats,
		bonus: bonusPercent,
		rules: rules,
		log:   log,
		now:   time.Now,
	}
}

// Result is one scoring run. Enriched preserves the input transaction
// order; Profiles are ranked. Identical tables and rules always produce
// identical Enriched and Profiles; RunID and timing are per-run metadata.
type Result struct {
	RunID       string
	GeneratedAt time.Time
	Duration    time.Duration
	Enriched    []model.EnrichedTransaction
	Profiles    []model.UserProfile
	Stats       loader.LoadStats
	Fingerprint string
}

// Run scores the tables.
func (e *Engine) Run(tables *loader.Tables) *Result {
	start := e.now()
	classifier := NewClassifier(tables.Lookup, e.cats)

	enriched := make([]model.EnrichedTransaction, len(tables.Transactions))
	for i, tx := range tables.Transactions {
		green, mccStatus := classifier.Classify(tx)
		enriched[i] = model.EnrichedTransaction{
			Transaction: tx,
			MCCStatus:   mccStatus,
			IsGreen:     green,
		}
	}
	assignPoints(enriched, e.bonus)

	profiles := Aggregate(enriched)
	AssignTiers(profiles, e.rules)

	result := &Result{
		RunID:       uuid.NewString(),
		GeneratedAt: start,
		Duration:    e.now().Sub(start),
		Enriched:    enriched,
		Profiles:    profiles,
		Stats:       tables.Stats,
		Fingerprint: tables.Fingerprint,
	}

	e.log.Info().
		Str("run_id", result.RunID).
		Int("transactions", len(enriched)).
		Int("users", len(profiles)).
		Dur("took", result.Duration).
		Msg("scoring run complete")
	return result
}

// Profile returns the ranked profile for a user.
func (r *Result) Profile(userID int) (model.UserProfile, bool) {
	for _, p := range r.Profiles {
		if p.UserID == userID {
			return p, true
		}
	}
	return model.UserProfile{}, false
}

// UserTransactions returns a user's enriched transactions in input order.
func (r *Result) UserTransactions(userID int) []model.EnrichedTransaction {
	var txs []model.EnrichedTransaction
	for _, tx := range r.Enriched {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	return txs
}
