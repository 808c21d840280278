package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscore-dev/greenscore/internal/model"
)

func TestStatusRules_Tier(t *testing.T) {
	rules := DefaultStatusRules()

	tests := []struct {
		name  string
		rank  int
		ratio string
		want  model.StatusTier
	}{
		{"top rank low ratio still leads", 3, "0.02", model.TierEcoLeader},
		{"rank 1", 1, "0.50", model.TierEcoLeader},
		{"rank 5 boundary", 5, "0", model.TierEcoLeader},
		{"rank 6 falls through to ratio", 6, "0.50", model.TierActive},
		{"active boundary inclusive", 10, "0.20", model.TierActive},
		{"just under active", 10, "0.1999", model.TierDeveloping},
		{"developing boundary inclusive", 10, "0.10", model.TierDeveloping},
		{"just under developing", 10, "0.0999", model.TierBeginner},
		{"zero ratio", 10, "0", model.TierBeginner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Tier(tt.rank, dec(tt.ratio))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignTiers(t *testing.T) {
	profiles := []model.UserProfile{
		{UserID: 1, Rank: 1, GreenRatio: dec("0.01")},
		{UserID: 2, Rank: 6, GreenRatio: dec("0.35")},
		{UserID: 3, Rank: 7, GreenRatio: dec("0.12")},
		{UserID: 4, Rank: 8, GreenRatio: dec("0.05")},
	}
	rules := StatusRules{LeaderRank: 5, ActiveRatio: dec("0.20"), DevelopingRatio: dec("0.10")}

	AssignTiers(profiles, rules)

	require.Len(t, profiles, 4)
	assert.Equal(t, model.TierEcoLeader, profiles[0].Tier)
	assert.Equal(t, model.TierActive, profiles[1].Tier)
	assert.Equal(t, model.TierDeveloping, profiles[2].Tier)
	assert.Equal(t, model.TierBeginner, profiles[3].Tier)
}

func TestStatusRules_CustomLeaderRank(t *testing.T) {
	rules := StatusRules{LeaderRank: 1, ActiveRatio: dec("0.20"), DevelopingRatio: dec("0.10")}

	assert.Equal(t, model.TierEcoLeader, rules.Tier(1, dec("0")))
	assert.Equal(t, model.TierBeginner, rules.Tier(2, dec("0")))
}
