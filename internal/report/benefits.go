package report

import (
	"github.com/greenscore-dev/greenscore/internal/model"
)

// Benefit is a partner perk. Cost is an eco-point price; zero means the
// perk comes free with the tier. MinTier gates visibility.
type Benefit struct {
	Name    string           `json:"name"`
	Cost    int64            `json:"cost"`
	MinTier model.StatusTier `json:"min_tier"`
}

// Catalog returns the program's benefit catalog, ordered free first, then
// by rising cost.
func Catalog() []Benefit {
	return []Benefit{
		{Name: "Monthly eco-tips digest", Cost: 0, MinTier: model.TierBeginner},
		{Name: "Personal carbon footprint snapshot", Cost: 0, MinTier: model.TierBeginner},
		{Name: "Green merchant map access", Cost: 0, MinTier: model.TierDeveloping},
		{Name: "Priority support for green services", Cost: 0, MinTier: model.TierActive},
		{Name: "Reusable cup discount voucher", Cost: 5000, MinTier: model.TierDeveloping},
		{Name: "Public transport cashback boost", Cost: 10000, MinTier: model.TierActive},
		{Name: "Partner bike-share month pass", Cost: 25000, MinTier: model.TierActive},
		{Name: "EV charging credit", Cost: 40000, MinTier: model.TierEcoLeader},
		{Name: "Eco-retreat raffle entry", Cost: 60000, MinTier: model.TierEcoLeader},
		{Name: "Tree planting sponsorship in your name", Cost: 100000, MinTier: model.TierEcoLeader},
	}
}

// BenefitStatus splits the catalog visible at a tier for one user.
type BenefitStatus struct {
	Unlocked []Benefit `json:"unlocked"`
	Locked   []Benefit `json:"locked"`
}

// BenefitsFor returns the benefits visible at the user's tier. A benefit
// is unlocked when it is free or the user's GreenScore covers its cost;
// otherwise it shows as locked.
func BenefitsFor(tier model.StatusTier, greenScore int64) BenefitStatus {
	var bs BenefitStatus
	for _, b := range Catalog() {
		if tier.Level() < b.MinTier.Level() {
			continue
		}
		if b.Cost == 0 || greenScore >= b.Cost {
			bs.Unlocked = append(bs.Unlocked, b)
		} else {
			bs.Locked = append(bs.Locked, b)
		}
	}
	return bs
}
