package usecase

import (
	"fmt"

	"github.com/macrotally/backend/internal/domain"
)

// Targets holds the daily nutritional thresholds the advisor evaluates
// against. These are domain-tunable configuration, not derived values.
type Targets struct {
	ProteinTargetG            float64
	NetCarbMaxG               float64
	NetCarbMinG               float64
	MinItemsForProteinWarning int
}

// DefaultTargets returns the built-in daily thresholds.
func DefaultTargets() Targets {
	return Targets{
		ProteinTargetG:            145,
		NetCarbMaxG:               40,
		NetCarbMinG:               30,
		MinItemsForProteinWarning: 2,
	}
}

// Advisory codes.
const (
	AdviceProteinLow  = "protein_low"
	AdviceNetCarbHigh = "net_carbs_high"
	AdviceNetCarbLow  = "net_carbs_low"
)

// Aggregate sums the resolved items into a day's totals. Fields are summed
// raw and rounded once at the end, never per-item, so repeated aggregation
// cannot drift.
func Aggregate(items []domain.ResolvedItem) domain.DailyTotals {
	var sum domain.NutrientProfile
	for _, item := range items {
		sum = sum.Add(item.Nutrients)
	}

	totals := domain.DailyTotals{
		NutrientProfile: RoundProfile(sum),
		ItemCount:       len(items),
	}
	totals.NetCarbs = NetCarbs(totals.NutrientProfile)
	return totals
}

// NetCarbs is total carbohydrate minus dietary fiber, clamped at zero.
func NetCarbs(p domain.NutrientProfile) float64 {
	net := p.Carbs - p.Fiber
	if net < 0 {
		return 0
	}
	return roundTenth(net)
}

// Advise evaluates the day's totals against the configured thresholds. Zero,
// one, or more advisories may fire concurrently.
func Advise(totals domain.DailyTotals, cfg Targets) []domain.Advisory {
	var advisories []domain.Advisory

	// Protein check only kicks in once enough items are logged; a partially
	// logged day would otherwise always alarm.
	if totals.Protein < cfg.ProteinTargetG && totals.ItemCount > cfg.MinItemsForProteinWarning {
		deficit := roundTenth(cfg.ProteinTargetG - totals.Protein)
		advisories = append(advisories, domain.Advisory{
			Code:    AdviceProteinLow,
			Message: fmt.Sprintf("protein is %.1fg below the %.0fg daily target", deficit, cfg.ProteinTargetG),
			Amount:  deficit,
		})
	}

	net := totals.NetCarbs
	if net > cfg.NetCarbMaxG {
		excess := roundTenth(net - cfg.NetCarbMaxG)
		advisories = append(advisories, domain.Advisory{
			Code:    AdviceNetCarbHigh,
			Message: fmt.Sprintf("net carbs are %.1fg over the %.0fg upper bound", excess, cfg.NetCarbMaxG),
			Amount:  excess,
		})
	}
	// Lower-bound check only applies once some carbs are logged at all, to
	// avoid warning on an empty day.
	if net > 0 && net < cfg.NetCarbMinG {
		deficit := roundTenth(cfg.NetCarbMinG - net)
		advisories = append(advisories, domain.Advisory{
			Code:    AdviceNetCarbLow,
			Message: fmt.Sprintf("net carbs are %.1fg under the %.0fg lower bound", deficit, cfg.NetCarbMinG),
			Amount:  deficit,
		})
	}

	return advisories
}
