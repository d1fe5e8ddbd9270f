package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/macrotally/backend/internal/domain"
	"github.com/macrotally/backend/internal/infrastructure/fdc"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// ResolverConfig holds configuration for the item resolver
type ResolverConfig struct {
	CacheTTL    time.Duration
	Parallelism int
}

// Resolver turns a parsed food item into a fully quantified resolved item:
// custom-food shortcut, candidate search and selection, mass resolution,
// nutrient scaling.
type Resolver struct {
	lookup      domain.FoodLookup
	customs     domain.CustomFoodStore
	cache       domain.CacheRepository
	cacheTTL    time.Duration
	parallelism int
}

// NewResolver creates a resolver with its collaborators and configuration.
func NewResolver(
	lookup domain.FoodLookup,
	customs domain.CustomFoodStore,
	cache domain.CacheRepository,
	config ResolverConfig,
) *Resolver {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 720 * time.Hour // nutrient data is effectively static
	}

	parallelism := config.Parallelism
	if parallelism <= 0 {
		parallelism = 4
	}

	return &Resolver{
		lookup:      lookup,
		customs:     customs,
		cache:       cache,
		cacheTTL:    cacheTTL,
		parallelism: parallelism,
	}
}

// lookupResult is the memoized outcome of one search phrase: the chosen
// food's per-100g profile plus whatever serving-size mass the detail record
// stated. Found=false records a "no usable candidate" outcome, which is a
// valid result, not an error.
type lookupResult struct {
	Found        bool
	Description  string
	Per100       domain.NutrientProfile
	ServingGrams float64 // one stated serving in grams; 0 when not a mass unit
}

// ResolveBatch resolves items concurrently with bounded parallelism. The
// result slice preserves input order regardless of completion order. Any
// failed outbound call fails the whole batch; unmatched items do not.
func (r *Resolver) ResolveBatch(ctx context.Context, items []domain.ParsedItem) ([]domain.ResolvedItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	resolved := make([]domain.ResolvedItem, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i, item := range items {
		g.Go(func() error {
			out, err := r.ResolveItem(ctx, item)
			if err != nil {
				return err
			}
			resolved[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return resolved, nil
}

// ResolveItem resolves a single parsed item.
// Flow: custom-food match -> search -> pick best -> detail -> mass -> scale.
func (r *Resolver) ResolveItem(ctx context.Context, item domain.ParsedItem) (domain.ResolvedItem, error) {
	if strings.TrimSpace(item.Query) == "" {
		return domain.ResolvedItem{}, domain.ErrInvalidItem
	}

	// Custom foods bypass the external lookup entirely. The stored profile
	// is per serving, so it scales by count, not mass.
	if custom := r.customs.Match(itemText(item)); custom != nil {
		count := item.Count()
		return domain.ResolvedItem{
			Name:      displayName(item),
			Nutrients: RoundProfile(scaleByFactor(custom.Nutrients, count)),
			Source:    domain.SourceCustom,
		}, nil
	}

	result, err := r.lookupPer100(ctx, item.Query)
	if err != nil {
		return domain.ResolvedItem{}, err
	}

	// A silent degraded result: the item logs as zero of everything with an
	// explanatory tag, and the batch continues.
	if !result.Found {
		return domain.ResolvedItem{
			Name:   displayName(item),
			Source: domain.SourceUnmatched,
		}, nil
	}

	grams := resolveMass(item, result.ServingGrams)
	return domain.ResolvedItem{
		Name:      displayName(item),
		Grams:     grams,
		Nutrients: Scale(result.Per100, grams),
		Source:    domain.SourceMatched,
	}, nil
}

// resolveMass determines the item's mass in grams. Precedence: explicit
// grams, then unit conversion, then the detail record's serving size when it
// was stated in a mass unit, then the lexical estimator as last resort.
func resolveMass(item domain.ParsedItem, servingGrams float64) float64 {
	if item.ExplicitGrams != nil && isFinitePositive(*item.ExplicitGrams) {
		return *item.ExplicitGrams
	}
	if item.Unit != "" {
		if grams := ToGrams(item.Count(), item.Unit); grams > 0 {
			return grams
		}
	}
	if servingGrams > 0 {
		return servingGrams * item.Count()
	}
	return EstimateGrams(item)
}

// lookupPer100 runs search -> select -> detail -> extract for a search
// phrase, memoized on the normalized phrase so repeated foods skip the
// round trips without changing observable results.
func (r *Resolver) lookupPer100(ctx context.Context, query string) (*lookupResult, error) {
	cacheKey := "food:" + normalizeQuery(query)
	if value, err := r.cache.Get(ctx, cacheKey); err == nil {
		if cached, ok := value.(*lookupResult); ok {
			return cached, nil
		}
	}

	candidates, err := r.lookup.SearchFoods(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailure, err)
	}

	result := &lookupResult{}
	if best := PickBest(candidates); best != nil {
		detail, err := r.lookup.GetFoodDetail(ctx, best.FdcID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailure, err)
		}

		// A candidate whose detail carries no nutrient entries is as good as
		// no candidate at all.
		if len(detail.Nutrients) > 0 {
			result.Found = true
			result.Description = detail.Description
			result.Per100 = fdc.ExtractPer100g(detail)
			result.ServingGrams = ToGrams(detail.ServingSize, detail.ServingSizeUnit)
		}
	}

	if err := r.cache.Set(ctx, cacheKey, result, r.cacheTTL); err != nil {
		log.Printf("[RESOLVE] cache write failed for %q: %v", cacheKey, err)
	}

	return result, nil
}

// itemText is the text used for custom-food matching.
func itemText(item domain.ParsedItem) string {
	if item.Name != "" {
		return item.Name
	}
	return item.Query
}

// displayName prefers the extracted name over the search phrase.
func displayName(item domain.ParsedItem) string {
	if item.Name != "" {
		return item.Name
	}
	return item.Query
}

// normalizeQuery normalizes a search phrase for use as a memoization key:
// lowercase, strip special characters, collapse whitespace.
func normalizeQuery(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

func scaleByFactor(p domain.NutrientProfile, factor float64) domain.NutrientProfile {
	return domain.NutrientProfile{
		Calories:  p.Calories * factor,
		Protein:   p.Protein * factor,
		Fat:       p.Fat * factor,
		Carbs:     p.Carbs * factor,
		Fiber:     p.Fiber * factor,
		Sodium:    p.Sodium * factor,
		Potassium: p.Potassium * factor,
		Magnesium: p.Magnesium * factor,
	}
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
