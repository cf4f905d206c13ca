// Package market serves the mandi price board and crop listings.
package market

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// Service defines the marketplace read surface
type Service interface {
	FilterPrices(ctx context.Context, q domain.MarketQuery) []domain.MarketPrice
	FilterListings(ctx context.Context, q domain.MarketQuery) []domain.CropListing
	Categories(ctx context.Context) []string
	DemandStats(ctx context.Context) domain.DemandStats
	Trends(ctx context.Context) []domain.MarketTrend
}

type service struct {
	catalogue *domain.MarketCatalogue
}

// NewService creates a marketplace over a loaded catalogue. A nil catalogue uses the default one.
func NewService(catalogue *domain.MarketCatalogue) Service {
	if catalogue == nil {
		catalogue = DefaultCatalogue()
	}
	return &service{catalogue: catalogue}
}

func (s *service) FilterPrices(ctx context.Context, q domain.MarketQuery) []domain.MarketPrice {
	candidates := make([]domain.MarketPrice, 0, len(s.catalogue.Prices))
	names := make([]string, 0, len(s.catalogue.Prices))
	for _, p := range s.catalogue.Prices {
		if matchesFacet(q.Category, p.Category) && matchesFacet(q.Demand, string(p.Demand)) {
			candidates = append(candidates, p)
			names = append(names, p.Crop)
		}
	}
	return pick(candidates, search(ctx, q.Search, names))
}

func (s *service) FilterListings(ctx context.Context, q domain.MarketQuery) []domain.CropListing {
	candidates := make([]domain.CropListing, 0, len(s.catalogue.Listings))
	names := make([]string, 0, len(s.catalogue.Listings))
	for _, l := range s.catalogue.Listings {
		if matchesFacet(q.Category, l.Category) && matchesFacet(q.Demand, string(l.Demand)) {
			candidates = append(candidates, l)
			names = append(names, l.Name)
		}
	}
	return pick(candidates, search(ctx, q.Search, names))
}

func (s *service) Categories(_ context.Context) []string {
	out := []string{domain.FilterAll}
	seen := make(map[string]struct{})
	for _, p := range s.catalogue.Prices {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (s *service) DemandStats(_ context.Context) domain.DemandStats {
	stats := domain.DemandStats{Total: len(s.catalogue.Prices)}
	for _, p := range s.catalogue.Prices {
		switch p.Demand {
		case domain.DemandHigh:
			stats.High++
		case domain.DemandMedium:
			stats.Medium++
		case domain.DemandLow:
			stats.Low++
		}
	}
	return stats
}

func (s *service) Trends(_ context.Context) []domain.MarketTrend {
	return append([]domain.MarketTrend{}, s.catalogue.Trends...)
}

// matchesFacet treats an empty or "All" filter as matching everything
func matchesFacet(filter, value string) bool {
	return filter == "" || filter == domain.FilterAll || filter == value
}

// search returns the indexes of names matching term. Substring matches win;
// the fuzzy pass only runs when none exist.
func search(ctx context.Context, term string, names []string) []int {
	term = strings.ToLower(strings.TrimSpace(term))
	idx := make([]int, 0, len(names))
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), term) {
			idx = append(idx, i)
		}
	}
	if len(idx) > 0 || len([]rune(term)) < MinFuzzyLength {
		return idx
	}

	for i, name := range names {
		if fuzzyMatch(term, name) {
			idx = append(idx, i)
		}
	}
	if len(idx) > 0 {
		logger.FromContext(ctx).Debug(LogMsgFuzzyFallback, "search", term, "matches", len(idx))
	}
	return idx
}

// fuzzyMatch reports whether term is within MaxFuzzyDistance of any word in name
func fuzzyMatch(term, name string) bool {
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if levenshtein.ComputeDistance(term, word) <= MaxFuzzyDistance {
			return true
		}
	}
	return false
}

func pick[T any](items []T, idx []int) []T {
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}
