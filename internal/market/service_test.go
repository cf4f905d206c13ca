package market

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

func crops(prices []domain.MarketPrice) []string {
	out := make([]string, len(prices))
	for i, p := range prices {
		out[i] = p.Crop
	}
	return out
}

func TestFilterPrices(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		query domain.MarketQuery
		want  []string
	}{
		{"no filter", domain.MarketQuery{}, []string{"Wheat", "Rice", "Tomato", "Onion", "Sugarcane", "Potato", "Mustard", "Cotton"}},
		{"all means no filter", domain.MarketQuery{Category: "All", Demand: "All"}, []string{"Wheat", "Rice", "Tomato", "Onion", "Sugarcane", "Potato", "Mustard", "Cotton"}},
		{"substring case insensitive", domain.MarketQuery{Search: "TO"}, []string{"Tomato", "Potato", "Cotton"}},
		{"category", domain.MarketQuery{Category: "Grains"}, []string{"Wheat", "Rice"}},
		{"demand", domain.MarketQuery{Demand: "Low"}, []string{"Sugarcane", "Cotton"}},
		{"filters combine", domain.MarketQuery{Search: "o", Category: "Vegetables", Demand: "High"}, []string{"Tomato", "Potato"}},
		{"fuzzy fallback", domain.MarketQuery{Search: "wheet"}, []string{"Wheat"}},
		{"fuzzy respects facets", domain.MarketQuery{Search: "wheet", Category: "Vegetables"}, []string{}},
		{"no match", domain.MarketQuery{Search: "banana"}, []string{}},
		{"short terms skip fuzzy", domain.MarketQuery{Search: "xq"}, []string{}},
		{"unknown category", domain.MarketQuery{Category: "Fruits"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := crops(svc.FilterPrices(ctx, tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterPrices mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterListings(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	got := svc.FilterListings(ctx, domain.MarketQuery{Search: "rice"})
	require.Len(t, got, 1)
	assert.Equal(t, "Premium Basmati Rice", got[0].Name)

	got = svc.FilterListings(ctx, domain.MarketQuery{Search: "onoins"})
	require.Len(t, got, 1, "fuzzy match on a word of the listing name")
	assert.Equal(t, "3", got[0].ID)

	got = svc.FilterListings(ctx, domain.MarketQuery{Category: "Grains", Demand: "High"})
	assert.Len(t, got, 2)

	got = svc.FilterListings(ctx, domain.MarketQuery{Demand: "Low"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestCategories(t *testing.T) {
	svc := NewService(nil)
	want := []string{"All", "Grains", "Vegetables", "Cash Crops", "Oilseeds"}
	if diff := cmp.Diff(want, svc.Categories(context.Background())); diff != "" {
		t.Errorf("Categories mismatch (-want +got):\n%s", diff)
	}
}

func TestDemandStats(t *testing.T) {
	svc := NewService(nil)
	stats := svc.DemandStats(context.Background())

	assert.Equal(t, domain.DemandStats{High: 3, Medium: 3, Low: 2, Total: 8}, stats)
	assert.Equal(t, stats.Total, stats.High+stats.Medium+stats.Low)
}

func TestTrends_ReturnsCopy(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	trends := svc.Trends(ctx)
	require.Len(t, trends, 4)
	trends[0].Percentage = 99

	assert.Equal(t, 12.5, svc.Trends(ctx)[0].Percentage)
}

func TestNewService_CustomCatalogue(t *testing.T) {
	svc := NewService(&domain.MarketCatalogue{
		Prices: []domain.MarketPrice{{Crop: "Millet", Demand: domain.DemandHigh, Category: "Grains"}},
	})
	ctx := context.Background()

	assert.Equal(t, []string{"All", "Grains"}, svc.Categories(ctx))
	assert.Equal(t, 1, svc.DemandStats(ctx).Total)
	assert.Empty(t, svc.FilterListings(ctx, domain.MarketQuery{}))
}
