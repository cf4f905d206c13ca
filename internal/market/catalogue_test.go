package market

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

func TestLoadCatalogue(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "configs/market.yaml", []byte(`
prices:
  - crop: Millet
    current_price: 2100
    change: -0.5
    demand: Medium
    season: Kharif
    unit: quintal
    category: Grains
listings:
  - id: m1
    name: Pearl Millet
    seller: Rao Farms
    price: 24
    unit: kg
    quantity: 300
    quality: Standard
    demand: Medium
    category: Grains
trends:
  - category: Grains
    trend: up
    percentage: 1.5
`), 0o644))

	cat, fromFile, err := LoadCatalogue(fs, "configs/market.yaml")
	require.NoError(t, err)
	assert.True(t, fromFile)
	require.Len(t, cat.Prices, 1)
	assert.Equal(t, 2100.0, cat.Prices[0].CurrentPrice)
	assert.Equal(t, domain.DemandMedium, cat.Prices[0].Demand)
	require.Len(t, cat.Listings, 1)
	assert.Equal(t, 300, cat.Listings[0].Quantity)
	assert.Equal(t, "up", cat.Trends[0].Trend)
}

func TestLoadCatalogue_MissingFileUsesDefault(t *testing.T) {
	cat, fromFile, err := LoadCatalogue(afero.NewMemMapFs(), "configs/market.yaml")
	require.NoError(t, err)
	assert.False(t, fromFile)
	assert.Len(t, cat.Prices, 8)
	assert.Len(t, cat.Listings, 4)
}

func TestLoadCatalogue_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing crop", "prices:\n  - demand: High"},
		{"bad demand", "prices:\n  - crop: Wheat\n    demand: Extreme"},
		{"listing without id", "listings:\n  - name: Rice\n    demand: High"},
		{"duplicate listing", "listings:\n  - id: a\n    demand: High\n  - id: a\n    demand: Low"},
		{"bad trend", "trends:\n  - category: Grains\n    trend: sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "m.yaml", []byte(tt.body), 0o644))

			_, _, err := LoadCatalogue(fs, "m.yaml")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	t.Run("bad yaml", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "m.yaml", []byte("prices: ["), 0o644))
		_, _, err := LoadCatalogue(fs, "m.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgParseCatalogue)
	})
}

func TestDefaultCatalogue_Valid(t *testing.T) {
	assert.NoError(t, validateCatalogue(DefaultCatalogue()))
}
