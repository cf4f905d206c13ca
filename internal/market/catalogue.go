package market

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

// DefaultCatalogue is the built-in mandi board used when no catalogue file is present
func DefaultCatalogue() *domain.MarketCatalogue {
	return &domain.MarketCatalogue{
		Prices: []domain.MarketPrice{
			{Crop: "Wheat", CurrentPrice: 2250, Change: 1.2, Demand: domain.DemandHigh, Season: "Rabi", Unit: "quintal", Category: "Grains"},
			{Crop: "Rice", CurrentPrice: 1800, Change: -2.3, Demand: domain.DemandMedium, Season: "Kharif", Unit: "quintal", Category: "Grains"},
			{Crop: "Tomato", CurrentPrice: 45, Change: 15.8, Demand: domain.DemandHigh, Season: "Year round", Unit: "kg", Category: "Vegetables"},
			{Crop: "Onion", CurrentPrice: 25, Change: -8.1, Demand: domain.DemandMedium, Season: "Rabi", Unit: "kg", Category: "Vegetables"},
			{Crop: "Sugarcane", CurrentPrice: 280, Change: 4.5, Demand: domain.DemandLow, Season: "Year round", Unit: "quintal", Category: "Cash Crops"},
			{Crop: "Potato", CurrentPrice: 18, Change: 3.5, Demand: domain.DemandHigh, Season: "Rabi", Unit: "kg", Category: "Vegetables"},
			{Crop: "Mustard", CurrentPrice: 5200, Change: 2.1, Demand: domain.DemandMedium, Season: "Rabi", Unit: "quintal", Category: "Oilseeds"},
			{Crop: "Cotton", CurrentPrice: 6800, Change: -1.8, Demand: domain.DemandLow, Season: "Kharif", Unit: "quintal", Category: "Cash Crops"},
		},
		Listings: []domain.CropListing{
			{ID: "1", Name: "Premium Basmati Rice", Seller: "Singh Farms", Price: 85, Unit: "kg", Quantity: 1000, Quality: "Premium", Rating: 4.8, Reviews: 156, Image: "🌾", Location: "Punjab", Demand: domain.DemandHigh, Category: "Grains"},
			{ID: "2", Name: "Organic Tomatoes", Seller: "Green Valley Farm", Price: 60, Unit: "kg", Quantity: 500, Quality: "Premium", Rating: 4.6, Reviews: 89, Image: "🍅", Location: "Maharashtra", Demand: domain.DemandHigh, Category: "Vegetables"},
			{ID: "3", Name: "Fresh Red Onions", Seller: "Patel Agriculture", Price: 28, Unit: "kg", Quantity: 2000, Quality: "Standard", Rating: 4.3, Reviews: 234, Image: "🧅", Location: "Gujarat", Demand: domain.DemandMedium, Category: "Vegetables"},
			{ID: "4", Name: "Wheat Grain", Seller: "Sharma Agro", Price: 2300, Unit: "quintal", Quantity: 50, Quality: "Standard", Rating: 4.5, Reviews: 78, Image: "🌾", Location: "Haryana", Demand: domain.DemandHigh, Category: "Grains"},
		},
		Trends: []domain.MarketTrend{
			{Category: "Vegetables", Trend: "up", Percentage: 12.5},
			{Category: "Grains", Trend: "down", Percentage: 3.2},
			{Category: "Pulses", Trend: "up", Percentage: 8.7},
			{Category: "Oilseeds", Trend: "down", Percentage: 5.1},
		},
	}
}

// LoadCatalogue reads a YAML market catalogue. A missing file yields the default catalogue.
func LoadCatalogue(fsys afero.Fs, path string) (*domain.MarketCatalogue, bool, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultCatalogue(), false, nil
		}
		return nil, false, fmt.Errorf("%s %s: %w", ErrMsgReadCatalogue, path, err)
	}

	var cat domain.MarketCatalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, false, fmt.Errorf("%s %s: %w", ErrMsgParseCatalogue, path, err)
	}
	if err := validateCatalogue(&cat); err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}
	return &cat, true, nil
}

func validateCatalogue(cat *domain.MarketCatalogue) error {
	for i, p := range cat.Prices {
		if strings.TrimSpace(p.Crop) == "" {
			return fmt.Errorf("%w: price %d has no crop", domain.ErrInvalidInput, i)
		}
		if !p.Demand.Valid() {
			return fmt.Errorf("%w: crop %q has demand %q", domain.ErrInvalidInput, p.Crop, p.Demand)
		}
	}
	seen := make(map[string]struct{}, len(cat.Listings))
	for i, l := range cat.Listings {
		if l.ID == "" {
			return fmt.Errorf("%w: listing %d has no id", domain.ErrInvalidInput, i)
		}
		if _, dup := seen[l.ID]; dup {
			return fmt.Errorf("%w: duplicate listing id %q", domain.ErrInvalidInput, l.ID)
		}
		seen[l.ID] = struct{}{}
		if !l.Demand.Valid() {
			return fmt.Errorf("%w: listing %q has demand %q", domain.ErrInvalidInput, l.ID, l.Demand)
		}
	}
	for _, t := range cat.Trends {
		if t.Trend != "up" && t.Trend != "down" {
			return fmt.Errorf("%w: trend for %q is %q", domain.ErrInvalidInput, t.Category, t.Trend)
		}
	}
	return nil
}
