package domain

// Demand level for a crop
type Demand string

const (
	DemandHigh   Demand = "High"
	DemandMedium Demand = "Medium"
	DemandLow    Demand = "Low"
)

// Valid reports whether d is a known demand level
func (d Demand) Valid() bool {
	switch d {
	case DemandHigh, DemandMedium, DemandLow:
		return true
	}
	return false
}

// FilterAll disables a marketplace filter
const FilterAll = "All"

// MarketPrice is one row of the mandi price board
type MarketPrice struct {
	Crop         string  `yaml:"crop" json:"crop"`
	CurrentPrice float64 `yaml:"current_price" json:"current_price"`
	Change       float64 `yaml:"change" json:"change"`
	Demand       Demand  `yaml:"demand" json:"demand"`
	Season       string  `yaml:"season" json:"season"`
	Unit         string  `yaml:"unit" json:"unit"`
	Category     string  `yaml:"category" json:"category"`
}

// CropListing is a seller's offer in the buy/sell tab
type CropListing struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Seller   string  `yaml:"seller" json:"seller"`
	Price    float64 `yaml:"price" json:"price"`
	Unit     string  `yaml:"unit" json:"unit"`
	Quantity int     `yaml:"quantity" json:"quantity"`
	Quality  string  `yaml:"quality" json:"quality"`
	Rating   float64 `yaml:"rating" json:"rating"`
	Reviews  int     `yaml:"reviews" json:"reviews"`
	Image    string  `yaml:"image" json:"image"`
	Location string  `yaml:"location" json:"location"`
	Demand   Demand  `yaml:"demand" json:"demand"`
	Category string  `yaml:"category" json:"category"`
}

// MarketTrend is the weekly movement of a category
type MarketTrend struct {
	Category   string  `yaml:"category" json:"category"`
	Trend      string  `yaml:"trend" json:"trend"`
	Percentage float64 `yaml:"percentage" json:"percentage"`
}

// MarketCatalogue is the on-disk marketplace data
type MarketCatalogue struct {
	Prices   []MarketPrice `yaml:"prices" json:"prices"`
	Listings []CropListing `yaml:"listings" json:"listings"`
	Trends   []MarketTrend `yaml:"trends" json:"trends"`
}

// MarketQuery filters price board entries and listings
type MarketQuery struct {
	Search   string
	Category string
	Demand   string
}

// DemandStats counts price board entries per demand level
type DemandStats struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}
