package domain

import "time"

// TileType is the growth stage of a single field tile
type TileType string

// Tile stages, in the only order a tile may advance through them
const (
	TileEmpty     TileType = "empty"
	TileSoil      TileType = "soil"
	TilePlanted   TileType = "planted"
	TileWatered   TileType = "watered"
	TileGrown     TileType = "grown"
	TileHarvested TileType = "harvested"
)

// TileStages lists every stage in growth order
var TileStages = []TileType{TileEmpty, TileSoil, TilePlanted, TileWatered, TileGrown, TileHarvested}

// Rank returns the position of the stage in the growth sequence, or -1 if unknown
func (t TileType) Rank() int {
	for i, s := range TileStages {
		if s == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is a known stage
func (t TileType) Valid() bool {
	return t.Rank() >= 0
}

// Tool is the farming action a player has armed
type Tool string

const (
	ToolPlough  Tool = "plough"
	ToolSow     Tool = "sow"
	ToolWater   Tool = "water"
	ToolHarvest Tool = "harvest"
)

// Tools lists the selectable tools in display order
var Tools = []Tool{ToolPlough, ToolSow, ToolWater, ToolHarvest}

// DefaultTool is armed for a player who has not picked one yet
const DefaultTool = ToolPlough

// Valid reports whether t is a known tool
func (t Tool) Valid() bool {
	for _, known := range Tools {
		if known == t {
			return true
		}
	}
	return false
}

// FieldTile is one cell of the farming grid. X and Y never change after creation.
type FieldTile struct {
	ID   string   `json:"id"`
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Type TileType `json:"type"`
}

// Field is a player's scanned farm
type Field struct {
	ID            string      `json:"id"`
	PlayerID      string      `json:"player_id"`
	Tiles         []FieldTile `json:"tiles"`
	MoistureLevel int         `json:"moisture_level"`
	SoilCondition string      `json:"soil_condition"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Tile returns the tile with the given id
func (f *Field) Tile(tileID string) (*FieldTile, bool) {
	for i := range f.Tiles {
		if f.Tiles[i].ID == tileID {
			return &f.Tiles[i], true
		}
	}
	return nil, false
}

// ScanRequest carries what the field scanner reports about a new field
type ScanRequest struct {
	PlayerID      string
	Width         int
	Height        int
	MoistureLevel int
	SoilCondition string
}

// FieldProgress summarises how far a field has advanced.
// Counts are cumulative: a harvested tile is also counted as ploughed, planted and watered.
type FieldProgress struct {
	Ploughed        int `json:"ploughed"`
	Planted         int `json:"planted"`
	Watered         int `json:"watered"`
	Harvested       int `json:"harvested"`
	Total           int `json:"total"`
	PercentComplete int `json:"percent_complete"`
}

// Selection is the per-session UI state: armed tool and highlighted tile
type Selection struct {
	Tool           Tool   `json:"tool"`
	SelectedTileID string `json:"selected_tile_id,omitempty"`
}

// ClickResult describes what a tile click did
type ClickResult struct {
	Tile          FieldTile `json:"tile"`
	Tool          Tool      `json:"tool"`
	Selected      bool      `json:"selected"`
	Changed       bool      `json:"changed"`
	PreviousType  TileType  `json:"previous_type"`
	GrowthPending bool      `json:"growth_pending"`
	CompletedTask *Task     `json:"completed_task,omitempty"`
	Notification  string    `json:"notification,omitempty"`
}
