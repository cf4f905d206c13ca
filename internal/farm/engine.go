package farm

import "github.com/krishiquest/KrishiQuest_Go/internal/domain"

// Transition is one row of the tool-and-stage table
type Transition struct {
	From            domain.TileType
	Tool            domain.Tool
	To              domain.TileType
	SchedulesGrowth bool
}

type transitionKey struct {
	from domain.TileType
	tool domain.Tool
}

// transitions is the complete set of tool-driven moves. Pairs not listed are no-ops.
var transitions = map[transitionKey]Transition{
	{domain.TileEmpty, domain.ToolPlough}:  {From: domain.TileEmpty, Tool: domain.ToolPlough, To: domain.TileSoil},
	{domain.TileSoil, domain.ToolSow}:      {From: domain.TileSoil, Tool: domain.ToolSow, To: domain.TilePlanted},
	{domain.TilePlanted, domain.ToolWater}: {From: domain.TilePlanted, Tool: domain.ToolWater, To: domain.TileWatered, SchedulesGrowth: true},
	{domain.TileGrown, domain.ToolHarvest}: {From: domain.TileGrown, Tool: domain.ToolHarvest, To: domain.TileHarvested},
}

// GrowthTransition is the automatic step taken when a growth timer fires
var GrowthTransition = Transition{From: domain.TileWatered, To: domain.TileGrown}

// NextStage looks up what applying tool to a tile at current does
func NextStage(current domain.TileType, tool domain.Tool) (Transition, bool) {
	t, ok := transitions[transitionKey{from: current, tool: tool}]
	return t, ok
}

// Transitions returns every tool-driven row in growth order
func Transitions() []Transition {
	out := make([]Transition, 0, len(transitions))
	for _, stage := range domain.TileStages {
		for _, tool := range domain.Tools {
			if t, ok := transitions[transitionKey{from: stage, tool: tool}]; ok {
				out = append(out, t)
			}
		}
	}
	return out
}
