package farm

import (
	"math"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

// computeProgress counts how many tiles have reached each milestone stage
func computeProgress(tiles []domain.FieldTile) domain.FieldProgress {
	p := domain.FieldProgress{Total: len(tiles)}
	for _, t := range tiles {
		rank := t.Type.Rank()
		if rank >= domain.TileSoil.Rank() {
			p.Ploughed++
		}
		if rank >= domain.TilePlanted.Rank() {
			p.Planted++
		}
		if rank >= domain.TileWatered.Rank() {
			p.Watered++
		}
		if t.Type == domain.TileHarvested {
			p.Harvested++
		}
	}
	if p.Total > 0 {
		p.PercentComplete = int(math.Round(float64(p.Harvested) / float64(p.Total) * 100))
	}
	return p
}
