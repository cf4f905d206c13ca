package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/krishiquest/KrishiQuest_Go/internal/config"
	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/market"
	"github.com/krishiquest/KrishiQuest_Go/internal/task"
)

// Catalogues is the static game data read at startup
type Catalogues struct {
	Tasks  *domain.TaskCatalogue
	Market *domain.MarketCatalogue
}

// LoadCatalogues reads the task and market catalogues. A missing file falls
// back to the built-in defaults; a malformed one is an error.
func LoadCatalogues(fsys afero.Fs, cfg *config.Config) (*Catalogues, error) {
	tasks, fromFile, err := task.LoadCatalogue(fsys, cfg.TaskCataloguePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadTasks, err)
	}
	logCatalogue(CatalogueTasks, cfg.TaskCataloguePath, fromFile, len(tasks.Tasks))

	mkt, fromFile, err := market.LoadCatalogue(fsys, cfg.MarketCataloguePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadMarket, err)
	}
	logCatalogue(CatalogueMarket, cfg.MarketCataloguePath, fromFile, len(mkt.Prices))

	return &Catalogues{Tasks: tasks, Market: mkt}, nil
}

func logCatalogue(name, path string, fromFile bool, entries int) {
	if !fromFile {
		slog.Warn(LogMsgCatalogueDefaultUsed, "catalogue", name, "path", path)
		return
	}
	slog.Info(LogMsgCatalogueLoaded, "catalogue", name, "path", path, "entries", entries)
}
