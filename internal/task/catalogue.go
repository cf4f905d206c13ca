package task

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

// DefaultCatalogue is used when no catalogue file is configured or present
func DefaultCatalogue() *domain.TaskCatalogue {
	return &domain.TaskCatalogue{Tasks: []domain.TaskTemplate{
		{Title: "Plough your first tile", Description: "Turn an empty tile into soil", Type: domain.ToolPlough, Points: 10},
		{Title: "Plant wheat seeds", Description: "Sow seeds in ploughed soil", Type: domain.ToolSow, Points: 15},
		{Title: "Water the crops", Description: "Water a planted tile and watch it grow", Type: domain.ToolWater, Points: 10},
		{Title: "Harvest the wheat", Description: "Collect a grown crop", Type: domain.ToolHarvest, Points: 25},
	}}
}

// LoadCatalogue reads a YAML task catalogue. A missing file yields the default catalogue.
func LoadCatalogue(fsys afero.Fs, path string) (*domain.TaskCatalogue, bool, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultCatalogue(), false, nil
		}
		return nil, false, fmt.Errorf("%s %s: %w", ErrMsgReadCatalogue, path, err)
	}

	var cat domain.TaskCatalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, false, fmt.Errorf("%s %s: %w", ErrMsgParseCatalogue, path, err)
	}
	if err := validateCatalogue(&cat); err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}
	return &cat, true, nil
}

func validateCatalogue(cat *domain.TaskCatalogue) error {
	if len(cat.Tasks) == 0 {
		return fmt.Errorf("%w: catalogue has no tasks", domain.ErrInvalidInput)
	}
	for i, t := range cat.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("%w: task %d has no title", domain.ErrInvalidInput, i)
		}
		if !t.Type.Valid() {
			return fmt.Errorf("%w: task %q has type %q", domain.ErrInvalidTool, t.Title, t.Type)
		}
		if t.Points < 0 {
			return fmt.Errorf("%w: task %q has negative points", domain.ErrInvalidInput, t.Title)
		}
	}
	return nil
}
