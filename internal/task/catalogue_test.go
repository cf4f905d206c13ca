package task

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

func TestLoadCatalogue(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "configs/tasks.yaml", []byte(`
tasks:
  - title: Plough the field
    description: Prepare the soil
    type: plough
    points: 10
  - title: Harvest
    type: harvest
    points: 30
`), 0o644))

	cat, fromFile, err := LoadCatalogue(fs, "configs/tasks.yaml")
	require.NoError(t, err)
	assert.True(t, fromFile)

	want := []domain.TaskTemplate{
		{Title: "Plough the field", Description: "Prepare the soil", Type: domain.ToolPlough, Points: 10},
		{Title: "Harvest", Type: domain.ToolHarvest, Points: 30},
	}
	if diff := cmp.Diff(want, cat.Tasks); diff != "" {
		t.Errorf("catalogue mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCatalogue_MissingFileUsesDefault(t *testing.T) {
	cat, fromFile, err := LoadCatalogue(afero.NewMemMapFs(), "nope.yaml")
	require.NoError(t, err)
	assert.False(t, fromFile)
	assert.Equal(t, DefaultCatalogue(), cat)
}

func TestLoadCatalogue_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		wantMsg string
	}{
		{"bad yaml", "tasks: [", nil, ErrMsgParseCatalogue},
		{"empty", "tasks: []", domain.ErrInvalidInput, ""},
		{"unknown type", "tasks:\n  - title: Dig\n    type: dig\n    points: 1", domain.ErrInvalidTool, ""},
		{"negative points", "tasks:\n  - title: Dig\n    type: plough\n    points: -1", domain.ErrInvalidInput, ""},
		{"missing title", "tasks:\n  - type: plough\n    points: 1", domain.ErrInvalidInput, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "tasks.yaml", []byte(tt.body), 0o644))

			_, _, err := LoadCatalogue(fs, "tasks.yaml")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
