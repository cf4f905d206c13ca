package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toolStruct struct {
	Tool string `validate:"required,tool"`
}

func TestValidator_ToolValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		tool    string
		wantErr bool
	}{
		{"plough", "plough", false},
		{"sow", "sow", false},
		{"water", "water", false},
		{"harvest", "harvest", false},
		{"empty", "", true},
		{"unknown", "dig", true},
		{"case sensitive", "Plough", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(toolStruct{Tool: tt.tool})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(ScanFieldRequest{Width: 0, Height: 40})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["player_id"])
	assert.Equal(t, "Must be at least 1", fields["width"])
	assert.Equal(t, "Must be at most 32", fields["height"])

	err = v.ValidateStruct(SelectToolRequest{PlayerID: "p1", Tool: "rake"})
	require.Error(t, err)
	assert.Equal(t, "Invalid tool", FormatValidationError(err)["tool"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}

func TestFormatValidationError_UsesWireNames(t *testing.T) {
	err := GetValidator().ValidateStruct(ScanFieldRequest{PlayerID: "p1", Width: 4, Height: 4, MoistureLevel: 140})
	require.Error(t, err)

	assert.Equal(t, map[string]string{"moisture_level": "Must be at most 100"}, FormatValidationError(err))
}
