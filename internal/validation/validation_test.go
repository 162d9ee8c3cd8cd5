package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/blogdb/internal/models"
)

type sample struct {
	Name      string `validate:"required"`
	ID        int    `validate:"required_without=Alias"`
	Alias     string `validate:"required_without=ID"`
	Direction string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		in        sample
		wantField string
		wantMsg   string
	}{
		{"valid", sample{Name: "n", ID: 1}, "", ""},
		{"valid by alias", sample{Name: "n", Alias: "a", Direction: "desc"}, "", ""},
		{"missing name", sample{ID: 1}, "Name", "name is required"},
		{"missing selector", sample{Name: "n"}, "ID", "id is required when alias is not set"},
		{"bad direction", sample{Name: "n", ID: 1, Direction: "up"}, "Direction", "direction must be one of: asc, desc"},
		{"negative limit", sample{Name: "n", ID: 1, Limit: -1}, "Limit", "limit must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrValidation))
			field, ok := Field(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestStructRejectsNonStruct(t *testing.T) {
	err := Struct("not a struct")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
	_, ok := Field(err)
	assert.False(t, ok)
}
