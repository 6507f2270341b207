package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntityName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "product", false},
		{"snake case", "product_item", false},
		{"leading underscore", "_tmp", false},
		{"mixed case", "OrderLine", false},
		{"empty", "", true},
		{"leading digit", "1product", true},
		{"space", "product item", true},
		{"injection", "product; DROP", true},
		{"path separator", "../product", true},
		{"dash", "order-line", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntityName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidationFailed))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateBaseClass(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"identifier", "EntityMigration", false},
		{"qualified", "migrate.EntityMigration", false},
		{"empty", "", true},
		{"leading digit", "1Base", true},
		{"keyword", "type", true},
		{"empty segment", "migrate..Base", true},
		{"trailing dot", "migrate.", true},
		{"pointer", "*Base", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseClass(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateFieldTypes(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		require.NoError(t, ValidateFieldTypes([]string{"string", "Int", "date_time"}))
	})

	t.Run("empty list is valid", func(t *testing.T) {
		require.NoError(t, ValidateFieldTypes(nil))
	})

	t.Run("reports offending type", func(t *testing.T) {
		err := ValidateFieldTypes([]string{"string", "var char"})
		require.Error(t, err)

		var valErr *ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "var char", valErr.Value)
		assert.Equal(t, "field type", valErr.Field)
	})
}
