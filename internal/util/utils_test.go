package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/domain"
)

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 5, ParseIntDefault("", 5))
	assert.Equal(t, 5, ParseIntDefault("x", 5))
	assert.Equal(t, 12, ParseIntDefault("12", 5))
	assert.Equal(t, -1, ParseIntDefault("-1", 5))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42", "order")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, in := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := ParseID(in, "order")
		require.ErrorIs(t, err, domain.ErrValidation, in)
		assert.Equal(t, "Invalid order id", domain.Message(err))
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset int
		wantLimit  int
	}{
		{"no size", 3, 0, 0, 0},
		{"negative size", 2, -5, 0, 0},
		{"first page", 1, 10, 0, 10},
		{"page zero", 0, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"clamped", 2, 500, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := Window(tt.page, tt.size, 100)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
