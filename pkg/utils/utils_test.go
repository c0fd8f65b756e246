package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		date, err := ParseDate("2026-08-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("empty yields zero time", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01/08/2026")
		assert.Error(t, err)
	})
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 53.33, RoundWithTwoDecimalPlace(53.3333333))
	assert.Equal(t, 11.75, RoundWithTwoDecimalPlace(11.754999))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3.0, Clamp(17, -3, 3))
	assert.Equal(t, -3.0, Clamp(-8, -3, 3))
	assert.Equal(t, 1.5, Clamp(1.5, -3, 3))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
