package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMediaFileName(t *testing.T) {
	t.Run("plain filename", func(t *testing.T) {
		id, err := ParseMediaFileName("chain-figaro-50.png")
		require.NoError(t, err)
		assert.Equal(t, "chain-figaro-50", id)
	})

	t.Run("alternate shot with sequence", func(t *testing.T) {
		id, err := ParseMediaFileName("ring-signet-min.2.jpg")
		require.NoError(t, err)
		assert.Equal(t, "ring-signet-min", id)
	})

	t.Run("uppercase extension", func(t *testing.T) {
		id, err := ParseMediaFileName("gift-wrap.WEBP")
		require.NoError(t, err)
		assert.Equal(t, "gift-wrap", id)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ParseMediaFileName("chain-figaro-50.gif")
		assert.Error(t, err)
	})

	t.Run("non-numeric sequence", func(t *testing.T) {
		_, err := ParseMediaFileName("chain-figaro-50.alt.jpg")
		assert.Error(t, err)
	})

	t.Run("bad product id", func(t *testing.T) {
		_, err := ParseMediaFileName("Chain Figaro!.png")
		assert.Error(t, err)
	})
}
