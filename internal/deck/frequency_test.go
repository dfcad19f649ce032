package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/dealdeck/internal/card"
)

func TestDefaultFrequencies(t *testing.T) {
	freq := DefaultFrequencies()
	assert.Len(t, freq, len(Generate()))
	assert.Equal(t, 106, freq.Total())

	for id, n := range freq {
		assert.Positive(t, n, "card %d", id)
		assert.LessOrEqual(t, n, MaxCopies, "card %d", id)
	}

	assert.Equal(t, 10, freq.Copies(33), "Pass Go")
	assert.Equal(t, 0, freq.Copies(40))
	assert.Equal(t, 0, freq.Copies(-1))
}

func TestDefaultFrequenciesAreCopies(t *testing.T) {
	freq := DefaultFrequencies()
	freq[0] = 12
	assert.Equal(t, 2, DefaultFrequencies()[0])
}

func TestWithActionOverrides(t *testing.T) {
	cards := Generate()

	freq, err := DefaultFrequencies().WithActionOverrides(cards, map[string]int{
		"Pass Go":     4,
		"Just Say No": 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, freq.Copies(33))
	assert.Equal(t, 0, freq.Copies(25))
	assert.Equal(t, 106-6-3, freq.Total())

	t.Run("unknown title", func(t *testing.T) {
		_, err := DefaultFrequencies().WithActionOverrides(cards, map[string]int{"Free Parking": 1})
		assert.ErrorContains(t, err, "unknown action card")
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := DefaultFrequencies().WithActionOverrides(cards, map[string]int{"Hotel": MaxCopies + 1})
		assert.ErrorContains(t, err, "between 0 and 12")
	})

	t.Run("no overrides", func(t *testing.T) {
		freq, err := DefaultFrequencies().WithActionOverrides(cards, nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultFrequencies(), freq)
	})
}

func TestExpand(t *testing.T) {
	cards := Generate()
	pile := Expand(cards, DefaultFrequencies())
	require.Len(t, pile, 106)

	counts := make(map[int]int)
	for i, c := range pile {
		counts[c.ID]++
		if i > 0 {
			assert.GreaterOrEqual(t, c.ID, pile[i-1].ID, "pile keeps catalog order")
		}
	}
	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 10, counts[33])

	money := 0
	for _, c := range pile {
		if c.Type == card.Money {
			money++
		}
	}
	assert.Equal(t, 20, money)
}
