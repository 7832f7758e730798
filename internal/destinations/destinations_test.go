package destinations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsFullCatalog(t *testing.T) {
	all := All()
	assert.Len(t, all, 12)
}

func TestGet(t *testing.T) {
	d, ok := Get(1)
	require.True(t, ok)
	assert.Equal(t, "Paris", d.Name)

	_, ok = Get(999)
	assert.False(t, ok)
}

func TestSearchByContinent(t *testing.T) {
	got := Search(Filter{Continent: "Asia"})
	require.NotEmpty(t, got)
	for _, d := range got {
		assert.Equal(t, "Asia", d.Continent)
	}
}

func TestSearchCombinesFilters(t *testing.T) {
	got := Search(Filter{Continent: "Europe", Type: "Beach"})
	require.Len(t, got, 1)
	assert.Equal(t, "Santorini", got[0].Name)
}

func TestSearchQueryIsCaseInsensitive(t *testing.T) {
	got := Search(Filter{Query: "tokyo"})
	require.Len(t, got, 1)
	assert.Equal(t, "Tokyo", got[0].Name)

	// Query also matches descriptions.
	got = Search(Filter{Query: "coral reef"})
	require.NotEmpty(t, got)
}

func TestSearchNoMatches(t *testing.T) {
	got := Search(Filter{Query: "atlantis"})
	assert.Empty(t, got)
}
