package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocation(t *testing.T) {
	s := setupStore(t)

	loc, err := s.CreateLocation("Rouen", "Rouen", "Normandie", "France")
	require.NoError(t, err)
	assert.NotEmpty(t, loc.ID)
	assert.Equal(t, "Rouen", loc.Name)
	assert.Equal(t, "Normandie", loc.Region)

	_, err = s.CreateLocation("", "", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateLocationNoUniqueness(t *testing.T) {
	s := setupStore(t)

	first, err := s.CreateLocation("Rouen", "", "", "France")
	require.NoError(t, err)
	second, err := s.CreateLocation("Rouen", "", "", "France")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSearchLocations(t *testing.T) {
	s := setupStore(t)

	rouen, err := s.CreateLocation("Rouen", "", "Normandie", "France")
	require.NoError(t, err)
	caen, err := s.CreateLocation("Caen", "", "Normandie", "France")
	require.NoError(t, err)
	_, err = s.CreateLocation("Lyon", "", "Rhône", "France")
	require.NoError(t, err)

	// Substring of the name, case-insensitive.
	results, err := s.SearchLocations("ROUE", 20)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, rouen.ID, results[0].ID)

	// Hierarchy fields match too.
	results, err = s.SearchLocations("normandie", 20)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.ElementsMatch(t, []string{rouen.ID, caen.ID}, []string{results[0].ID, results[1].ID})

	results, err = s.SearchLocations("atlantis", 20)
	require.NoError(t, err)
	assert.Empty(t, results)
}
