package selection

import (
	"testing"

	"github.com/carbonfootprint/footprint/cli/footprint/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(names ...string) []types.Vehicle {
	var vehicles []types.Vehicle
	for _, name := range names {
		vehicles = append(vehicles, types.Vehicle{Name: name, NumPassengers: 1, TravelBy: types.TravelModeLand})
	}
	return vehicles
}

func names(vehicles []types.Vehicle) []string {
	var out []string
	for _, v := range vehicles {
		out = append(out, v.Name)
	}
	return out
}

// assertPartition проверяет, что оставшиеся и выбранные не пересекаются
// и вместе составляют весь каталог
func assertPartition(t *testing.T, s *Selection, full []types.Vehicle) {
	t.Helper()

	seen := map[string]int{}
	for _, v := range s.Remaining() {
		seen[v.Name]++
	}
	for _, v := range s.Selected() {
		seen[v.Name]++
	}

	assert.Equal(t, len(full), len(s.Remaining())+len(s.Selected()))
	for _, v := range full {
		assert.Equal(t, 1, seen[v.Name], "vehicle %s", v.Name)
	}
}

func TestAutoFinish(t *testing.T) {
	full := catalog("A", "B", "C")
	s := New(full)
	assertPartition(t, s, full)

	_, auto, err := s.Pick("A")
	require.NoError(t, err)
	assert.False(t, auto)
	assert.False(t, s.Done())
	assertPartition(t, s, full)

	last, auto, err := s.Pick("B")
	require.NoError(t, err)
	assert.True(t, auto)
	assert.Equal(t, "C", last.Name)
	assert.True(t, s.Done())
	assertPartition(t, s, full)

	assert.Equal(t, []string{"A", "B", "C"}, names(s.Selected()))
	assert.Empty(t, s.Remaining())
}

func TestStop(t *testing.T) {
	full := catalog("Car", "Bus", "Plane", "Ferry")
	s := New(full)

	_, _, err := s.Pick("Plane")
	require.NoError(t, err)
	assertPartition(t, s, full)

	s.Stop()
	assert.True(t, s.Done())
	assert.Equal(t, []string{"Plane"}, names(s.Selected()))
	assert.Equal(t, []string{"Car", "Bus", "Ferry"}, s.RemainingNames())

	_, _, err = s.Pick("Car")
	assert.ErrorIs(t, err, ErrFinished)
	assertPartition(t, s, full)
}

func TestSingleVehicleCatalog(t *testing.T) {
	s := New(catalog("Car"))

	_, auto, err := s.Pick("Car")
	require.NoError(t, err)
	assert.False(t, auto)
	assert.True(t, s.Done())
	assert.Equal(t, []string{"Car"}, names(s.Selected()))
}

func TestTwoVehicleCatalog(t *testing.T) {
	s := New(catalog("Car", "Plane"))

	last, auto, err := s.Pick("Plane")
	require.NoError(t, err)
	assert.True(t, auto)
	assert.Equal(t, "Car", last.Name)
	assert.Equal(t, []string{"Plane", "Car"}, names(s.Selected()))
}

func TestEmptyCatalog(t *testing.T) {
	s := New(nil)

	_, _, err := s.Pick("Car")
	assert.ErrorIs(t, err, ErrNothingRemaining)
}

func TestUnknownName(t *testing.T) {
	full := catalog("A", "B", "C")
	s := New(full)

	_, _, err := s.Pick("Z")
	assert.Error(t, err)
	assert.Empty(t, s.Selected())
	assertPartition(t, s, full)
}

func TestDuplicateNamesPickFirst(t *testing.T) {
	full := catalog("Car", "Car", "Bus", "Plane")
	full[0].Icon = "first.png"
	full[1].Icon = "second.png"
	s := New(full)

	_, _, err := s.Pick("Car")
	require.NoError(t, err)
	assert.Equal(t, "first.png", s.Selected()[0].Icon)
	assert.Equal(t, []string{"Car", "Bus", "Plane"}, s.RemainingNames())
}

func TestCatalogNotMutated(t *testing.T) {
	full := catalog("A", "B", "C")
	s := New(full)

	_, _, err := s.Pick("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names(full))
}
