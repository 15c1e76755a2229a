package repository

import (
	"errors"
	"testing"

	"github.com/carbonfootprint/footprint/cli/footprint/types"
	"github.com/stretchr/testify/assert"
)

// memorySource отдает заранее подготовленные записи
type memorySource struct {
	vehicles []types.RawVehicle
	err      error
}

func (s *memorySource) GetRawVehicles() ([]types.RawVehicle, error) {
	return s.vehicles, s.err
}

func raw(origin, name, travelBy string) types.RawVehicle {
	return types.RawVehicle{
		Origin: origin,
		Fields: map[string]interface{}{
			"name":             name,
			"litres_per_100km": 7,
			"co2_per_litre":    2.3,
			"num_passengers":   4,
			"travel_by":        travelBy,
		},
	}
}

func TestGetAllVehiclesKeepsOrder(t *testing.T) {
	repo := NewVehicleRepository(&memorySource{vehicles: []types.RawVehicle{
		raw("b.yaml", "Bus", "land"),
		raw("a.yaml", "Airship", "air"),
		raw("f.yaml", "Ferry", "sea"),
	}}, types.InteractiveTravelModes)

	vehicles, err := repo.GetAllVehicles()
	if assert.NoError(t, err) {
		var names []string
		for _, v := range vehicles {
			names = append(names, v.Name)
		}
		assert.Equal(t, []string{"Bus", "Airship", "Ferry"}, names)
	}
}

func TestGetAllVehiclesFailFast(t *testing.T) {
	broken := raw("car.yaml", "Car", "land")
	delete(broken.Fields, "co2_per_litre")

	repo := NewVehicleRepository(&memorySource{vehicles: []types.RawVehicle{
		raw("bus.yaml", "Bus", "land"),
		broken,
		raw("plane.yaml", "Plane", "air"),
	}}, types.InteractiveTravelModes)

	vehicles, err := repo.GetAllVehicles()
	assert.Nil(t, vehicles)

	var validationErr *types.ValidationError
	if assert.True(t, errors.As(err, &validationErr)) {
		assert.Equal(t, "car.yaml", validationErr.Origin)
		assert.Equal(t, types.FieldCO2PerLitre, validationErr.Field)
	}
}

func TestGetAllVehiclesBatchRejectsSea(t *testing.T) {
	repo := NewVehicleRepository(&memorySource{vehicles: []types.RawVehicle{
		raw("ferry.yaml", "Ferry", "sea"),
	}}, types.BatchTravelModes)

	_, err := repo.GetAllVehicles()

	var validationErr *types.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestGetAllVehiclesSourceError(t *testing.T) {
	sourceErr := &types.DeserializationError{Origin: "car.yaml", Err: errors.New("bad yaml")}
	repo := NewVehicleRepository(&memorySource{err: sourceErr}, types.InteractiveTravelModes)

	_, err := repo.GetAllVehicles()
	assert.ErrorIs(t, err, sourceErr)
}
