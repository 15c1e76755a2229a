package repository

import (
	"fmt"

	"github.com/carbonfootprint/footprint/cli/footprint/source"
	"github.com/carbonfootprint/footprint/cli/footprint/types"
)

type VehicleRepository struct {
	Source source.Vehicles
	Modes  types.TravelModes
}

func NewVehicleRepository(source source.Vehicles, modes types.TravelModes) *VehicleRepository {
	return &VehicleRepository{Source: source, Modes: modes}
}

// GetAllVehicles возвращает весь каталог. Первая некорректная запись
// прерывает загрузку, частичный каталог не возвращается.
func (r *VehicleRepository) GetAllVehicles() ([]types.Vehicle, error) {
	raw, err := r.Source.GetRawVehicles()
	if err != nil {
		return nil, fmt.Errorf("не удалось получить данные о транспорте: %w", err)
	}

	vehicles := make([]types.Vehicle, 0, len(raw))
	for _, record := range raw {
		v, err := types.ValidateVehicle(record, r.Modes)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}
