package domain

import (
	"fmt"
	"math"

	"github.com/carbonfootprint/footprint/cli/footprint/types"
)

// CalculateTrip расчет без вопросов: воздушный транспорт получает AirDistance,
// остальной - Distance
type CalculateTrip struct {
	VehicleRepository VehicleRepository
	Distance          float64
	AirDistance       float64
}

func (domain *CalculateTrip) Run() ([]types.Trip, error) {
	for _, d := range []float64{domain.Distance, domain.AirDistance} {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("расстояния должны быть неотрицательными конечными числами: %v, %v", domain.Distance, domain.AirDistance)
		}
	}

	vehicles, err := domain.VehicleRepository.GetAllVehicles()
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить каталог транспорта: %w", err)
	}

	trips := make([]types.Trip, 0, len(vehicles))
	for _, v := range vehicles {
		distance := domain.Distance
		if v.TravelBy == types.TravelModeAir {
			distance = domain.AirDistance
		}

		trip, err := types.NewTrip(v, distance)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, nil
}
