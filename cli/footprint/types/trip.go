package types

import (
	"fmt"

	"github.com/carbonfootprint/footprint/libs/emissions"
)

// Trip транспорт, выбранный для поездки, с расстоянием и рассчитанными выбросами
type Trip struct {
	Vehicle
	Distance  float64
	Emissions float64
}

// NewTrip назначает расстояние и рассчитывает выбросы на пассажира
func NewTrip(v Vehicle, distance float64) (Trip, error) {
	if distance < 0 {
		return Trip{}, fmt.Errorf("отрицательное расстояние для %s: %v", v.Name, distance)
	}

	trip := Trip{Vehicle: v, Distance: distance}

	e, err := emissions.PerPassenger(distance, v.LitresPer100km, v.CO2PerLitre, v.NumPassengers)
	if err != nil {
		return Trip{}, fmt.Errorf("не удалось рассчитать выбросы для %s: %w", v.Name, err)
	}
	trip.Emissions = e

	return trip, nil
}
