package types

import "fmt"

type TravelMode string

const (
	TravelModeAir  TravelMode = "air"
	TravelModeLand TravelMode = "land"
	TravelModeSea  TravelMode = "sea"
)

// TravelModes набор допустимых значений travel_by
type TravelModes map[TravelMode]struct{}

// InteractiveTravelModes допустимы в интерактивном расчете
var InteractiveTravelModes = TravelModes{
	TravelModeAir:  {},
	TravelModeLand: {},
	TravelModeSea:  {},
}

// BatchTravelModes допустимы в расчете по двум расстояниям: морской транспорт не поддерживается
var BatchTravelModes = TravelModes{
	TravelModeAir:  {},
	TravelModeLand: {},
}

func (tm TravelModes) Contains(mode TravelMode) bool {
	_, ok := tm[mode]
	return ok
}

func (tm TravelModes) Parse(s string) (TravelMode, error) {
	v := TravelMode(s)
	if !tm.Contains(v) {
		return "", fmt.Errorf("недопустимый travel_by: %q", s)
	}
	return v, nil
}
