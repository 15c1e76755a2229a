package emissions

/*
Расчет выбросов CO2 на одного пассажира.

Единицы измерения:
  distance         - км
  litresPer100km   - л / 100 км
  co2PerLitre      - кг CO2 / л
  результат        - кг CO2 на пассажира за указанное расстояние
*/

import "errors"

// ErrInvalidPassengers возвращается, если вместимость не положительна
var ErrInvalidPassengers = errors.New("количество пассажиров должно быть больше нуля")

const litresPer100kmToLitresPerKm = 100

// PerPassenger рассчитывает выбросы CO2 на пассажира. Округление не выполняется.
func PerPassenger(distance, litresPer100km, co2PerLitre, numPassengers float64) (float64, error) {
	if numPassengers <= 0 {
		return 0, ErrInvalidPassengers
	}

	return distance * litresPer100km * co2PerLitre / (litresPer100kmToLitresPerKm * numPassengers), nil
}
