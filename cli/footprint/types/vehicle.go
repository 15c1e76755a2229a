package types

import "math"

const (
	FieldName           = "name"
	FieldLitresPer100km = "litres_per_100km"
	FieldCO2PerLitre    = "co2_per_litre"
	FieldNumPassengers  = "num_passengers"
	FieldTravelBy       = "travel_by"
	FieldIcon           = "icon"
)

var requiredFields = []string{FieldName, FieldLitresPer100km, FieldCO2PerLitre, FieldNumPassengers, FieldTravelBy}

// RawVehicle десериализованная, но еще не проверенная запись о транспорте
type RawVehicle struct {
	Origin string
	Fields map[string]interface{}
}

// Vehicle статический профиль выбросов одного вида транспорта
type Vehicle struct {
	Name           string
	LitresPer100km float64
	CO2PerLitre    float64
	NumPassengers  float64
	TravelBy       TravelMode
	// Icon имя файла в каталоге иконок, может быть пустым
	Icon string
}

// ValidateVehicle проверяет наличие, типы и значения полей записи и
// возвращает пригодный для расчета Vehicle
func ValidateVehicle(raw RawVehicle, modes TravelModes) (Vehicle, error) {
	var v Vehicle

	if raw.Fields == nil {
		return v, &ValidationError{Origin: raw.Origin, Reason: "запись пуста"}
	}

	for _, field := range requiredFields {
		if _, ok := raw.Fields[field]; !ok {
			return v, &ValidationError{Origin: raw.Origin, Field: field, Reason: "отсутствует обязательное поле"}
		}
	}

	name, ok := raw.Fields[FieldName].(string)
	if !ok {
		return v, &ValidationError{Origin: raw.Origin, Field: FieldName, Reason: "ожидается строка"}
	}
	if name == "" {
		return v, &ValidationError{Origin: raw.Origin, Field: FieldName, Reason: "пустое значение"}
	}
	v.Name = name

	var err error
	if v.LitresPer100km, err = nonNegative(raw, FieldLitresPer100km); err != nil {
		return Vehicle{}, err
	}
	if v.CO2PerLitre, err = nonNegative(raw, FieldCO2PerLitre); err != nil {
		return Vehicle{}, err
	}

	if v.NumPassengers, err = number(raw, FieldNumPassengers); err != nil {
		return Vehicle{}, err
	}
	if v.NumPassengers <= 0 {
		return Vehicle{}, &ValidationError{Origin: raw.Origin, Field: FieldNumPassengers, Reason: "должно быть больше нуля"}
	}

	travelBy, ok := raw.Fields[FieldTravelBy].(string)
	if !ok {
		return Vehicle{}, &ValidationError{Origin: raw.Origin, Field: FieldTravelBy, Reason: "ожидается строка"}
	}
	if v.TravelBy, err = modes.Parse(travelBy); err != nil {
		return Vehicle{}, &ValidationError{Origin: raw.Origin, Field: FieldTravelBy, Reason: err.Error()}
	}

	if icon, present := raw.Fields[FieldIcon]; present && icon != nil {
		s, ok := icon.(string)
		if !ok {
			return Vehicle{}, &ValidationError{Origin: raw.Origin, Field: FieldIcon, Reason: "ожидается строка"}
		}
		v.Icon = s
	}

	return v, nil
}

func nonNegative(raw RawVehicle, field string) (float64, error) {
	n, err := number(raw, field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &ValidationError{Origin: raw.Origin, Field: field, Reason: "не может быть отрицательным"}
	}
	return n, nil
}

// number принимает только целые и вещественные значения, bool и строки отклоняются
func number(raw RawVehicle, field string) (float64, error) {
	var n float64

	switch v := raw.Fields[field].(type) {
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case float32:
		n = float64(v)
	case float64:
		n = v
	default:
		return 0, &ValidationError{Origin: raw.Origin, Field: field, Reason: "ожидается число"}
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, &ValidationError{Origin: raw.Origin, Field: field, Reason: "ожидается конечное число"}
	}

	return n, nil
}
