package source

import "github.com/carbonfootprint/footprint/cli/footprint/types"

// Vehicles источник необработанных записей о транспорте
type Vehicles interface {
	GetRawVehicles() ([]types.RawVehicle, error)
}
