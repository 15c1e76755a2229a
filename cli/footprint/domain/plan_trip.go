package domain

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/carbonfootprint/footprint/cli/footprint/prompt"
	"github.com/carbonfootprint/footprint/cli/footprint/selection"
	"github.com/carbonfootprint/footprint/cli/footprint/types"
	log "github.com/sirupsen/logrus"
)

type VehicleRepository interface {
	GetAllVehicles() ([]types.Vehicle, error)
}

// PlanTrip интерактивный расчет: выбор транспорта, ввод расстояний, расчет выбросов
type PlanTrip struct {
	VehicleRepository VehicleRepository
	Prompter          prompt.Prompter
	Out               io.Writer
}

func (domain *PlanTrip) Run() ([]types.Trip, error) {
	catalog, err := domain.VehicleRepository.GetAllVehicles()
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить каталог транспорта: %w", err)
	}
	if len(catalog) == 0 {
		return nil, selection.ErrNothingRemaining
	}
	log.Debugf("Загружено транспорта: %d", len(catalog))

	selected, err := domain.selectVehicles(catalog)
	if err != nil {
		return nil, err
	}

	trips := make([]types.Trip, 0, len(selected))
	for _, v := range selected {
		distance, err := domain.askDistance(v)
		if err != nil {
			return nil, err
		}

		trip, err := types.NewTrip(v, distance)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, nil
}

func (domain *PlanTrip) selectVehicles(catalog []types.Vehicle) ([]types.Vehicle, error) {
	s := selection.New(catalog)

	for {
		name, err := domain.Prompter.Select("Choose a vehicle", s.RemainingNames())
		if err != nil {
			return nil, err
		}

		last, autoFinished, err := s.Pick(name)
		if err != nil {
			return nil, err
		}
		if autoFinished {
			fmt.Fprintf(domain.Out, "Automatically adding last vehicle: %s\n", last.Name)
		}
		if s.Done() {
			break
		}

		more, err := domain.Prompter.Confirm("Add another vehicle")
		if err != nil {
			return nil, err
		}
		if !more {
			s.Stop()
			break
		}
	}

	return s.Selected(), nil
}

// askDistance повторяет вопрос, пока не будет введено корректное расстояние
func (domain *PlanTrip) askDistance(v types.Vehicle) (float64, error) {
	message := "Distance by " + strings.ToLower(v.Name)

	for {
		answer, err := domain.Prompter.Input(message)
		if err != nil {
			return 0, err
		}

		distance, err := ParseDistance(answer)
		var inputErr *types.UserInputError
		if errors.As(err, &inputErr) {
			log.Debugf("Некорректное расстояние для %s: %v", v.Name, err)
			fmt.Fprintf(domain.Out, "Invalid distance %q, enter a non-negative number of km or leave blank for 0\n", answer)
			continue
		}
		if err != nil {
			return 0, err
		}

		return distance, nil
	}
}
