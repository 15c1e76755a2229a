package main

/*
Расчет выбросов CO2 на пассажира для всего каталога без вопросов.

Usage:
  -c string
    	Путь до конфига (необязательно)
  -distance float
    	Расстояние по земле в км (обязательно)
  -air-distance float
    	Расстояние по воздуху в км (обязательно)
  -figure
    	Сохранить диаграмму в plots/emissions.pdf

Example

```
./trip-calculation --distance 850 --air-distance 700 --figure
```
*/

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/carbonfootprint/footprint/cli/footprint/config"
	"github.com/carbonfootprint/footprint/cli/footprint/domain"
	"github.com/carbonfootprint/footprint/cli/footprint/figure"
	"github.com/carbonfootprint/footprint/cli/footprint/report"
	"github.com/carbonfootprint/footprint/cli/footprint/repository"
	"github.com/carbonfootprint/footprint/cli/footprint/source"
	"github.com/carbonfootprint/footprint/cli/footprint/types"

	log "github.com/sirupsen/logrus"
)

const batchCeiling = 150

func main() {
	configFilePath := ""
	distance := 0.0
	airDistance := 0.0
	makeFigure := false

	flag.StringVar(&configFilePath, "c", "", "Путь до конфига (необязательно)")
	flag.Float64Var(&distance, "distance", 0, "Расстояние по земле в км (обязательно)")
	flag.Float64Var(&airDistance, "air-distance", 0, "Расстояние по воздуху в км (обязательно)")
	flag.BoolVar(&makeFigure, "figure", false, "Сохранить диаграмму в PDF")
	flag.Parse()

	if err := checkDistances(flag.CommandLine, distance, airDistance); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	settings := config.Default()
	if configFilePath != "" {
		var err error
		if settings, err = config.New(configFilePath); err != nil {
			log.Fatalf("Не удалось получить конфиг: %v", err)
			return
		}
	}

	if err := config.ConfigureLogging(settings, os.Stderr); err != nil {
		log.Fatalf("Не удалось настроить логирование: %v", err)
		return
	}

	calculateTrip := domain.CalculateTrip{
		VehicleRepository: repository.NewVehicleRepository(source.NewDirectoryVehicles(settings.VehiclesDir), types.BatchTravelModes),
		Distance:          distance,
		AirDistance:       airDistance,
	}

	trips, err := calculateTrip.Run()
	if err != nil {
		log.Fatalf("Не удалось выполнить расчет: %v", err)
		return
	}

	if err := report.Write(os.Stdout, trips); err != nil {
		log.Fatalf("Не удалось вывести результат: %v", err)
		return
	}

	if makeFigure {
		generator := figure.Generator{
			IconsDir:   settings.IconsDir,
			OutputDir:  settings.PlotsDir,
			Formats:    []string{figure.FormatPDF},
			MinCeiling: batchCeiling,
		}
		if _, err := generator.Generate(trips); err != nil {
			log.Fatalf("Не удалось построить диаграмму: %v", err)
			return
		}
	}
}

// checkDistances оба расстояния обязательны и не могут быть отрицательными
func checkDistances(fs *flag.FlagSet, distance, airDistance float64) error {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	for _, name := range []string{"distance", "air-distance"} {
		if !set[name] {
			return fmt.Errorf("требуется параметр --%s, смотрите помощь (-h)", name)
		}
	}

	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return fmt.Errorf("--distance должно быть конечным числом: %v", distance)
	}
	if math.IsNaN(airDistance) || math.IsInf(airDistance, 0) {
		return fmt.Errorf("--air-distance должно быть конечным числом: %v", airDistance)
	}
	if distance < 0 {
		return fmt.Errorf("--distance не может быть отрицательным: %v", distance)
	}
	if airDistance < 0 {
		return fmt.Errorf("--air-distance не может быть отрицательным: %v", airDistance)
	}

	return nil
}
