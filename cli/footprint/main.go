package main

/*
Интерактивный расчет выбросов CO2 на пассажира.

Usage:
  -c string
    	Путь до конфига (необязательно)
  -figure
    	Сохранить диаграмму в plots/emissions.pdf и plots/emissions.png

Пользователь выбирает транспорт из каталога vehicles/, вводит расстояние для
каждого выбранного варианта и получает выбросы в кг на пассажира.
*/

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/carbonfootprint/footprint/cli/footprint/config"
	"github.com/carbonfootprint/footprint/cli/footprint/domain"
	"github.com/carbonfootprint/footprint/cli/footprint/figure"
	"github.com/carbonfootprint/footprint/cli/footprint/prompt"
	"github.com/carbonfootprint/footprint/cli/footprint/report"
	"github.com/carbonfootprint/footprint/cli/footprint/repository"
	"github.com/carbonfootprint/footprint/cli/footprint/source"
	"github.com/carbonfootprint/footprint/cli/footprint/types"

	log "github.com/sirupsen/logrus"
)

func main() {
	configFilePath := ""
	makeFigure := false
	flag.StringVar(&configFilePath, "c", "", "Путь до конфига (необязательно)")
	flag.BoolVar(&makeFigure, "figure", false, "Сохранить диаграмму в PDF и PNG")
	flag.Parse()

	settings, err := getConfig(configFilePath)
	if err != nil {
		log.Fatalf("Не удалось получить конфиг: %v", err)
		return
	}

	if err := config.ConfigureLogging(settings, os.Stderr); err != nil {
		log.Fatalf("Не удалось настроить логирование: %v", err)
		return
	}

	vehicleRepository := repository.NewVehicleRepository(source.NewDirectoryVehicles(settings.VehiclesDir), types.InteractiveTravelModes)
	planTrip := domain.PlanTrip{
		VehicleRepository: vehicleRepository,
		Prompter:          prompt.NewTerminal(os.Stdin, os.Stdout),
		Out:               os.Stdout,
	}

	trips, err := planTrip.Run()
	if errors.Is(err, prompt.ErrAborted) {
		log.Info("Расчет прерван пользователем")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Не удалось выполнить расчет: %v", err)
		return
	}

	if err := report.Write(os.Stdout, trips); err != nil {
		log.Fatalf("Не удалось вывести результат: %v", err)
		return
	}

	if makeFigure {
		fmt.Println("\nGenerating figures...")
		generator := figure.Generator{
			IconsDir:  settings.IconsDir,
			OutputDir: settings.PlotsDir,
			Formats:   []string{figure.FormatPDF, figure.FormatPNG},
		}
		if _, err := generator.Generate(trips); err != nil {
			log.Fatalf("Не удалось построить диаграмму: %v", err)
			return
		}
	}
}

func getConfig(configFilePath string) (config.Settings, error) {
	if configFilePath == "" {
		return config.Default(), nil
	}

	c, err := config.New(configFilePath)
	if err != nil {
		return c, fmt.Errorf("ошибка парсинга конфига: %w", err)
	}

	return c, nil
}
