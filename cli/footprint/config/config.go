package config

/*
Описание конфигурационного файла
*/

import (
	"os"

	log "github.com/sirupsen/logrus"

	"gopkg.in/yaml.v2"
)

const (
	defaultVehiclesDir   = "vehicles"
	defaultIconsDir      = "icons"
	defaultPlotsDir      = "plots"
	defaultLogMaxAgeDays = 30
)

type Settings struct {
	VehiclesDir   string `yaml:"vehicles_dir"`
	IconsDir      string `yaml:"icons_dir"`
	PlotsDir      string `yaml:"plots_dir"`
	LogLevel      string `yaml:"log_level"`
	LogFilePath   string `yaml:"log_file_path"`
	LogMaxAgeDays int    `yaml:"log_max_age_days"`
}

func (s *Settings) GetLogLevel() log.Level {
	var lvl log.Level

	switch s.LogLevel {
	case "DEBUG":
		lvl = log.DebugLevel
	case "INFO":
		lvl = log.InfoLevel
	case "WARN":
		lvl = log.WarnLevel
	case "ERROR":
		lvl = log.ErrorLevel
	default:
		lvl = log.InfoLevel
	}
	return lvl
}

// Default настройки для запуска без конфига
func Default() Settings {
	c := Settings{}
	c.applyDefaults()
	return c
}

func New(confPath string) (Settings, error) {
	c := Settings{}
	data, err := os.ReadFile(confPath)
	if err != nil {
		return c, err
	}
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return c, err
	}

	c.applyDefaults()

	return c, nil
}

func (s *Settings) applyDefaults() {
	if s.VehiclesDir == "" {
		s.VehiclesDir = defaultVehiclesDir
	}
	if s.IconsDir == "" {
		s.IconsDir = defaultIconsDir
	}
	if s.PlotsDir == "" {
		s.PlotsDir = defaultPlotsDir
	}

	if s.LogMaxAgeDays == 0 {
		s.LogMaxAgeDays = defaultLogMaxAgeDays
	}
	if s.LogMaxAgeDays < 0 {
		log.Errorf("Invalid LogMaxAgeDays (%d). Value must be positive. Defaulting to %d.", s.LogMaxAgeDays, defaultLogMaxAgeDays)
		s.LogMaxAgeDays = defaultLogMaxAgeDays
	}
}
