package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/carbonfootprint/footprint/cli/footprint/types"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// DirectoryVehicles читает по одной YAML-записи из каждого файла каталога
type DirectoryVehicles struct {
	dir string
}

func NewDirectoryVehicles(dir string) *DirectoryVehicles {
	return &DirectoryVehicles{dir: dir}
}

// GetRawVehicles возвращает записи в порядке возрастания имен файлов.
// Подкаталоги пропускаются.
func (s *DirectoryVehicles) GetRawVehicles() ([]types.RawVehicle, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать каталог %s: %w", s.dir, err)
	}

	var vehicles []types.RawVehicle
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("не удалось прочитать файл %s: %w", path, err)
		}

		fields := map[string]interface{}{}
		if err := yaml.Unmarshal(data, &fields); err != nil {
			deserializationErr := &types.DeserializationError{Origin: path, Err: err}
			log.Error(deserializationErr)
			return nil, deserializationErr
		}
		if len(fields) == 0 {
			fields = nil
		}

		log.Debugf("Прочитана запись о транспорте из %s", path)
		vehicles = append(vehicles, types.RawVehicle{Origin: path, Fields: fields})
	}

	return vehicles, nil
}
