package figure

import (
	"os"
	"path/filepath"

	"github.com/carbonfootprint/footprint/cli/footprint/types"
	log "github.com/sirupsen/logrus"
)

// resolveIcons возвращает путь к иконке для каждой поездки, "" - без иконки.
// Иконка берется из поля icon. Если поле не задано, используется старое
// правило: файлы каталога по возрастанию имен сопоставляются поездкам по порядку.
func (g *Generator) resolveIcons(trips []types.Trip) []string {
	icons := make([]string, len(trips))
	if g.IconsDir == "" {
		return icons
	}

	var sorted []string
	sortedLoaded := false

	for i, trip := range trips {
		if trip.Icon != "" {
			icons[i] = filepath.Join(g.IconsDir, trip.Icon)
			continue
		}

		if !sortedLoaded {
			sorted = listIcons(g.IconsDir)
			sortedLoaded = true
		}
		if i < len(sorted) {
			icons[i] = sorted[i]
			log.Warnf("Для %s не задано поле icon, используется %s по порядку файлов", trip.Name, sorted[i])
		}
	}

	return icons
}

func listIcons(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warnf("Не удалось прочитать каталог иконок %s: %v", dir, err)
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths
}
