package figure

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/carbonfootprint/footprint/cli/footprint/types"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	FormatPDF = "pdf"
	FormatPNG = "png"

	fileName = "emissions"
	yLabel   = "CO2 emissions (kg / passenger)"

	// запас над самым высоким столбцом под иконку
	headroom = 20

	barWidthShare = 0.75
	iconWidth     = 0.6
	iconHeight    = 0.12
	iconGap       = 0.01
)

var (
	figureWidth  = 5 * vg.Inch
	figureHeight = 4.5 * vg.Inch

	colours = []color.Color{
		color.RGBA{R: 0x37, G: 0x7e, B: 0xb8, A: 0xff},
		color.RGBA{R: 0x4d, G: 0xaf, B: 0x4a, A: 0xff},
		color.RGBA{R: 0xe4, G: 0x1a, B: 0x1c, A: 0xff},
	}
)

// IconLoadError иконку не удалось прочитать как изображение
type IconLoadError struct {
	Path string
	Err  error
}

func (e *IconLoadError) Error() string {
	return fmt.Sprintf("не удалось загрузить иконку %s: %v", e.Path, e.Err)
}

func (e *IconLoadError) Unwrap() error {
	return e.Err
}

// Generator строит столбчатую диаграмму выбросов с иконками над столбцами
type Generator struct {
	IconsDir  string
	OutputDir string
	Formats   []string

	// MinCeiling нижняя граница верхнего предела оси Y, 0 - по данным
	MinCeiling float64
}

// Generate сохраняет диаграмму во всех форматах и возвращает пути к файлам
func (g *Generator) Generate(trips []types.Trip) ([]string, error) {
	if len(trips) == 0 {
		return nil, fmt.Errorf("нет данных для диаграммы")
	}

	p, err := g.build(trips)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.OutputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог %s: %w", g.OutputDir, err)
	}

	var paths []string
	for _, format := range g.Formats {
		path := filepath.Join(g.OutputDir, fileName+"."+format)
		if err := p.Save(figureWidth, figureHeight, path); err != nil {
			return paths, fmt.Errorf("не удалось сохранить диаграмму %s: %w", path, err)
		}
		log.Infof("Диаграмма сохранена: %s", path)
		paths = append(paths, path)
	}

	return paths, nil
}

func (g *Generator) build(trips []types.Trip) (*plot.Plot, error) {
	p := plot.New()

	n := len(trips)
	names := make([]string, n)
	ticks := make([]plot.Tick, n)
	for i, trip := range trips {
		names[i] = trip.Name
		rounded := math.RoundToEven(trip.Emissions)
		ticks[i] = plot.Tick{Value: rounded, Label: strconv.FormatFloat(rounded, 'f', 0, 64)}
	}

	ceiling := Ceiling(trips, g.MinCeiling)
	barWidth := figureWidth * 0.8 / vg.Length(n+1) * barWidthShare

	for i, trip := range trips {
		bar, err := plotter.NewBarChart(plotter.Values{trip.Emissions}, barWidth)
		if err != nil {
			return nil, fmt.Errorf("не удалось построить столбец %s: %w", trip.Name, err)
		}
		bar.XMin = float64(i)
		bar.Color = colours[i%len(colours)]
		bar.LineStyle.Width = 0
		p.Add(bar)
	}

	icons := g.resolveIcons(trips)
	for i, trip := range trips {
		if icons[i] == "" {
			continue
		}

		img, err := loadIcon(icons[i])
		if err != nil {
			log.Warn(err)
			continue
		}
		xmin, ymin, xmax, ymax := iconBounds(img, float64(i), trip.Emissions, ceiling)
		p.Add(plotter.NewImage(img, xmin, ymin, xmax, ymax))
	}

	p.NominalX(names...)
	p.X.Min = -1
	p.X.Max = float64(n)
	p.Y.Min = 0
	p.Y.Max = ceiling
	p.Y.Label.Text = yLabel
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	return p, nil
}

// Ceiling верхний предел оси Y: округленный максимум плюс запас,
// но не ниже minCeiling
func Ceiling(trips []types.Trip, minCeiling float64) float64 {
	highest := 0.0
	for _, trip := range trips {
		highest = math.Max(highest, math.RoundToEven(trip.Emissions))
	}
	return math.Max(highest+headroom, minCeiling)
}

// iconBounds область иконки над столбцом в координатах данных, пропорции сохраняются
func iconBounds(img image.Image, x, top, ceiling float64) (xmin, ymin, xmax, ymax float64) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	maxDim := math.Max(w, h)

	width := iconWidth * w / maxDim
	height := ceiling * iconHeight * h / maxDim
	bottom := top + ceiling*iconGap

	return x - width/2, bottom, x + width/2, bottom + height
}

func loadIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IconLoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &IconLoadError{Path: path, Err: err}
	}
	return img, nil
}
