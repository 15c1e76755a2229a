package report

import (
	"fmt"
	"io"

	"github.com/carbonfootprint/footprint/cli/footprint/types"
)

// Line расстояние округляется до целых км, выбросы до трех знаков
// (strconv, половина округляется к четному)
func Line(trip types.Trip) string {
	return fmt.Sprintf("%s (%.0f km): %.3f kg/passenger", trip.Name, trip.Distance, trip.Emissions)
}

func Lines(trips []types.Trip) []string {
	lines := make([]string, 0, len(trips))
	for _, trip := range trips {
		lines = append(lines, Line(trip))
	}
	return lines
}

func Write(w io.Writer, trips []types.Trip) error {
	for _, line := range Lines(trips) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
