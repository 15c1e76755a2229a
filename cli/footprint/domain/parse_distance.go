package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/carbonfootprint/footprint/cli/footprint/types"
)

// ParseDistance пустой ввод означает 0 км, иначе ожидается неотрицательное число
func ParseDistance(input string) (float64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, nil
	}

	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &types.UserInputError{Input: input, Reason: "расстояние должно быть числом"}
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, &types.UserInputError{Input: input, Reason: "расстояние должно быть конечным числом"}
	}
	if d < 0 {
		return 0, &types.UserInputError{Input: input, Reason: "расстояние не может быть отрицательным"}
	}

	return d, nil
}
