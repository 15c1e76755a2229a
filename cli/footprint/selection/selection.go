package selection

import (
	"errors"
	"fmt"

	"github.com/carbonfootprint/footprint/cli/footprint/types"
)

var ErrNothingRemaining = errors.New("не осталось транспорта для выбора")
var ErrFinished = errors.New("выбор транспорта завершен")

// Selection разбиение каталога на оставшийся и выбранный транспорт.
// Оба множества не пересекаются, их объединение всегда равно каталогу.
type Selection struct {
	remaining []types.Vehicle
	selected  []types.Vehicle
	done      bool
}

func New(catalog []types.Vehicle) *Selection {
	remaining := make([]types.Vehicle, len(catalog))
	copy(remaining, catalog)
	return &Selection{remaining: remaining}
}

// Pick переносит транспорт с указанным именем из оставшихся в выбранные.
// Если после этого остался ровно один вариант, он добавляется автоматически
// и возвращается вторым значением с autoFinished = true.
func (s *Selection) Pick(name string) (last types.Vehicle, autoFinished bool, err error) {
	if s.done {
		return last, false, ErrFinished
	}
	if len(s.remaining) == 0 {
		return last, false, ErrNothingRemaining
	}

	i := s.indexOf(name)
	if i < 0 {
		return last, false, fmt.Errorf("транспорт %q не найден среди оставшихся", name)
	}
	s.move(i)

	switch len(s.remaining) {
	case 0:
		s.done = true
	case 1:
		last = s.remaining[0]
		s.move(0)
		s.done = true
		autoFinished = true
	}

	return last, autoFinished, nil
}

// Stop пользователь отказался добавлять транспорт
func (s *Selection) Stop() {
	s.done = true
}

func (s *Selection) Done() bool {
	return s.done
}

func (s *Selection) Remaining() []types.Vehicle {
	return append([]types.Vehicle(nil), s.remaining...)
}

func (s *Selection) Selected() []types.Vehicle {
	return append([]types.Vehicle(nil), s.selected...)
}

func (s *Selection) RemainingNames() []string {
	names := make([]string, 0, len(s.remaining))
	for _, v := range s.remaining {
		names = append(names, v.Name)
	}
	return names
}

func (s *Selection) indexOf(name string) int {
	for i, v := range s.remaining {
		if v.Name == name {
			return i
		}
	}
	return -1
}

func (s *Selection) move(i int) {
	s.selected = append(s.selected, s.remaining[i])
	s.remaining = append(s.remaining[:i:i], s.remaining[i+1:]...)
}
