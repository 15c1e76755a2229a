package types

import "fmt"

// ValidationError запись о транспорте не содержит обязательного поля
// или поле имеет неверный тип или значение
type ValidationError struct {
	Origin string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("некорректная запись о транспорте %s: %s", e.Origin, e.Reason)
	}
	return fmt.Sprintf("некорректная запись о транспорте %s: поле %s: %s", e.Origin, e.Field, e.Reason)
}

// DeserializationError файл с данными о транспорте не удалось разобрать
type DeserializationError struct {
	Origin string
	Err    error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("не удалось разобрать файл %s: %v", e.Origin, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// UserInputError пользователь ввел значение, которое нельзя использовать
type UserInputError struct {
	Input  string
	Reason string
}

func (e *UserInputError) Error() string {
	return fmt.Sprintf("%q: %s", e.Input, e.Reason)
}
