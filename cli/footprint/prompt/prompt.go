package prompt

import "errors"

// ErrAborted пользователь прервал ввод (Ctrl+C или Esc)
var ErrAborted = errors.New("ввод прерван пользователем")

// Prompter задает вопросы пользователю
type Prompter interface {
	// Select выбор одного варианта из списка
	Select(message string, choices []string) (string, error)

	// Confirm вопрос с ответом да/нет
	Confirm(message string) (bool, error)

	// Input произвольная строка, пустой ответ допустим
	Input(message string) (string, error)
}
