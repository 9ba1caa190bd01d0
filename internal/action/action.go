package action

import (
	"github.com/vovanwin/readtoml/internal/logger"
	"github.com/vovanwin/readtoml/pkg/types"
)

const (
	InputFile   = "file"
	InputField  = "field"
	OutputValue = "value"
)

// Host окружение запуска: откуда читаются входы и куда уходит
// единственный итог (выход или ошибка).
type Host interface {
	GetInput(name string) string
	SetOutput(name, value string) error
	SetFailed(message string)
}

// ExtractFunc достаёт строку по пути вида "a.b.c" из TOML файла
type ExtractFunc func(filePath, fieldPath string) (string, error)

// Run проверяет входы, извлекает поле и сообщает host ровно один итог:
// SetOutput при успехе или SetFailed с текстом ошибки.
// Ошибка возвращается, чтобы вызывающий мог выбрать код выхода.
func Run(host Host, extract ExtractFunc) error {
	err := run(host, extract)
	if err != nil {
		host.SetFailed(err.Error())
	}
	return err
}

func run(host Host, extract ExtractFunc) error {
	file := host.GetInput(InputFile)
	if file == "" {
		return types.NewMissingInput(InputFile)
	}

	field := host.GetInput(InputField)
	if field == "" {
		return types.NewMissingInput(InputField)
	}

	logger.Debug("reading %q from %s", field, file)
	value, err := extract(file, field)
	if err != nil {
		return err
	}

	return host.SetOutput(OutputValue, value)
}
