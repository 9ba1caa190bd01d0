// Package readtoml читает одно строковое поле из TOML файла по пути вида "a.b.c".
package readtoml

import (
	_ "embed"
	"os"

	"github.com/vovanwin/readtoml/internal/logger"
	"github.com/vovanwin/readtoml/internal/parser"
	"github.com/vovanwin/readtoml/pkg/types"
)

// ActionMetadata action.yml из корня репозитория
//
//go:embed action.yml
var ActionMetadata []byte

// ReadString возвращает строку по пути fieldPath (например "a.b.c") из TOML
// файла filePath. Ошибки имеют тип *types.Error:
//
//   - FileNotFound, если файла нет
//   - ReadFailed, если файл есть, но не читается
//   - SyntaxError, если содержимое не валидный TOML
//   - FieldNotFound с именем первого отсутствующего сегмента
//   - TypeMismatch, если значение не строка
//
// Документ парсится при каждом вызове, ничего не кэшируется.
func ReadString(filePath, fieldPath string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", types.NewFileNotFound(filePath)
	}

	logger.Debug("parsing %s", filePath)
	root, err := parser.ParseFile(filePath)
	if err != nil {
		return "", err
	}

	segments := parser.SplitPath(fieldPath)
	logger.Debug("resolving %q (%d segments)", fieldPath, len(segments))

	val, err := parser.Lookup(root, segments)
	if err != nil {
		return "", err
	}

	s, ok := val.(types.String)
	if !ok {
		logger.Debug("%q resolved to %s", fieldPath, val.Kind())
		return "", types.NewTypeMismatch(fieldPath)
	}
	return string(s), nil
}
