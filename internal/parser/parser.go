package parser

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vovanwin/readtoml/pkg/types"
)

// ParseFile читает TOML файл целиком и возвращает корневую таблицу документа.
// Ошибка чтения возвращается как types.ReadFailed, ошибка разбора как types.SyntaxError.
func ParseFile(path string) (types.Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewReadFailed(path, err)
	}

	root, err := Parse(string(b))
	if err != nil {
		return nil, types.NewSyntaxError(path, err)
	}
	return root, nil
}

// Parse декодирует TOML текст. Диагностика парсера возвращается без изменений.
func Parse(text string) (types.Table, error) {
	var root map[string]any
	if _, err := toml.Decode(text, &root); err != nil {
		return nil, err
	}
	return buildTable(root, "")
}

// buildTable рекурсивно переводит распарсенный TOML в types.Table
func buildTable(node map[string]any, prefix string) (types.Table, error) {
	res := make(types.Table, len(node))

	for k, v := range node {
		fullKey := k
		if prefix != "" {
			fullKey = prefix + "." + k
		}

		val, err := detectValue(fullKey, v)
		if err != nil {
			return nil, err
		}
		res[k] = val
	}
	return res, nil
}

// detectValue определяет тип значения и оборачивает его в types.Value
func detectValue(fullKey string, val any) (types.Value, error) {
	switch v := val.(type) {
	case string:
		return types.String(v), nil

	case int64:
		return types.Integer(v), nil

	case int:
		return types.Integer(v), nil

	case float64:
		return types.Float(v), nil

	case bool:
		return types.Bool(v), nil

	// локальные date/time тоже приходят как time.Time (с toml.LocalDatetime и т.п.)
	case time.Time:
		return types.Datetime{Time: v}, nil

	case []any:
		items := make(types.Array, 0, len(v))
		for i, item := range v {
			iv, err := detectValue(fmt.Sprintf("%s[%d]", fullKey, i), item)
			if err != nil {
				return nil, err
			}
			items = append(items, iv)
		}
		return items, nil

	// [[array.of.tables]]
	case []map[string]any:
		items := make(types.Array, 0, len(v))
		for i, item := range v {
			t, err := buildTable(item, fmt.Sprintf("%s[%d]", fullKey, i))
			if err != nil {
				return nil, err
			}
			items = append(items, t)
		}
		return items, nil

	case map[string]any:
		return buildTable(v, fullKey)

	default:
		return nil, fmt.Errorf("неподдерживаемый тип для ключа %s: %T", fullKey, val)
	}
}
