package parser

import (
	"strconv"
	"strings"

	"github.com/vovanwin/readtoml/pkg/types"
)

// SplitPath разбивает путь вида "a.b.c" на сегменты.
// Пустые сегменты ("a..b", "a.") сохраняются и при обходе дают FieldNotFound.
func SplitPath(fieldPath string) []string {
	return strings.Split(fieldPath, ".")
}

// Lookup проходит по документу слева направо, по одному сегменту на уровень.
// Отсутствующий сегмент возвращается как types.FieldNotFound с именем этого сегмента.
func Lookup(root types.Table, segments []string) (types.Value, error) {
	var cur types.Value = root
	for _, seg := range segments {
		next, ok := child(cur, seg)
		if !ok {
			return nil, types.NewFieldNotFound(seg)
		}
		cur = next
	}
	return cur, nil
}

// child возвращает дочерний элемент таблицы по ключу или элемент массива по индексу
func child(v types.Value, seg string) (types.Value, bool) {
	switch node := v.(type) {
	case types.Table:
		next, ok := node[seg]
		return next, ok
	case types.Array:
		i, ok := parseIndex(seg)
		if !ok || i >= len(node) {
			return nil, false
		}
		return node[i], true
	default:
		return nil, false
	}
}

// parseIndex принимает только десятичные неотрицательные индексы без знака
func parseIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return i, true
}
