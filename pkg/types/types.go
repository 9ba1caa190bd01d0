package types

import "time"

// Kind представляет тип значения TOML (закрытый набор)
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindDatetime
	KindArray
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDatetime:
		return "datetime"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Value описывает один узел распарсенного TOML документа.
// Интерфейс закрыт: его реализуют только типы из этого файла.
type Value interface {
	Kind() Kind
	value()
}

type (
	String   string
	Integer  int64
	Float    float64
	Bool     bool
	Datetime struct{ time.Time }
	Array    []Value
	Table    map[string]Value
)

func (String) Kind() Kind   { return KindString }
func (Integer) Kind() Kind  { return KindInteger }
func (Float) Kind() Kind    { return KindFloat }
func (Bool) Kind() Kind     { return KindBool }
func (Datetime) Kind() Kind { return KindDatetime }
func (Array) Kind() Kind    { return KindArray }
func (Table) Kind() Kind    { return KindTable }

func (String) value()   {}
func (Integer) value()  {}
func (Float) value()    {}
func (Bool) value()     {}
func (Datetime) value() {}
func (Array) value()    {}
func (Table) value()    {}
