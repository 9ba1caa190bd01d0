package types

import (
	"errors"
	"fmt"
)

// ErrorKind определяет причину неудачного извлечения поля
type ErrorKind int

const (
	MissingInput ErrorKind = iota
	FileNotFound
	ReadFailed
	SyntaxError
	FieldNotFound
	TypeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case MissingInput:
		return "MissingInput"
	case FileNotFound:
		return "FileNotFound"
	case ReadFailed:
		return "ReadFailed"
	case SyntaxError:
		return "SyntaxError"
	case FieldNotFound:
		return "FieldNotFound"
	case TypeMismatch:
		return "TypeMismatch"
	default:
		return "Unknown"
	}
}

// Error ошибка извлечения поля или проверки входов.
// Subject зависит от Kind: имя входа, путь к файлу, сегмент или полный путь поля.
type Error struct {
	Kind    ErrorKind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case MissingInput:
		return fmt.Sprintf("Input '%s' is required", e.Subject)
	case FileNotFound:
		return fmt.Sprintf("File '%s' not found", e.Subject)
	case ReadFailed:
		return fmt.Sprintf("Failed to read file '%s': %v", e.Subject, e.Err)
	case SyntaxError:
		// диагностику парсера отдаём без изменений
		if e.Err != nil {
			return e.Err.Error()
		}
		return fmt.Sprintf("Invalid TOML in '%s'", e.Subject)
	case FieldNotFound:
		return fmt.Sprintf("Field '%s' not found in the TOML file", e.Subject)
	case TypeMismatch:
		return fmt.Sprintf("Expected a string at '%s', but found a different type", e.Subject)
	default:
		return fmt.Sprintf("unknown error kind %d", int(e.Kind))
	}
}

func (e *Error) Unwrap() error { return e.Err }

func NewMissingInput(name string) *Error { return &Error{Kind: MissingInput, Subject: name} }

func NewFileNotFound(path string) *Error { return &Error{Kind: FileNotFound, Subject: path} }

func NewReadFailed(path string, err error) *Error {
	return &Error{Kind: ReadFailed, Subject: path, Err: err}
}

func NewSyntaxError(path string, err error) *Error {
	return &Error{Kind: SyntaxError, Subject: path, Err: err}
}

func NewFieldNotFound(segment string) *Error { return &Error{Kind: FieldNotFound, Subject: segment} }

func NewTypeMismatch(fieldPath string) *Error { return &Error{Kind: TypeMismatch, Subject: fieldPath} }

// KindOf возвращает ErrorKind из цепочки err, если он там есть
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
