// Package ghaction запускает readtoml как шаг GitHub Actions: входы читаются
// из переменных INPUT_*, выходы пишутся в файл $GITHUB_OUTPUT, ошибки
// сообщаются командой ::error::.
package ghaction

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	kenv "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/vovanwin/readtoml/internal/action"
	"github.com/vovanwin/readtoml/internal/logger"
)

const (
	inputPrefix     = "INPUT_"
	delimiterPrefix = "ghadelimiter_"
)

var _ action.Host = (*Runner)(nil)

// Options настройки Runner
type Options struct {
	// Metadata даёт значения входов по умолчанию (необязательно)
	Metadata *Metadata
	// OutputPath путь к $GITHUB_OUTPUT; пустой включает устаревшую команду set-output
	OutputPath string
	// Stdout куда пишутся workflow команды
	Stdout io.Writer
}

// Runner реализует action.Host поверх окружения GitHub Actions runner
type Runner struct {
	inputs     *koanf.Koanf
	meta       *Metadata
	outputPath string
	stdout     io.Writer
	failed     bool
}

// NewRunner один раз считывает переменные INPUT_* из окружения процесса
func NewRunner(opts Options) (*Runner, error) {
	k := koanf.New(".")
	err := k.Load(kenv.Provider(inputPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, inputPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading action inputs: %w", err)
	}

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	return &Runner{
		inputs:     k,
		meta:       opts.Metadata,
		outputPath: opts.OutputPath,
		stdout:     opts.Stdout,
	}, nil
}

// GetInput возвращает значение INPUT_<NAME> без пробелов по краям.
// Если оно пустое, берётся default из action.yml, иначе "".
func (r *Runner) GetInput(name string) string {
	key := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	v := strings.TrimSpace(r.inputs.String(key))
	if v != "" {
		return v
	}
	if def := strings.TrimSpace(r.meta.DefaultFor(name)); def != "" {
		logger.Warn("input %q is empty, using default %q from action metadata", name, def)
		return def
	}
	return ""
}

// SetOutput дописывает name/value в $GITHUB_OUTPUT со случайным heredoc разделителем
func (r *Runner) SetOutput(name, value string) error {
	if r.outputPath == "" {
		_, err := fmt.Fprintf(r.stdout, "::set-output name=%s::%s\n", logger.EscapeProperty(name), logger.EscapeData(value))
		return err
	}

	entry, err := heredoc(name, value, delimiterPrefix+uuid.NewString())
	if err != nil {
		return err
	}

	// файл создаёт сам runner, его отсутствие означает сломанное окружение
	f, err := os.OpenFile(r.outputPath, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("unable to open output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("unable to write output %s: %w", name, err)
	}
	return nil
}

// SetFailed пишет команду ::error:: и помечает запуск неуспешным
func (r *Runner) SetFailed(message string) {
	r.failed = true
	fmt.Fprintf(r.stdout, "::error::%s\n", logger.EscapeData(message))
}

// ExitCode возвращает 1 после SetFailed, иначе 0
func (r *Runner) ExitCode() int {
	if r.failed {
		return 1
	}
	return 0
}

func heredoc(name, value, delimiter string) (string, error) {
	if strings.Contains(name, delimiter) {
		return "", fmt.Errorf("unexpected input: name should not contain the delimiter %q", delimiter)
	}
	if strings.Contains(value, delimiter) {
		return "", fmt.Errorf("unexpected input: value should not contain the delimiter %q", delimiter)
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter), nil
}
