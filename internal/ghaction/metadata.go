package ghaction

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovanwin/readtoml/internal/action"
)

// Metadata часть action.yml, которая нужна при запуске
type Metadata struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Author      string            `yaml:"author"`
	Inputs      map[string]Input  `yaml:"inputs"`
	Outputs     map[string]Output `yaml:"outputs"`
	Runs        Runs              `yaml:"runs"`
}

type Input struct {
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
	Default     string `yaml:"default"`
}

type Output struct {
	Description string `yaml:"description"`
}

type Runs struct {
	Using string   `yaml:"using"`
	Image string   `yaml:"image"`
	Main  string   `yaml:"main"`
	Args  []string `yaml:"args"`
}

// ParseMetadata декодирует содержимое action.yml
func ParseMetadata(b []byte) (*Metadata, error) {
	var m Metadata
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decoding action metadata: %w", err)
	}
	return &m, nil
}

// LoadMetadata читает и декодирует файл action.yml
func LoadMetadata(path string) (*Metadata, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading action metadata %s: %w", path, err)
	}
	m, err := ParseMetadata(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate проверяет, что объявлены входы file, field и выход value
func (m *Metadata) Validate() error {
	for _, name := range []string{action.InputFile, action.InputField} {
		if _, ok := m.Inputs[name]; !ok {
			return fmt.Errorf("action metadata: input %q is not declared", name)
		}
	}
	if _, ok := m.Outputs[action.OutputValue]; !ok {
		return fmt.Errorf("action metadata: output %q is not declared", action.OutputValue)
	}
	return nil
}

// DefaultFor возвращает объявленный default для входа или ""
func (m *Metadata) DefaultFor(name string) string {
	if m == nil {
		return ""
	}
	return m.Inputs[name].Default
}
