package action

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovanwin/readtoml"
	"github.com/vovanwin/readtoml/pkg/types"
)

type fakeHost struct {
	inputs    map[string]string
	outputs   map[string]string
	failures  []string
	outputErr error
}

func newFakeHost(inputs map[string]string) *fakeHost {
	return &fakeHost{inputs: inputs, outputs: map[string]string{}}
}

func (h *fakeHost) GetInput(name string) string { return h.inputs[name] }

func (h *fakeHost) SetOutput(name, value string) error {
	if h.outputErr != nil {
		return h.outputErr
	}
	h.outputs[name] = value
	return nil
}

func (h *fakeHost) SetFailed(message string) { h.failures = append(h.failures, message) }

func writeTOML(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.toml")
	require.NoError(t, os.WriteFile(path, []byte(`example = { value = "test" }`), 0o644))
	return path
}

func TestRun_ProcessesValidFileAndField(t *testing.T) {
	host := newFakeHost(map[string]string{InputFile: writeTOML(t), InputField: "example.value"})

	err := Run(host, readtoml.ReadString)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"value": "test"}, host.outputs)
	assert.Empty(t, host.failures)
}

func TestRun_NonexistentFile(t *testing.T) {
	host := newFakeHost(map[string]string{InputFile: "nonexistent.toml", InputField: "example.value"})

	err := Run(host, readtoml.ReadString)

	require.Error(t, err)
	assert.Equal(t, []string{"File 'nonexistent.toml' not found"}, host.failures)
	assert.Empty(t, host.outputs)
}

func TestRun_MissingInputs(t *testing.T) {
	tests := []struct {
		name     string
		inputs   map[string]string
		expected string
	}{
		{"file missing", map[string]string{InputField: "example.value"}, "Input 'file' is required"},
		{"field missing", map[string]string{InputFile: "file.toml"}, "Input 'field' is required"},
		{"both missing reports file first", map[string]string{}, "Input 'file' is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newFakeHost(tt.inputs)
			called := false
			extract := func(string, string) (string, error) {
				called = true
				return "", nil
			}

			err := Run(host, extract)

			require.Error(t, err)
			kind, _ := types.KindOf(err)
			assert.Equal(t, types.MissingInput, kind)
			assert.False(t, called, "extraction must not be attempted")
			assert.Equal(t, []string{tt.expected}, host.failures)
			assert.Empty(t, host.outputs)
		})
	}
}

func TestRun_ForwardsExtractorMessageUnchanged(t *testing.T) {
	host := newFakeHost(map[string]string{InputFile: "a.toml", InputField: "x"})
	extract := func(string, string) (string, error) {
		return "", errors.New("toml: line 1: something odd")
	}

	err := Run(host, extract)

	require.Error(t, err)
	assert.Equal(t, []string{"toml: line 1: something odd"}, host.failures)
}

func TestRun_OutputWriteFailure(t *testing.T) {
	host := newFakeHost(map[string]string{InputFile: writeTOML(t), InputField: "example.value"})
	host.outputErr = errors.New("write output: disk full")

	err := Run(host, readtoml.ReadString)

	require.Error(t, err)
	assert.Equal(t, []string{"write output: disk full"}, host.failures)
	assert.Empty(t, host.outputs)
}

func TestRun_PassesInputsThrough(t *testing.T) {
	host := newFakeHost(map[string]string{InputFile: "cfg.toml", InputField: "a.b"})
	var gotFile, gotField string
	extract := func(file, field string) (string, error) {
		gotFile, gotField = file, field
		return "v", nil
	}

	require.NoError(t, Run(host, extract))
	assert.Equal(t, "cfg.toml", gotFile)
	assert.Equal(t, "a.b", gotField)
	assert.Equal(t, "v", host.outputs[OutputValue])
}
