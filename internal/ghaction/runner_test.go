package ghaction

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovanwin/readtoml"
	"github.com/vovanwin/readtoml/internal/action"
	"github.com/vovanwin/readtoml/internal/logger"
)

func newTestRunner(t *testing.T, meta *Metadata, outputPath string) (*Runner, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	r, err := NewRunner(Options{Metadata: meta, OutputPath: outputPath, Stdout: &stdout})
	require.NoError(t, err)
	return r, &stdout
}

func emptyOutputFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "github_output")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

func TestGetInput(t *testing.T) {
	t.Setenv("INPUT_FILE", "  Cargo.toml \n")
	t.Setenv("INPUT_FIELD", "package.version")
	t.Setenv("INPUT_MY_INPUT", "spaced")

	r, _ := newTestRunner(t, nil, "")

	assert.Equal(t, "Cargo.toml", r.GetInput("file"))
	assert.Equal(t, "package.version", r.GetInput("field"))
	assert.Equal(t, "spaced", r.GetInput("my input"))
	assert.Equal(t, "", r.GetInput("absent"))
}

func TestGetInput_MetadataDefault(t *testing.T) {
	t.Setenv("INPUT_FILE", "")
	t.Setenv("INPUT_FIELD", "project.name")

	var logs bytes.Buffer
	logger.SetOutput(&logs)
	logger.SetVerbose(true)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	meta := &Metadata{Inputs: map[string]Input{
		"file":  {Default: "pyproject.toml"},
		"field": {Default: "tool.poetry.name"},
	}}
	r, _ := newTestRunner(t, meta, "")

	assert.Equal(t, "pyproject.toml", r.GetInput("file"))
	assert.Equal(t, "project.name", r.GetInput("field"))
	assert.Equal(t, "", r.GetInput("other"))
	assert.Equal(t, "[WARN] input \"file\" is empty, using default \"pyproject.toml\" from action metadata\n", logs.String())
}

func TestSetOutput_GitHubOutputFile(t *testing.T) {
	path := emptyOutputFile(t)
	r, stdout := newTestRunner(t, nil, path)

	require.NoError(t, r.SetOutput("value", "1.2.3"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	re := regexp.MustCompile(`^value<<(ghadelimiter_[0-9a-f-]{36})\n1\.2\.3\n(ghadelimiter_[0-9a-f-]{36})\n$`)
	m := re.FindStringSubmatch(string(b))
	require.NotNil(t, m, "unexpected output file content: %q", string(b))
	assert.Equal(t, m[1], m[2])
	assert.Empty(t, stdout.String())
	assert.Equal(t, 0, r.ExitCode())
}

func TestSetOutput_AppendsMultiline(t *testing.T) {
	path := emptyOutputFile(t)
	require.NoError(t, os.WriteFile(path, []byte("other<<EOF\nx\nEOF\n"), 0o644))
	r, _ := newTestRunner(t, nil, path)

	require.NoError(t, r.SetOutput("value", "line1\nline2"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `^other<<EOF\nx\nEOF\nvalue<<ghadelimiter_\S+\nline1\nline2\nghadelimiter_\S+\n$`, string(b))
}

func TestSetOutput_MissingFile(t *testing.T) {
	r, _ := newTestRunner(t, nil, filepath.Join(t.TempDir(), "missing"))

	err := r.SetOutput("value", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to open output file")
}

func TestSetOutput_LegacyCommand(t *testing.T) {
	r, stdout := newTestRunner(t, nil, "")

	require.NoError(t, r.SetOutput("value", "a\nb%"))

	assert.Equal(t, "::set-output name=value::a%0Ab%25\n", stdout.String())
}

func TestHeredoc_RejectsDelimiter(t *testing.T) {
	_, err := heredoc("value", "x ghadelimiter_1 y", "ghadelimiter_1")
	require.Error(t, err)

	_, err = heredoc("ghadelimiter_1", "x", "ghadelimiter_1")
	require.Error(t, err)

	s, err := heredoc("value", "x", "D")
	require.NoError(t, err)
	assert.Equal(t, "value<<D\nx\nD\n", s)
}

func TestSetFailed(t *testing.T) {
	r, stdout := newTestRunner(t, nil, "")

	r.SetFailed("File 'nonexistent.toml' not found")

	assert.Equal(t, "::error::File 'nonexistent.toml' not found\n", stdout.String())
	assert.Equal(t, 1, r.ExitCode())
}

func TestRunner_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "file.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`example = { value = "test" }`), 0o644))
	outPath := emptyOutputFile(t)

	t.Setenv("INPUT_FILE", tomlPath)
	t.Setenv("INPUT_FIELD", "example.value")

	r, stdout := newTestRunner(t, nil, outPath)
	require.NoError(t, action.Run(r, readtoml.ReadString))

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Regexp(t, `^value<<ghadelimiter_\S+\ntest\nghadelimiter_\S+\n$`, string(b))
	assert.Empty(t, stdout.String())
	assert.Equal(t, 0, r.ExitCode())
}

func TestRunner_EndToEndMissingFile(t *testing.T) {
	outPath := emptyOutputFile(t)
	t.Setenv("INPUT_FILE", "nonexistent.toml")
	t.Setenv("INPUT_FIELD", "example.value")

	r, stdout := newTestRunner(t, nil, outPath)
	err := action.Run(r, readtoml.ReadString)

	require.Error(t, err)
	assert.Equal(t, "::error::File 'nonexistent.toml' not found\n", stdout.String())
	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Empty(t, b)
	assert.Equal(t, 1, r.ExitCode())
}
