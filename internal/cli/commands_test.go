package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prettydoc/internal/cli"
	"github.com/yaklabco/prettydoc/internal/configloader"
	"github.com/yaklabco/prettydoc/pkg/docfile"
	"github.com/yaklabco/prettydoc/pkg/fsutil"
)

const printlnDocument = `width: 5
document:
  cat:
    - "println("
    - align:
        spread: [lol, very long thing, toto]
    - ")"
`

const printlnBroken = "println(lol,\n" +
	"        very long thing,\n" +
	"        toto)\n"

// execute runs the root command with args and returns its output streams.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs(append([]string{"--color", "never"}, args...))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRender(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "call.yaml", printlnDocument)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"explicit width", []string{"render", "-w", "80", path}, "println(lol, very long thing, toto)\n"},
		{"narrow width", []string{"render", "--width", "5", path}, printlnBroken},
		{"fits exactly", []string{"render", "-w", "35", path}, "println(lol, very long thing, toto)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRender_FormatsAndStdin(t *testing.T) {
	t.Parallel()

	jsonPath := writeFile(t, "sum.json", `{"document": {"group": {"lined": ["1 +", "2"]}}}`)
	tomlPath := writeFile(t, "sum.toml", "[document]\nspaced = [\"1\", \"+\", \"2\"]\n")

	stdout, _, err := execute(t, "", "render", "-w", "2", jsonPath, tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "1 +\n2\n1 + 2\n", stdout)

	stdout, _, err = execute(t, "document: {lined: [a, b]}\n", "render", "-w", "80", "-")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", stdout)

	stdout, _, err = execute(t, `{"document": "x"}`, "render", "--format", "json", "-w", "80", "-")
	require.NoError(t, err)
	assert.Equal(t, "x\n", stdout)
}

func TestRender_Output(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "call.yaml", printlnDocument)
	output := filepath.Join(t.TempDir(), "out.txt")

	stdout, _, err := execute(t, "", "render", "-w", "5", "-o", output, path)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, printlnBroken, string(content))

	_, _, err = execute(t, "", "render", "-o", output, path, path)
	require.Error(t, err)
}

func TestRender_Check(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "long.yaml", "document: abcdefghij\n")

	stdout, stderr, err := execute(t, "", "render", "--check", "-w", "4", path)
	require.ErrorIs(t, err, cli.ErrOverflow)
	assert.Equal(t, cli.ExitOverflow, cli.ExitCode(err))
	assert.Equal(t, "abcdefghij\n", stdout, "output is written before the check fails")
	assert.Contains(t, stderr, "10 columns  (6 over)")

	_, _, err = execute(t, "", "render", "--check", "-w", "10", path)
	require.NoError(t, err)
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	invalid := writeFile(t, "bad.yaml", "document: {nest: {indent: x, body: a}}\n")
	unknown := writeFile(t, "doc.txt", "document: a\n")

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"invalid node", []string{"render", invalid}, cli.ExitDataError},
		{"unknown extension", []string{"render", unknown}, cli.ExitDataError},
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "nope.yaml")}, cli.ExitIOError},
		{"invalid measure", []string{"render", "--measure", "graphemes", invalid}, cli.ExitConfigError},
		{"no arguments", []string{"render"}, cli.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err), "error: %v", err)
		})
	}
}

func TestReflow(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "notes.md", "one two three four\nfive six\n")

	stdout, _, err := execute(t, "", "reflow", "-w", "10", path)
	require.NoError(t, err)
	assert.Equal(t, "one two\nthree four\nfive six\n", stdout)

	stdout, _, err = execute(t, "a b\nc\n", "reflow", "-w", "80", "-")
	require.NoError(t, err)
	assert.Equal(t, "a b c\n", stdout)
}

func TestReflow_WriteWithBackup(t *testing.T) {
	t.Parallel()

	original := "one two three four\nfive six\n"
	path := writeFile(t, "notes.md", original)

	_, _, err := execute(t, "", "reflow", "-w", "80", "--write", "--backup", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one two three four five six\n", string(content))

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, original, string(backup))
}

func TestReflow_FlagErrors(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "notes.md", "text\n")

	_, _, err := execute(t, "", "reflow", "--backup", path)
	require.Error(t, err)

	_, _, err = execute(t, "", "reflow", "--write", "-o", "out.md", path)
	require.Error(t, err)

	_, _, err = execute(t, "text\n", "reflow", "--write", "-")
	require.Error(t, err)
}

func TestCheck_Text(t *testing.T) {
	t.Parallel()

	wide := writeFile(t, "wide.yaml", "document: {lined: [abc, abcdefg]}\n")
	notes := writeFile(t, "notes.md", "short words only\n")

	stdout, _, err := execute(t, "", "check", "-w", "5", "--stats", wide, notes)
	require.ErrorIs(t, err, cli.ErrOverflow)

	assert.Contains(t, stdout, "wide.yaml  width 5, 2 lines, widest 7")
	assert.Contains(t, stdout, "wide.yaml:2  7 columns  (2 over)")
	assert.Contains(t, stdout, "Nodes:")
	assert.Contains(t, stdout, "1 overflowing line in 1 file (2 files checked, widest line 7)")
	assert.NotContains(t, stdout, "notes.md", "the reflowed paragraph fits")
}

func TestCheck_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "fits.yaml", "width: 20\ndocument: {group: {lined: [a, b]}}\n")

	stdout, _, err := execute(t, "", "check", "--report", "json", path)
	require.NoError(t, err)

	var output struct {
		Files []struct {
			Path  string `json:"path"`
			Width int    `json:"width"`
			Lines int    `json:"lines"`
		} `json:"files"`
		Summary struct {
			Overflows int `json:"overflows"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	require.Len(t, output.Files, 1)
	assert.Equal(t, path, output.Files[0].Path)
	assert.Equal(t, 20, output.Files[0].Width, "width hint of the file")
	assert.Equal(t, 1, output.Files[0].Lines)
	assert.Zero(t, output.Summary.Overflows)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "pair.yaml", "document: {cat: [a, b]}\n")

	stdout, _, err := execute(t, "", "inspect", "-w", "80", path)
	require.NoError(t, err)
	assert.Equal(t, "cat(text(\"a\"), text(\"b\"))\n", stdout)
}

func TestDemo(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "demo", "spread", "--widths", "35,5")
	require.NoError(t, err)

	want := "spread (width 35)\n" +
		"----+----1----+----2----+----3----+\n" +
		"println(lol, very long thing, toto)\n" +
		"\n" +
		"spread (width 5)\n" +
		"----+\n" +
		strings.TrimSuffix(printlnBroken, "\n") + "\n" +
		"\n"
	assert.Equal(t, want, stdout)
}

func TestDemo_AllScenarios(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "demo", "--widths", "40")
	require.NoError(t, err)

	for _, name := range []string{"spaces", "soft-line", "group", "hard-line", "nest-fixed", "nest-aligned", "fill"} {
		assert.Contains(t, stdout, name+" (width 40)\n")
	}
	assert.Contains(t, stdout, "math.min(\n  1,\n  2,\n  3\n) + 10\n")
	assert.Contains(t, stdout, "math.min(\n         1,\n         2,\n         3\n) + 10\n")

	_, _, err = execute(t, "", "demo", "nope")
	require.Error(t, err)

	_, _, err = execute(t, "", "demo", "--widths", "0")
	require.Error(t, err)
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".prettydoc.yml")

	stdout, _, err := execute(t, "", "init", "--width", "72", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "created configuration file")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "\nwidth: 72\n")

	_, _, err = execute(t, "", "init", "--output", path)
	require.Error(t, err, "existing file needs --force")

	_, _, err = execute(t, "", "init", "--force", "--output", path)
	require.NoError(t, err)

	_, _, err = execute(t, "", "init", "--flavor", "asciidoc", "--output", filepath.Join(t.TempDir(), "x.yml"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestExplicitConfigSetsWidth(t *testing.T) {
	t.Parallel()

	configPath := writeFile(t, "config.yml", "width: 5\n")
	path := writeFile(t, "call.yaml", "document:\n  cat: [\"println(\", {align: {spread: [lol, very long thing, toto]}}, \")\"]\n")

	stdout, _, err := execute(t, "", "--config", configPath, "render", path)
	require.NoError(t, err)
	assert.Equal(t, printlnBroken, stdout)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"overflow", fmt.Errorf("wrapped: %w", cli.ErrOverflow), cli.ExitOverflow},
		{"validation", fmt.Errorf("load: %w", &configloader.ValidationError{Field: "width"}), cli.ExitConfigError},
		{"invalid node", fmt.Errorf("a.yaml: %w", docfile.ErrInvalidNode), cli.ExitDataError},
		{"unknown format", docfile.ErrUnknownFormat, cli.ExitDataError},
		{"not found", fmt.Errorf("%w: a", fsutil.ErrNotFound), cli.ExitIOError},
		{"modified", fsutil.ErrModified, cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}
