package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("inputs", "inputs", "")
	fs.String("results", "", "")
	fs.Int("jobs", 1, "")
	fs.Bool("verbose", false, "")
	return fs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadConfigFile(t *testing.T) {
	conf := writeFile(t, "aoc.conf", `# puzzle settings

inputs = "my inputs/2020"
results "results #2.csv" # appended to
jobs 3
verbose=true
`)
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--jobs=5"}))
	require.NoError(t, readConfigFile(fs, conf))

	get := func(name string) string { return fs.Lookup(name).Value.String() }
	assert.Equal(t, "my inputs/2020", get("inputs"))
	assert.Equal(t, "results #2.csv", get("results"))
	assert.Equal(t, "5", get("jobs"), "command-line flags take precedence")
	assert.Equal(t, "true", get("verbose"))

	conf = writeFile(t, "aoc.conf", "inputs \"my dir\" # where inputs live\nresults out.csv # appended to\n")
	fs = testFlags()
	require.NoError(t, readConfigFile(fs, conf))
	assert.Equal(t, "my dir", get("inputs"))
	assert.Equal(t, "out.csv", get("results"))
}

func TestReadConfigFileErrors(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"color blue\n", `line 1: unknown setting "color"`},
		{"\njobs = many\n", "line 2: could not set jobs"},
		{"= 3\n", "line 1"},
	}
	for _, tt := range tests {
		err := readConfigFile(testFlags(), writeFile(t, "aoc.conf", tt.content))
		if assert.Error(t, err, tt.content) {
			assert.Contains(t, err.Error(), tt.want)
		}
	}

	err := readConfigFile(testFlags(), filepath.Join(t.TempDir(), "missing.conf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigReader(t *testing.T) {
	cr := newConfigReader(strings.NewReader("  a b  \n# comment\n\nc \"d # e\"\nf # g\n"))
	var lines []string
	for {
		line, err := cr.ReadLine()
		if err != nil {
			break
		}
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"a b", `c "d # e"`, "f"}, lines)
	assert.Equal(t, 5, cr.LineNo)
}
