package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/robertchinezon/docscheck/cmd/schemacheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, cli *main.CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli,
		kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return parser
}

func TestCLI_SpecFlagsAreMutuallyExclusive(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser := newParser(t, cli)

	_, err := parser.Parse([]string{
		"--spec-file", "schema.json",
		"--spec-url", "https://example.com/schema.json",
		"values.yaml",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--spec-file")
	assert.Contains(t, err.Error(), "--spec-url")
}

func TestCLI_OneSpecFlagIsRequired(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser := newParser(t, cli)

	_, err := parser.Parse([]string{"values.yaml"})
	require.Error(t, err)
}

func TestCLI_FilesAreRequired(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser := newParser(t, cli)

	_, err := parser.Parse([]string{"--spec-file", "schema.json"})
	require.Error(t, err)
}

func TestCLI_ParsesValidArguments(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser := newParser(t, cli)

	_, err := parser.Parse([]string{
		"--spec-file", "schema.json",
		"--enforce-defaults",
		"a.yaml", "b.json",
	})
	require.NoError(t, err)
	assert.Equal(t, "schema.json", cli.SpecFile)
	assert.True(t, cli.EnforceDefaults)
	assert.Equal(t, []string{"a.yaml", "b.json"}, cli.Files)
}
