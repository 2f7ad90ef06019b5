package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/robertchinezon/docscheck"
	main "github.com/robertchinezon/docscheck/cmd/doclint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("clean tree exits cleanly", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		write(t, root, filepath.Join("docs", "index.rst"), "Docs\n====\n")
		write(t, root, filepath.Join("pkg", "ops.go"), "package ops\n")

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{
			"--docs-dir", filepath.Join(root, "docs"),
			"--package-dir", filepath.Join(root, "pkg"),
			"--providers-dir", filepath.Join(root, "providers"),
		}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No documentation build errors found.")
	})

	t.Run("prints every finding and fails", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		write(t, root, filepath.Join("docs", "howto", "operator", "copy.rst"),
			".. _howto/operator:CopyOperator:\n")
		write(t, root, filepath.Join("docs", "style.rst"), ".. code:: python\n")
		write(t, root, filepath.Join("pkg", "copy.go"), `package operators

type CopyOperator struct{}
`)

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{
			"--docs-dir", filepath.Join(root, "docs"),
			"--package-dir", filepath.Join(root, "pkg"),
			"--providers-dir", filepath.Join(root, "providers"),
		}, stdout, &bytes.Buffer{})
		require.Error(t, err)
		assert.Equal(t, docscheck.EINVALID, docscheck.ErrorCode(err))
		assert.Contains(t, docscheck.ErrorMessage(err), "2 documentation build error(s)")
		assert.Contains(t, stdout.String(), "CopyOperator")
		assert.Contains(t, stdout.String(), "style.rst:1:")
	})

	t.Run("provider registry findings are reported", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		write(t, root, filepath.Join("providers", "http", "provider.yaml"),
			"package-name: acme-provider-http\n")
		write(t, root, filepath.Join("providers", "http", "docs", "index.rst"), "Content\n")

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{
			"--docs-dir", filepath.Join(root, "docs"),
			"--package-dir", filepath.Join(root, "pkg"),
			"--providers-dir", filepath.Join(root, "providers"),
		}, stdout, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, stdout.String(), "https://pypi.org/project/acme-provider-http/")
	})

	t.Run("disable-provider-checks skips the registry checks", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		write(t, root, filepath.Join("providers", "http", "provider.yaml"),
			"package-name: acme-provider-http\n")
		write(t, root, filepath.Join("providers", "http", "docs", "index.rst"), "Content\n")

		err := main.NewMain().Run(context.Background(), []string{
			"--docs-dir", filepath.Join(root, "docs"),
			"--package-dir", filepath.Join(root, "pkg"),
			"--providers-dir", filepath.Join(root, "providers"),
			"--disable-provider-checks",
		}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
	})
}
