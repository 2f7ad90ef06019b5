// Command schemacheck validates JSON and YAML files against a JSON Schema
// specification loaded from a local path or a cached URL.
//
// Exit code 0 means every file validated cleanly; any validation error or
// configuration problem exits 1. Validation does not stop at the first
// invalid file: every file is checked and every error printed before the
// final status is decided.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/robertchinezon/docscheck"
	"github.com/robertchinezon/docscheck/fs"
	dchttp "github.com/robertchinezon/docscheck/http"
	"github.com/robertchinezon/docscheck/jsonschema"
	dcslog "github.com/robertchinezon/docscheck/slog"
	"github.com/robertchinezon/docscheck/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// CacheDir is where fetched specs and their validation tokens live.
	// Set before calling Run().
	CacheDir string

	// Fetcher retrieves remote specs. Constructed from CacheDir when nil;
	// tests inject a mock here.
	Fetcher docscheck.SpecFetcher

	// Loader loads instance documents by extension.
	Loader docscheck.DocumentLoader

	// Factory compiles schema documents into validators.
	Factory docscheck.ValidatorFactory
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir: defaultCacheDir(),
		Loader:   yaml.NewLoader(),
		Factory:  jsonschema.NewFactory(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("schemacheck"),
		kong.Description("Validates files against a JSON Schema specification"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	schema, err := m.loadSpec(ctx, cli, stderr)
	if err != nil {
		return err
	}

	validator, err := m.Factory.Build(schema, cli.EnforceDefaults)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range cli.Files {
		fmt.Fprintln(stdout, "Processing file:", path)
		instance, err := m.Loader.Load(path)
		if err != nil {
			return err
		}
		issues, err := validator.Validate(instance)
		if err != nil {
			return err
		}
		for _, issue := range issues {
			fmt.Fprintln(stdout, issue)
		}
		if len(issues) > 0 {
			failed++
		}
	}

	if failed > 0 {
		return docscheck.Errorf(docscheck.EINVALID, "validation failed for %d of %d file(s)", failed, len(cli.Files))
	}
	return nil
}

// loadSpec reads the schema from a local path or the cached remote copy.
// The spec body itself is always JSON.
func (m *Main) loadSpec(ctx context.Context, cli *CLI, stderr io.Writer) (any, error) {
	path := cli.SpecFile
	if cli.SpecURL != "" {
		fetcher := m.Fetcher
		if fetcher == nil {
			fetcher = dchttp.NewFetcher(m.CacheDir, fs.NewTokenStore(m.CacheDir))
		}
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = dcslog.NewLoggingSpecFetcher(fetcher, logger)
		}
		var err error
		path, err = fetcher.Fetch(ctx, cli.SpecURL)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, docscheck.Errorf(docscheck.EINVALID, "malformed schema %s: %s", path, err)
	}
	return schema, nil
}

// defaultCacheDir returns .build/cache under the working directory, which
// is the project root in CI usage.
func defaultCacheDir() string {
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}
	return filepath.Join(root, ".build", "cache")
}
