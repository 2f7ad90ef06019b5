// Command doclint runs the documentation build checks and reports every
// violation found. It never stops at the first finding: one run prints all
// problems, then exits nonzero if there were any.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/robertchinezon/docscheck"
	"github.com/robertchinezon/docscheck/lint"
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
	// Providers overrides the provider registry built from the
	// --providers-dir flag. Tests inject a mock here.
	Providers docscheck.ProviderRegistry
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doclint"),
		kong.Description("Checks documentation sources for missing cross-references and stylistic violations"),
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

	providers := m.Providers
	if providers == nil {
		providers = yaml.NewRegistry(cli.ProvidersDir)
	}
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		providers = dcslog.NewLoggingProviderRegistry(providers, logger)
	}

	checker := &lint.Checker{
		DocsDir:    cli.DocsDir,
		PackageDir: cli.PackageDir,
		Providers:  providers,
	}

	buildErrors, err := checker.RunAll(ctx, cli.DisableProviderChecks)
	if err != nil {
		return err
	}

	for _, be := range buildErrors {
		fmt.Fprintln(stdout, be)
	}
	if len(buildErrors) > 0 {
		return docscheck.Errorf(docscheck.EINVALID, "found %d documentation build error(s)", len(buildErrors))
	}

	fmt.Fprintln(stdout, "No documentation build errors found.")
	return nil
}
