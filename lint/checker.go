// Package lint implements the documentation build checks. Checks collect
// violations as docscheck.BuildError values and never abort early, so one
// run reports every problem found.
package lint

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/robertchinezon/docscheck"
	"github.com/robertchinezon/docscheck/goast"
	"github.com/robertchinezon/docscheck/rst"
)

// Markers recognized by the guide reference check. A deprecated type, or a
// wholly deprecated file, is exempt from the guide link requirement.
const (
	typeDeprecatedMarker = "This class is deprecated."
	goDeprecatedMarker   = "Deprecated:"
)

var (
	// codeDirective matches the plain code directive, which should be
	// code-block instead.
	codeDirective = regexp.MustCompile(`^.. code::`)

	// literalIncludeExample matches literalinclude directives pointing
	// into example or system-test trees, which should be exampleinclude.
	literalIncludeExample = regexp.MustCompile(`literalinclude::.+(?:/examples/|tests/system/)`)
)

// Checker runs the documentation build checks over one source tree.
type Checker struct {
	// DocsDir is the documentation root holding reST sources.
	DocsDir string

	// PackageDir is the core source tree scanned for guide references.
	PackageDir string

	// Providers enumerates plugin distributions whose docs and sources
	// are checked too. Nil disables the per-provider passes.
	Providers docscheck.ProviderRegistry
}

// RunAll runs every check and accumulates all findings.
// disableProviderChecks skips the checks that need the provider registry.
func (c *Checker) RunAll(ctx context.Context, disableProviderChecks bool) ([]docscheck.BuildError, error) {
	var errs []docscheck.BuildError

	guideErrs, err := c.CheckGuideReferences(ctx)
	if err != nil {
		return nil, err
	}
	errs = append(errs, guideErrs...)

	codeErrs, err := c.CheckEnforceCodeBlock()
	if err != nil {
		return nil, err
	}
	errs = append(errs, codeErrs...)

	includeErrs, err := c.CheckExampleInclude()
	if err != nil {
		return nil, err
	}
	errs = append(errs, includeErrs...)

	if !disableProviderChecks {
		tocErrs, err := c.CheckPyPIToc(ctx)
		if err != nil {
			return nil, err
		}
		errs = append(errs, tocErrs...)
	}

	return errs, nil
}

// CheckGuideReferences verifies that every type with a published guide
// links back to it from its doc comment. The core tree is checked against
// the howto/operator guides; each provider's tree is checked against its
// own operator guides.
func (c *Checker) CheckGuideReferences(ctx context.Context) ([]docscheck.BuildError, error) {
	var errs []docscheck.BuildError

	anchors, err := rst.FindGuideAnchors(filepath.Join(c.DocsDir, "howto", "operator"))
	if err != nil {
		return nil, err
	}
	sources, err := goSources(c.PackageDir)
	if err != nil {
		return nil, err
	}
	coreErrs, err := checkMissingGuideReferences(anchors, sources)
	if err != nil {
		return nil, err
	}
	errs = append(errs, coreErrs...)

	if c.Providers == nil {
		return errs, nil
	}

	providers, err := c.Providers.Providers(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range providers {
		anchors, err := rst.FindGuideAnchors(
			filepath.Join(c.DocsDir, p.PackageName, "operators"),
			filepath.Join(c.DocsDir, p.PackageName, "operators.rst"),
		)
		if err != nil {
			return nil, err
		}
		sources, err := goSources(p.PackageDir)
		if err != nil {
			return nil, err
		}
		providerErrs, err := checkMissingGuideReferences(anchors, sources)
		if err != nil {
			return nil, err
		}
		errs = append(errs, providerErrs...)
	}

	return errs, nil
}

// CheckEnforceCodeBlock flags ".. code::" directives in the docs tree.
func (c *Checker) CheckEnforceCodeBlock() ([]docscheck.BuildError, error) {
	return c.checkDocsNotContain(codeDirective,
		"We recommend using the code-block directive instead of the code directive. "+
			"The code-block directive is more feature-full.")
}

// CheckExampleInclude flags literalinclude directives pointing into example
// trees; the exampleinclude directive keeps those snippets in sync.
func (c *Checker) CheckExampleInclude() ([]docscheck.BuildError, error) {
	return c.checkDocsNotContain(literalIncludeExample,
		"The literalinclude directive is prohibited for example files.\n"+
			"You should use the exampleinclude directive to include example files.")
}

func (c *Checker) checkDocsNotContain(pattern *regexp.Regexp, message string) ([]docscheck.BuildError, error) {
	docFiles, err := rst.Files(c.DocsDir, rst.Ext)
	if err != nil {
		return nil, err
	}

	var errs []docscheck.BuildError
	for _, path := range docFiles {
		if be := rst.AssertFileNotContains(path, pattern, message); be != nil {
			errs = append(errs, *be)
		}
	}
	return errs, nil
}

// CheckPyPIToc verifies that each provider's docs index links its PyPI
// page in the table of contents.
func (c *Checker) CheckPyPIToc(ctx context.Context) ([]docscheck.BuildError, error) {
	if c.Providers == nil {
		return nil, nil
	}

	providers, err := c.Providers.Providers(ctx)
	if err != nil {
		return nil, err
	}

	var errs []docscheck.BuildError
	for _, p := range providers {
		indexPath := filepath.Join(p.PackageDir, "docs", "index.rst")
		expected := fmt.Sprintf("PyPI Repository <https://pypi.org/project/%s/>", p.PackageName)
		message := fmt.Sprintf(
			"A link to the PyPI page is missing from the table of contents. Can you please add it?\n\n    %s",
			expected)
		if be := rst.AssertFileContains(indexPath, regexp.MustCompile(regexp.QuoteMeta(expected)), message); be != nil {
			errs = append(errs, *be)
		}
	}
	return errs, nil
}

// checkMissingGuideReferences checks each source file's types against the
// known guide anchors. A substring scan filters out files that never
// mention a matching name before paying for a parse; the AST lookup is
// authoritative.
func checkMissingGuideReferences(anchors map[string]struct{}, sourcePaths []string) ([]docscheck.BuildError, error) {
	names := make([]string, 0, len(anchors))
	for name := range anchors {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []docscheck.BuildError
	for _, path := range sourcePaths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		content := string(src)
		if strings.Contains(content, goast.ModuleDeprecatedMarker) {
			continue
		}

		var parsed *goast.File
		for _, name := range names {
			// Over-approximate: a bare name match catches declarations
			// inside grouped type blocks too. The AST lookup below is
			// what decides.
			if !strings.Contains(content, name) {
				continue
			}
			if parsed == nil {
				parsed, err = goast.ParseFile(path, src)
				if err != nil {
					return nil, err
				}
			}

			def, ok := parsed.Types[name]
			if !ok {
				continue
			}
			if strings.Contains(def.Doc, typeDeprecatedMarker) || strings.Contains(def.Doc, goDeprecatedMarker) {
				continue
			}
			if strings.Contains(def.Doc, guideRef(name)) {
				continue
			}

			errs = append(errs, missingGuideError(path, def.Line, name))
		}
	}
	return errs, nil
}

// goSources returns every non-test Go file under root. A missing root
// yields an empty result.
func goSources(root string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".go") && !strings.HasSuffix(d.Name(), "_test.go") {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func guideRef(name string) string {
	return fmt.Sprintf(":ref:`howto/operator:%s`", name)
}

func missingGuideError(path string, line int, name string) docscheck.BuildError {
	return docscheck.BuildError{
		FilePath: path,
		LineNo:   line,
		Message: fmt.Sprintf(
			"Link to the guide is missing in the description of %s.\n"+
				"Please add a link to the guide to the doc comment in the following form:\n"+
				"\n"+
				"// For more information on how to use this operator, take a look at the guide:\n"+
				"// %s\n",
			name, guideRef(name)),
	}
}
