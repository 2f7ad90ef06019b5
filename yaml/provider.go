package yaml

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/robertchinezon/docscheck"
	"gopkg.in/yaml.v3"
)

// RegistryFilename is the per-distribution metadata file the registry
// looks for.
const RegistryFilename = "provider.yaml"

// Ensure Registry implements docscheck.ProviderRegistry at compile time.
var _ docscheck.ProviderRegistry = (*Registry)(nil)

// Registry enumerates provider distributions by walking a root directory
// for provider.yaml files.
type Registry struct {
	root string
}

// NewRegistry creates a Registry rooted at root.
func NewRegistry(root string) *Registry {
	return &Registry{root: root}
}

// Providers returns every provider described under the root, sorted by
// package name. A missing root yields an empty result.
func (r *Registry) Providers(ctx context.Context) ([]docscheck.Provider, error) {
	if _, err := os.Stat(r.root); os.IsNotExist(err) {
		return nil, nil
	}

	var providers []docscheck.Provider
	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || d.Name() != RegistryFilename {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var p docscheck.Provider
		if err := yaml.Unmarshal(data, &p); err != nil {
			return docscheck.Errorf(docscheck.EINVALID, "malformed %s: %s", path, err)
		}
		// The directory holding the metadata file is the default
		// distribution root.
		if p.PackageDir == "" {
			p.PackageDir = filepath.Dir(path)
		}
		if err := p.Validate(); err != nil {
			return err
		}

		providers = append(providers, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(providers, func(i, j int) bool {
		return providers[i].PackageName < providers[j].PackageName
	})
	return providers, nil
}
