package docscheck

import "context"

// Provider describes one plugin distribution enumerated by the provider
// registry. Doc checks use it to locate per-distribution documentation.
type Provider struct {
	// PackageName is the published distribution name.
	PackageName string `yaml:"package-name"`

	// PackageDir is the root directory of the distribution's sources.
	PackageDir string `yaml:"package-dir"`
}

// Validate returns an error if the provider contains invalid fields.
func (p *Provider) Validate() error {
	if p.PackageName == "" {
		return Errorf(EINVALID, "provider package name required")
	}
	if p.PackageDir == "" {
		return Errorf(EINVALID, "provider package dir required")
	}
	return nil
}

// ProviderRegistry enumerates the plugin distributions whose documentation
// is checked.
type ProviderRegistry interface {
	// Providers returns every known provider.
	Providers(ctx context.Context) ([]Provider, error)
}
