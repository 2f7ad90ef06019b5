package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DocsDir               string `help:"Documentation root holding reST sources." default:"docs"`
	PackageDir            string `help:"Core source tree scanned for guide references." default:"."`
	ProvidersDir          string `help:"Root scanned for provider.yaml files." default:"providers"`
	DisableProviderChecks bool   `help:"Skip checks that need the provider registry."`
	Verbose               bool   `short:"v" help:"Log check progress to stderr."`
}
