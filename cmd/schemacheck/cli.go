package main

// CLI defines the command-line interface structure for Kong. The spec is
// named by exactly one of --spec-file and --spec-url; Kong rejects the
// ambiguous combination before any file I/O happens.
type CLI struct {
	SpecFile        string   `help:"The path to the specification." xor:"spec" required:""`
	SpecURL         string   `help:"The URL to the specification." xor:"spec" required:""`
	EnforceDefaults bool     `help:"Values must match the default in the schema."`
	Verbose         bool     `short:"v" help:"Log spec fetches to stderr."`
	Files           []string `arg:"" name:"file" help:"Files to validate against the specification."`
}
