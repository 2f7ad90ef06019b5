// Package yaml loads JSON and YAML documents and provider registry files
// using gopkg.in/yaml.v3.
package yaml

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/robertchinezon/docscheck"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements docscheck.DocumentLoader at compile time.
var _ docscheck.DocumentLoader = (*Loader)(nil)

// Loader loads documents from disk, selecting the parser from a closed set
// of format handlers keyed by file extension. The extension match is
// case-insensitive.
type Loader struct {
	formats map[string]docscheck.Format
}

// NewLoader creates a Loader supporting .json, .yaml and .yml files.
func NewLoader() *Loader {
	yf := yamlFormat{}
	return &Loader{
		formats: map[string]docscheck.Format{
			".json": jsonFormat{},
			".yaml": yf,
			".yml":  yf,
		},
	}
}

// Load reads and parses the document at path.
func (l *Loader) Load(path string) (any, error) {
	format, ok := l.formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, docscheck.Errorf(docscheck.EINVALID,
			"unknown file format %q, supported extensions: .yaml, .yml, .json", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return format.Parse(data)
}

type jsonFormat struct{}

func (jsonFormat) Parse(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

type yamlFormat struct{}

// Parse decodes YAML with the non-executing decoder and normalizes the
// result through a JSON round-trip, so a YAML document and its JSON
// equivalent load to equal in-memory values.
func (yamlFormat) Parse(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var normalized any
	if err := json.Unmarshal(buf, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}
