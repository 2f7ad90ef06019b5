package mock

import "github.com/robertchinezon/docscheck"

var _ docscheck.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of docscheck.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(path string) (any, error)
}

func (l *DocumentLoader) Load(path string) (any, error) {
	return l.LoadFn(path)
}
