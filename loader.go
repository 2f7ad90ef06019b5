package docscheck

// Format parses one serialization format into its in-memory document
// representation.
type Format interface {
	Parse(data []byte) (any, error)
}

// DocumentLoader loads a document from disk, selecting the parser by file
// extension.
type DocumentLoader interface {
	// Load reads and parses the document at path.
	// Returns EINVALID for unsupported file extensions.
	Load(path string) (any, error)
}
