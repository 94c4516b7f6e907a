package io

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/matzehuels/renumber/pkg/errors"
	"github.com/matzehuels/renumber/pkg/survey"
)

// Snapshot is a document together with the bytes it was read from or
// written as.
type Snapshot struct {
	Path   string       // file path, empty for readers
	Root   survey.Value // parsed document
	Size   int          // size of the encoded document in bytes
	Digest string       // hex SHA-256 of the encoded document
}

// ReadDocument reads and parses a whole document from r.
// ReadDocument does not close r.
func ReadDocument(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read document")
	}
	return parse("", data)
}

// ImportDocument reads and parses the document stored at path.
func ImportDocument(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read %s", path)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Snapshot, error) {
	root, err := survey.Parse(data)
	if err != nil {
		if path != "" {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse %s", path)
		}
		return nil, err
	}
	return &Snapshot{
		Path:   path,
		Root:   root,
		Size:   len(data),
		Digest: digest(data),
	}, nil
}

// digest returns the hex SHA-256 of data.
func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
