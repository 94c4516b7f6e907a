package io

import (
	"io"
	"os"

	"github.com/matzehuels/renumber/pkg/errors"
	"github.com/matzehuels/renumber/pkg/survey"
)

// DefaultIndent is the number of spaces per nesting level in written documents.
const DefaultIndent = 2

// WriteDocument encodes root with the given indent and writes it to w,
// followed by a newline. It returns the written bytes' snapshot.
func WriteDocument(root survey.Value, w io.Writer, indent int) (*Snapshot, error) {
	data, err := survey.Marshal(root, indent)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "encode document")
	}
	if _, err := w.Write(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "write document")
	}
	return &Snapshot{Root: root, Size: len(data), Digest: digest(data)}, nil
}

// ExportDocument overwrites the file at path with the encoding of root.
// The file keeps its permissions if it exists and is created with mode
// 0644 otherwise.
func ExportDocument(root survey.Value, path string, indent int) (*Snapshot, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}

	snap, err := WriteDocument(root, f, indent)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrap(errors.ErrCodeWriteFailed, cerr, "close %s", path)
	}
	if err != nil {
		return nil, err
	}
	snap.Path = path
	return snap, nil
}

// VerifyDocument re-reads the file at path and checks that it parses to a
// document structurally equal to want.
func VerifyDocument(path string, want survey.Value) (*Snapshot, error) {
	snap, err := ImportDocument(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeVerifyFailed, err, "re-read %s", path)
	}
	if !survey.Equal(snap.Root, want) {
		return nil, errors.New(errors.ErrCodeVerifyFailed, "%s does not match the document that was written", path)
	}
	return snap, nil
}
