// Package io loads, writes and verifies survey documents on disk.
//
// # Import
//
// Use [ImportDocument] to read a document from a file path, or
// [ReadDocument] to read from any io.Reader:
//
//	snap, err := io.ImportDocument("src/data/survey_data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	survey.Renumber(snap.Root)
//
// A missing file fails with [errors.ErrCodeFileNotFound]; a file that is not
// well-formed JSON fails with [errors.ErrCodeInvalidDocument]. Nothing is
// returned on failure.
//
// # Export
//
// [ExportDocument] overwrites the file in place with the indented encoding
// of the document and a trailing newline. The write is not atomic: a failure
// part way through may leave the file truncated. Callers that need a backup
// must make one before exporting.
//
// # Verify
//
// [VerifyDocument] re-reads a written file and checks that it parses back to
// the tree that was written. A failure here means the writer produced bad
// output and is reported as [errors.ErrCodeVerifyFailed].
//
// [errors.ErrCodeFileNotFound]: github.com/matzehuels/renumber/pkg/errors.ErrCodeFileNotFound
// [errors.ErrCodeInvalidDocument]: github.com/matzehuels/renumber/pkg/errors.ErrCodeInvalidDocument
// [errors.ErrCodeVerifyFailed]: github.com/matzehuels/renumber/pkg/errors.ErrCodeVerifyFailed
package io
