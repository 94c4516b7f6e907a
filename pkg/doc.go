// Package pkg holds the libraries behind the renumber command.
//
// A run flows through the packages in order:
//
//	survey_data.json
//	      ↓
//	[io] ImportDocument (load and parse)
//	      ↓
//	[survey] Renumber (rewrite ids and questionId references)
//	      ↓
//	[io] ExportDocument, VerifyDocument (write back, re-parse)
//
// [pipeline] runs those stages with logging and timing; [errors] defines the
// error codes every stage reports with.
//
// [io]: github.com/matzehuels/renumber/pkg/io
// [survey]: github.com/matzehuels/renumber/pkg/survey
// [pipeline]: github.com/matzehuels/renumber/pkg/pipeline
// [errors]: github.com/matzehuels/renumber/pkg/errors
package pkg
