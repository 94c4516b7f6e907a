package errors

import (
	"strings"
	"unicode"
)

// maxPathLength bounds document paths accepted from flags and config files.
const maxPathLength = 4096

// ValidatePath validates a document path given on the command line or in a
// config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must name a .json file
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		return New(ErrCodeInvalidPath, "path must name a .json file: %q", path)
	}

	return nil
}

// ValidateIndent validates the number of spaces used to indent output.
func ValidateIndent(n int) error {
	if n < 0 || n > 8 {
		return New(ErrCodeInvalidInput, "indent must be between 0 and 8, got %d", n)
	}
	return nil
}
