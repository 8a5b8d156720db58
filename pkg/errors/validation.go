package errors

import (
	"strings"
	"unicode"
)

// ValidateExportName validates the base name of an aggregate export file.
// The same name doubles as the output directory of a split, so it must be a
// usable relative path.
//
// Validation rules:
//   - Name cannot be empty
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateExportName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "export name cannot be empty")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "export name contains invalid control characters")
		}
	}
	for _, part := range strings.FieldsFunc(name, isSeparator) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "export name cannot contain path traversal sequences (..)")
		}
	}
	return nil
}

// ValidateSourceDir validates the directory handed to a combine run.
func ValidateSourceDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidInput, "source directory cannot be empty")
	}
	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "source directory contains invalid characters")
		}
	}
	return nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
