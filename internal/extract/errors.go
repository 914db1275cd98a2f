package extract

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 marks file contents that could not be decoded as UTF-8.
// It appears as the wrapped cause inside an IOError.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 data")

// NotFoundError reports a path that did not exist at call time.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "file not found: " + e.Path
}

// PermissionError reports that the OS denied access when opening a file.
type PermissionError struct {
	Path string
}

func (e *PermissionError) Error() string {
	return "permission denied: " + e.Path
}

// BinaryFileError reports a null byte found in the binary detection window
// of a file that would otherwise be read as text.
type BinaryFileError struct {
	Path string
}

func (e *BinaryFileError) Error() string {
	return "cannot read binary file: " + e.Path
}

// ExtractionError reports a structural PDF or OCR failure: open/parse
// errors, per-page errors, empty results, or a missing/failed helper.
type ExtractionError struct {
	Path    string
	Message string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from '%s': %s", e.Path, e.Message)
}

// IOError wraps any other read or decode failure with the path it hit.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read file '%s': %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
