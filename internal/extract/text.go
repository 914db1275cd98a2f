package extract

import (
	"io"
	"os"
	"unicode/utf8"
)

// binaryCheckSize is the number of leading bytes inspected for null bytes
// before committing to a full read.
const binaryCheckSize = 8192

// readTextFile reads a plain text file as UTF-8.
//
// The read happens in two passes: the first binaryCheckSize bytes are
// scanned for null bytes so a large binary file is rejected without
// loading it fully, then the whole file is read as one string. A null byte
// in the window fails with BinaryFileError even when the rest of the file
// is pure text.
func readTextFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return "", &NotFoundError{Path: path}
		case os.IsPermission(err):
			return "", &PermissionError{Path: path}
		default:
			return "", &IOError{Path: path, Err: err}
		}
	}
	defer f.Close()

	buf := make([]byte, binaryCheckSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", &IOError{Path: path, Err: err}
	}
	for _, b := range buf[:n] {
		if b == 0 {
			return "", &BinaryFileError{Path: path}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}
