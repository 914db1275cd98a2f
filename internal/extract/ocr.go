package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// helperName is the OCR helper binary invoked as `pbcat-ocr <path>`.
// Success is exit code 0 with the recognized text on stdout; failures
// carry a reason on stderr.
const helperName = "pbcat-ocr"

// OCR extracts text from images and rendered documents.
type OCR interface {
	// ExtractText runs OCR on the file at path.
	ExtractText(path string) (string, error)

	// Available reports whether the backend is ready to use.
	Available() bool
}

// runner invokes the helper with the target path and returns its stdout,
// stderr and exit result. Injected so tests never spawn processes.
type runner func(helper, path string) (stdout, stderr string, err error)

// SystemOCR recognizes text by invoking the external OCR helper. The
// helper is looked up next to the running executable first, then on PATH;
// the probe is repeated on each call.
type SystemOCR struct {
	run runner
}

// NewSystemOCR creates an OCR backend using the pbcat-ocr helper.
func NewSystemOCR() *SystemOCR {
	return &SystemOCR{run: runHelper}
}

func runHelper(helper, path string) (string, string, error) {
	cmd := exec.Command(helper, path)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// findHelper locates the OCR helper binary: first alongside the current
// executable, then via PATH lookup. Returns "" when neither resolves.
func findHelper() string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), helperName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if path, err := exec.LookPath(helperName); err == nil {
		return path
	}
	return ""
}

// Available reports whether the OCR helper can be located.
func (s *SystemOCR) Available() bool {
	return findHelper() != ""
}

// ExtractText runs the OCR helper on the file at path and returns its
// stdout. A missing helper fails fast without invoking anything.
func (s *SystemOCR) ExtractText(path string) (string, error) {
	helper := findHelper()
	if helper == "" {
		return "", &ExtractionError{
			Path:    path,
			Message: "OCR helper '" + helperName + "' not found; install it alongside pbcat",
		}
	}

	stdout, stderr, err := s.run(helper, path)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExtractionError{
				Path:    path,
				Message: "OCR failed: " + strings.TrimSpace(stderr),
			}
		}
		return "", &ExtractionError{
			Path:    path,
			Message: fmt.Sprintf("failed to run OCR helper: %v", err),
		}
	}

	if strings.TrimSpace(stdout) == "" {
		return "", &ExtractionError{
			Path:    path,
			Message: "no recognizable text found",
		}
	}
	return stdout, nil
}

// MockOCR is an OCR test double with canned per-path responses and a fixed
// availability flag.
type MockOCR struct {
	available bool
	responses map[string]mockResponse
}

type mockResponse struct {
	text string
	err  string
}

// NewMockOCR creates a MockOCR with the given availability.
func NewMockOCR(available bool) *MockOCR {
	return &MockOCR{
		available: available,
		responses: make(map[string]mockResponse),
	}
}

// SetText registers successful OCR output for a path.
func (m *MockOCR) SetText(path, text string) {
	m.responses[path] = mockResponse{text: text}
}

// SetError registers a failure message for a path.
func (m *MockOCR) SetError(path, message string) {
	m.responses[path] = mockResponse{err: message}
}

// Available reports the configured availability flag.
func (m *MockOCR) Available() bool {
	return m.available
}

// ExtractText returns the canned response for path, or a failure when the
// path was never registered.
func (m *MockOCR) ExtractText(path string) (string, error) {
	resp, ok := m.responses[path]
	if !ok {
		return "", &ExtractionError{
			Path:    path,
			Message: "no mock response configured",
		}
	}
	if resp.err != "" {
		return "", &ExtractionError{Path: path, Message: resp.err}
	}
	return resp.text, nil
}
