// Package extract turns a file of unknown type into plain text.
//
// A file is classified once by extension and routed to one of three
// readers: plain text with binary detection, PDF text extraction with an
// OCR fallback for scanned documents, or OCR directly for images. Each
// call returns either the complete extracted text or a typed error; there
// are no partial results.
package extract

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Classification is the category assigned to a file by its extension.
type Classification string

const (
	ClassText  Classification = "text"
	ClassPDF   Classification = "pdf"
	ClassImage Classification = "image"
)

// imageExtensions are the extensions routed to OCR. Comparison is
// case-insensitive.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".tif":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".heic": true,
	".heif": true,
}

// Classify returns the classification for a path. Unknown or missing
// extensions classify as text.
func Classify(path string) Classification {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return ClassPDF
	case imageExtensions[ext]:
		return ClassImage
	default:
		return ClassText
	}
}

// Config configures an Extractor.
type Config struct {
	// OCR handles images and scanned PDFs. Defaults to the system OCR
	// helper.
	OCR OCR

	// OpenDocument opens PDF files. Defaults to the bundled PDF parser.
	OpenDocument DocumentOpener

	// Logger for debug messages.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.OCR == nil {
		c.OCR = NewSystemOCR()
	}
	if c.OpenDocument == nil {
		c.OpenDocument = openPDF
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Extractor is the extraction pipeline.
type Extractor struct {
	ocr     OCR
	openDoc DocumentOpener
	logger  *slog.Logger
}

// New creates an Extractor with the given configuration.
func New(cfg Config) *Extractor {
	cfg.defaults()
	return &Extractor{
		ocr:     cfg.OCR,
		openDoc: cfg.OpenDocument,
		logger:  cfg.Logger,
	}
}

// Extract reads the full text content of the file at path. The result is
// the complete extracted text, or a typed error: NotFoundError,
// PermissionError, BinaryFileError, ExtractionError or IOError.
func (e *Extractor) Extract(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", &NotFoundError{Path: path}
	}

	class := Classify(path)
	e.logger.Debug("extracting file", "path", path, "class", class)

	switch class {
	case ClassPDF:
		return e.extractPDF(path)
	case ClassImage:
		return e.extractImage(path)
	default:
		return readTextFile(path)
	}
}

// extractImage routes an image file straight to OCR.
func (e *Extractor) extractImage(path string) (string, error) {
	if !e.ocr.Available() {
		return "", &ExtractionError{
			Path:    path,
			Message: "OCR helper '" + helperName + "' not found; install it alongside pbcat",
		}
	}

	text, err := e.ocr.ExtractText(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{
			Path:    path,
			Message: "image contains no recognizable text",
		}
	}
	return text, nil
}
