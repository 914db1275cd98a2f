package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is an open PDF exposing page-level text extraction. Pages are
// indexed from 0.
type Document interface {
	PageCount() (int, error)
	PageText(page int) (string, error)
	Close() error
}

// DocumentOpener opens a PDF file for extraction. The returned Document is
// owned by the caller for the duration of one extraction and closed before
// the call returns.
type DocumentOpener func(path string) (Document, error)

// extractPDF extracts the embedded text of a PDF, page by page. When the
// document carries no text layer (a scanned PDF), it falls back to OCR on
// the original file: the helper renders the document itself, which for
// multi-page PDFs may cover only the first page.
func (e *Extractor) extractPDF(path string) (string, error) {
	doc, err := e.openDoc(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: err.Error()}
	}
	defer doc.Close()

	pageCount, err := doc.PageCount()
	if err != nil {
		return "", &ExtractionError{Path: path, Message: err.Error()}
	}

	var allText strings.Builder
	for page := 0; page < pageCount; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			return "", &ExtractionError{
				Path:    path,
				Message: fmt.Sprintf("failed to extract page %d: %v", page+1, err),
			}
		}
		if text == "" {
			continue
		}
		if allText.Len() > 0 {
			allText.WriteByte('\n')
		}
		allText.WriteString(text)
	}

	if strings.TrimSpace(allText.String()) != "" {
		return allText.String(), nil
	}

	// No embedded text layer. Whitespace-only documents land here too;
	// trimming is the only emptiness test.
	if !e.ocr.Available() {
		return "", &ExtractionError{
			Path:    path,
			Message: "PDF contains no extractable text and OCR helper '" + helperName + "' is not installed",
		}
	}

	e.logger.Debug("no embedded text, falling back to OCR", "path", path, "pages", pageCount)

	text, err := e.ocr.ExtractText(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{
			Path:    path,
			Message: "PDF contains no recognizable text (OCR found nothing)",
		}
	}
	return text, nil
}

// pdfDocument adapts the ledongthuc/pdf reader to the Document interface.
type pdfDocument struct {
	file   *os.File
	reader *pdf.Reader
}

// openPDF is the default DocumentOpener.
func openPDF(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &pdfDocument{file: f, reader: r}, nil
}

func (d *pdfDocument) PageCount() (int, error) {
	return d.reader.NumPage(), nil
}

func (d *pdfDocument) PageText(page int) (string, error) {
	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}

func (d *pdfDocument) Close() error {
	return d.file.Close()
}
