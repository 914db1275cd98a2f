package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Classification
	}{
		{"report.pdf", ClassPDF},
		{"REPORT.PDF", ClassPDF},
		{"scan.Pdf", ClassPDF},
		{"photo.png", ClassImage},
		{"photo.PNG", ClassImage},
		{"photo.jpg", ClassImage},
		{"photo.jpeg", ClassImage},
		{"photo.JPEG", ClassImage},
		{"photo.tiff", ClassImage},
		{"photo.tif", ClassImage},
		{"photo.gif", ClassImage},
		{"photo.bmp", ClassImage},
		{"photo.webp", ClassImage},
		{"photo.heic", ClassImage},
		{"photo.heif", ClassImage},
		{"notes.txt", ClassText},
		{"notes.md", ClassText},
		{"archive.tar.gz", ClassText},
		{"no_extension", ClassText},
		{"trailing.", ClassText},
		{"/some/dir/file.go", ClassText},
	}

	for _, tt := range tests {
		if got := Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestExtractFileNotFound(t *testing.T) {
	ex := New(Config{OCR: NewMockOCR(false)})

	_, err := ex.Extract("/no/such/file.txt")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Path != "/no/such/file.txt" {
		t.Errorf("error path = %q", notFound.Path)
	}
}

func TestExtractTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")
	content := "Hello, world!\nThis is a test file."
	os.WriteFile(path, []byte(content), 0644)

	ex := New(Config{OCR: NewMockOCR(false)})
	got, err := ex.Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != content {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestExtractImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	os.WriteFile(path, []byte("fake image data"), 0644)

	t.Run("ocr returns text", func(t *testing.T) {
		ocr := NewMockOCR(true)
		ocr.SetText(path, "Hello")

		ex := New(Config{OCR: ocr})
		got, err := ex.Extract(path)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if got != "Hello" {
			t.Errorf("got %q, want %q", got, "Hello")
		}
	})

	t.Run("ocr unavailable", func(t *testing.T) {
		// A registered response must not matter when the capability
		// reports unavailable.
		ocr := NewMockOCR(false)
		ocr.SetText(path, "Hello")

		ex := New(Config{OCR: ocr})
		_, err := ex.Extract(path)
		var exErr *ExtractionError
		if !errors.As(err, &exErr) {
			t.Fatalf("expected ExtractionError, got %v", err)
		}
	})

	t.Run("ocr returns empty text", func(t *testing.T) {
		ocr := NewMockOCR(true)
		ocr.SetText(path, "  \n\t ")

		ex := New(Config{OCR: ocr})
		_, err := ex.Extract(path)
		var exErr *ExtractionError
		if !errors.As(err, &exErr) {
			t.Fatalf("expected ExtractionError, got %v", err)
		}
		if !strings.Contains(exErr.Message, "no recognizable text") {
			t.Errorf("message = %q", exErr.Message)
		}
	})

	t.Run("ocr fails", func(t *testing.T) {
		ocr := NewMockOCR(true)
		ocr.SetError(path, "recognition crashed")

		ex := New(Config{OCR: ocr})
		_, err := ex.Extract(path)
		var exErr *ExtractionError
		if !errors.As(err, &exErr) {
			t.Fatalf("expected ExtractionError, got %v", err)
		}
		if !strings.Contains(exErr.Message, "recognition crashed") {
			t.Errorf("message = %q", exErr.Message)
		}
	})
}

func TestExtractBinaryMisnamedAsText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binary.bin")
	os.WriteFile(path, []byte{0x48, 0x65, 0x6C, 0x00, 0x6F}, 0644)

	ex := New(Config{OCR: NewMockOCR(false)})
	_, err := ex.Extract(path)
	var binErr *BinaryFileError
	if !errors.As(err, &binErr) {
		t.Fatalf("expected BinaryFileError, got %v", err)
	}
}
