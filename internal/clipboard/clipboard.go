// Package clipboard wraps the OS clipboard behind a small interface so
// commands can run headless in tests.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard supports setting and reading the system text buffer.
type Clipboard interface {
	SetText(text string) error
	GetText() (string, error)
}

// System is the real OS clipboard.
type System struct{}

func (System) SetText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

func (System) GetText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard: %w", err)
	}
	return text, nil
}

// Mock is an in-memory clipboard for tests.
type Mock struct {
	content string
	fail    bool
}

// NewMock creates an empty in-memory clipboard.
func NewMock() *Mock {
	return &Mock{}
}

// NewFailingMock creates a clipboard whose operations always fail.
func NewFailingMock() *Mock {
	return &Mock{fail: true}
}

func (m *Mock) SetText(text string) error {
	if m.fail {
		return errors.New("clipboard: mock clipboard failure")
	}
	m.content = text
	return nil
}

func (m *Mock) GetText() (string, error) {
	if m.fail {
		return "", errors.New("clipboard: mock clipboard failure")
	}
	return m.content, nil
}
