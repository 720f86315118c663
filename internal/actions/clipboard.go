package actions

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll places text on the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// Copy places text on cb exactly as given.
func Copy(cb Clipboard, text string) error {
	if err := cb.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
