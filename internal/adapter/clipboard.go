package adapter

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type systemClipboard struct{}

// NewClipboardAdapter returns a [ClipboardAdapter] backed by the platform
// clipboard (pbcopy, xclip/xsel/wl-copy, or the Windows API).
func NewClipboardAdapter() ClipboardAdapter {
	return systemClipboard{}
}

func (systemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("error writing to clipboard: %w", err)
	}

	return nil
}
