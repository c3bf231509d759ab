// Package edit provides the low-level text replacement primitive and
// unified diff generation for dry-run output. The apply engine performs
// at most one edit per fix; this package validates and applies that
// single contiguous replacement on raw content.
package edit

import (
	"errors"
	"fmt"
)

// ErrInvalidEdit indicates an edit with an out-of-range or inverted span.
var ErrInvalidEdit = errors.New("invalid edit")

// TextEdit is a single text replacement expressed in byte offsets.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Validate checks that the edit's span is well formed for content of the
// given length.
func (e TextEdit) Validate(contentLen int) error {
	if e.StartOffset < 0 {
		return fmt.Errorf("%w [%d:%d]: start offset is negative", ErrInvalidEdit, e.StartOffset, e.EndOffset)
	}
	if e.EndOffset < e.StartOffset {
		return fmt.Errorf("%w [%d:%d]: end offset is before start offset", ErrInvalidEdit, e.StartOffset, e.EndOffset)
	}
	if e.EndOffset > contentLen {
		return fmt.Errorf("%w [%d:%d]: end offset exceeds content length %d",
			ErrInvalidEdit, e.StartOffset, e.EndOffset, contentLen)
	}
	return nil
}

// Apply replaces the edit's span in content with its replacement text.
// The edit must have been validated against len(content).
func Apply(content string, e TextEdit) string {
	return content[:e.StartOffset] + e.NewText + content[e.EndOffset:]
}
