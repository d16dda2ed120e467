package japhone

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when a conversion runs before
	// dictionaries are loaded or after Cleanup.
	ErrNotInitialized = errors.New("japhone: not initialized")

	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("japhone: nil argument")
)

// BufferTooSmallError reports that ConvertTo was handed a buffer
// shorter than the converted text.
type BufferTooSmallError struct {
	Required int // bytes needed to hold the full result
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("japhone: buffer too small, need %d bytes", e.Required)
}
