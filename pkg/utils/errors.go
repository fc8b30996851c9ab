package utils

import (
	"errors"
	"fmt"
)

// --- Sentinel Errors for Categorization ---
var (
	ErrMarkerNotFound   = errors.New("toc marker not found")        // Document has no begin marker
	ErrMarkerOrder      = errors.New("toc markers out of order")    // Duplicate begin, or end before begin
	ErrMarkerUnclosed   = errors.New("toc begin marker not closed") // Begin marker without a matching end
	ErrConfigValidation = errors.New("configuration validation error")
	ErrFilesystem       = errors.New("filesystem error") // Wraps os errors
)

// WrapErrorf wraps err with formatted context, preserving it for errors.Is /
// errors.As checks. Returns nil when err is nil.
func WrapErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
