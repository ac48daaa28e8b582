// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Media operations
	OpMediaLoad     Op = "load media"
	OpPlaybackStart Op = "start playback"

	// Resource operations
	OpResourceDownload Op = "download"
	OpResourceView     Op = "open"

	// Preferences
	OpPreferenceSave Op = "save preference"

	// Startup
	OpConfigLoad Op = "load configuration"
	OpPageLoad   Op = "load page"
	OpStateOpen  Op = "open preferences"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// MediaError is the notice shown when a media element fails to load.
func MediaError(kind string) string {
	return fmt.Sprintf("Error loading %s. Please try again later.", kind)
}
