// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Sheet operations
	OpSheetCreate  Op = "create sheet"
	OpSheetPush    Op = "push sheet"
	OpSheetReplace Op = "replace sheets"
	OpSheetResize  Op = "resize sheets"

	// Position persistence
	OpPositionLoad Op = "load sheet position"
	OpPositionSave Op = "save sheet position"

	// Configuration
	OpConfigLoad Op = "load configuration"
	OpLoggerInit Op = "initialize logger"

	// Initialization
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
