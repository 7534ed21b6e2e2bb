package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType names what happened in machine-friendly form (e.g. book_checked_out).
	FieldEventType = "event_type"
	// FieldErrorHint tells the reader what to try next.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldCommand is the CLI command that produced the record.
	FieldCommand = "command"
)
