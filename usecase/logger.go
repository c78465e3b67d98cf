package usecase

import (
	"go.uber.org/zap"

	"github.com/8SOAT-Team/use-case-lib/pkg/render"
)

// Logger emits leveled, structured log entries.
//
// *zap.Logger implements this interface.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// Renderer produces a human-readable representation of an arbitrary value.
// It is used for log payloads only.
type Renderer interface {
	Render(v any) string
}

// Log messages emitted by Run, in order.
const (
	MessageCommandReceived  = "command received"
	MessageExecutingCommand = "executing command"
	MessageCommandExecuted  = "command executed"
	MessageCommandFailed    = "command failed"
)

// Log field keys.
const (
	FieldUseCase     = "use_case"
	FieldExecutionID = "execution_id"
	FieldCommand     = "command"
	FieldResult      = "result"
	FieldErrorKind   = "error_kind"
	FieldError       = "error"
	FieldInnerError  = "inner_error"
	FieldDuration    = "duration"
)

// nullMarker is logged in place of a nil result.
const nullMarker = "null"

func defaultLogger() Logger {
	return zap.NewNop()
}

func defaultRenderer() Renderer {
	return render.JSON{}
}
