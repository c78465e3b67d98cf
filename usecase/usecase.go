package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/8SOAT-Team/use-case-lib/pkg/option"
)

// Handler holds the business logic of a use case.
//
// Expected failures should be returned as *BusinessError.
// Any other error (or a panic) is treated as an unexpected failure.
type Handler[C, O any] interface {
	Execute(ctx context.Context, command C) (O, error)
}

// HandlerFunc is an adapter to use ordinary functions as a Handler.
type HandlerFunc[C, O any] func(ctx context.Context, command C) (O, error)

// Execute calls fn(ctx, command).
func (fn HandlerFunc[C, O]) Execute(ctx context.Context, command C) (O, error) {
	return fn(ctx, command)
}

// Factory creates a fresh UseCase for a single attempt.
type Factory[C, O any] func() *UseCase[C, O]

// UseCase runs a Handler and turns its outcome into an option.Option and a history of Error records.
//
// A UseCase is not safe for concurrent use: errors accumulate on the instance across Run calls.
// Use one instance per in-flight attempt (see Factory).
type UseCase[C, O any] struct {
	name    string
	handler Handler[C, O]

	throwOnFailure bool

	logger      Logger
	renderer    Renderer
	clock       clockwork.Clock
	idGenerator IDGenerator

	errors []Error
}

// New returns a new UseCase.
func New[C, O any](name string, handler Handler[C, O], opts ...Option) *UseCase[C, O] {
	s := newSettings(opts)

	return &UseCase[C, O]{
		name:           name,
		handler:        handler,
		throwOnFailure: s.ThrowOnFailure,
		logger:         s.logger,
		renderer:       s.renderer,
		clock:          s.clock,
		idGenerator:    s.idGenerator,
	}
}

// NewFactory returns a Factory creating use cases with the same handler and options.
func NewFactory[C, O any](name string, handler Handler[C, O], opts ...Option) Factory[C, O] {
	return func() *UseCase[C, O] {
		return New(name, handler, opts...)
	}
}

// Name returns the name of the use case.
func (u *UseCase[C, O]) Name() string {
	return u.name
}

// ThrowOnFailure reports whether unexpected failures are propagated by Run.
func (u *UseCase[C, O]) ThrowOnFailure() bool {
	return u.throwOnFailure
}

// Run executes the handler exactly once.
//
// On success the result is converted with option.Of.
// A business error is recorded with its own kind and an empty Option is returned.
// Any other failure is recorded as InternalError; it is returned as Run's error
// when the use case is configured to throw on failure (a recovered panic is re-panicked),
// otherwise an empty Option is returned.
func (u *UseCase[C, O]) Run(ctx context.Context, command C) (option.Option[O], error) {
	if ctx == nil {
		ctx = context.Background()
	}

	fields := []zap.Field{
		zap.String(FieldUseCase, u.name),
		zap.String(FieldExecutionID, u.executionID()),
	}

	u.logger.Debug(MessageCommandReceived, with(fields, zap.String(FieldCommand, u.renderer.Render(command)))...)
	u.logger.Debug(MessageExecutingCommand, fields...)

	start := u.clock.Now()
	result, err := u.execute(contextWithRecorder(ctx, u), command)
	fields = with(fields, zap.Duration(FieldDuration, u.clock.Now().Sub(start)))

	if err == nil {
		u.logger.Debug(MessageCommandExecuted, with(fields, zap.String(FieldResult, u.renderResult(result)))...)

		return option.Of(result), nil
	}

	if be, ok := AsBusinessError(err); ok {
		u.AddError(be.Record())
		u.logFailure(fields, be.Kind, be.Message, be.Cause)

		return option.Empty[O](), nil
	}

	u.AddError(NewError(InternalError, err.Error()))
	u.logFailure(fields, InternalError, err.Error(), errors.Unwrap(err))

	if u.throwOnFailure {
		var p *panicError
		if errors.As(err, &p) {
			panic(p.value)
		}

		return nil, err
	}

	return option.Empty[O](), nil
}

func (u *UseCase[C, O]) execute(ctx context.Context, command C) (result O, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()

	return u.handler.Execute(ctx, command)
}

func (u *UseCase[C, O]) renderResult(result O) string {
	if _, err := option.TrySome(result); err != nil {
		return nullMarker
	}

	return u.renderer.Render(result)
}

func (u *UseCase[C, O]) logFailure(fields []zap.Field, kind ErrorKind, message string, cause error) {
	u.logger.Error(MessageCommandFailed, with(fields,
		zap.String(FieldErrorKind, kind.String()),
		zap.String(FieldError, message),
		zap.NamedError(FieldInnerError, cause),
	)...)
}

func (u *UseCase[C, O]) executionID() string {
	id, err := u.idGenerator.GenerateID()
	if err != nil {
		return ""
	}

	return id
}

// Errors returns every error recorded by this use case, in order.
func (u *UseCase[C, O]) Errors() []Error {
	return slices.Clone(u.errors)
}

// IsFailure reports whether any error has been recorded.
func (u *UseCase[C, O]) IsFailure() bool {
	return len(u.errors) != 0
}

// AddError appends errors to the history of the use case.
func (u *UseCase[C, O]) AddError(errs ...Error) {
	u.errors = append(u.errors, errs...)
}

// panicError carries a value recovered from a panicking handler.
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	if err, ok := e.value.(error); ok {
		return err.Error()
	}

	return fmt.Sprint(e.value)
}

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return errors.Unwrap(err)
	}

	return nil
}

func with(fields []zap.Field, extra ...zap.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+len(extra))
	out = append(out, fields...)

	return append(out, extra...)
}
