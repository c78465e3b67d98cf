package usecase

import "context"

// ErrorRecorder appends error records to a use case's history.
type ErrorRecorder interface {
	AddError(errs ...Error)
}

type recorderCtxKey struct{}

type nopRecorder struct{}

func (nopRecorder) AddError(...Error) {}

func contextWithRecorder(ctx context.Context, r ErrorRecorder) context.Context {
	return context.WithValue(ctx, recorderCtxKey{}, r)
}

// RecorderFromContext returns the recorder of the use case currently running the handler.
//
// Handlers use it to report failures detected as data (eg. validation results) instead of returning an error.
// Outside of Run it returns a recorder that drops everything.
func RecorderFromContext(ctx context.Context) ErrorRecorder {
	if ctx == nil {
		return nopRecorder{}
	}

	if r, ok := ctx.Value(recorderCtxKey{}).(ErrorRecorder); ok {
		return r
	}

	return nopRecorder{}
}
