// Package grpcx exposes use case outcomes as gRPC statuses.
package grpcx

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/8SOAT-Team/use-case-lib/usecase"
)

var kindCodes = map[usecase.ErrorKind]codes.Code{
	usecase.BadRequest:    codes.InvalidArgument,
	usecase.NotFound:      codes.NotFound,
	usecase.InternalError: codes.Internal,
	usecase.Unauthorized:  codes.Unauthenticated,
	usecase.Forbidden:     codes.PermissionDenied,
	usecase.Conflict:      codes.AlreadyExists,
	usecase.Unprocessable: codes.FailedPrecondition,
	usecase.Unavailable:   codes.Unavailable,
}

// CodeFor returns the gRPC code of an error kind.
// Unknown kinds map to codes.Unknown.
func CodeFor(kind usecase.ErrorKind) codes.Code {
	if code, ok := kindCodes[kind]; ok {
		return code
	}

	return codes.Unknown
}

// Status converts recorded errors into a gRPC status.
// The first error decides the code; messages are joined with "; ".
// It returns nil when there are no errors.
func Status(errs []usecase.Error) *status.Status {
	if len(errs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}

	return status.New(CodeFor(errs[0].Kind), strings.Join(messages, "; "))
}

// Err is like Status, but returns an error.
func Err(errs []usecase.Error) error {
	return Status(errs).Err()
}

// Handle runs a fresh use case and converts its outcome for a gRPC method.
//
// An absent result is returned as the zero value of O.
func Handle[C, O any](ctx context.Context, factory usecase.Factory[C, O], command C) (O, error) {
	var zero O

	uc := factory()

	result, err := uc.Run(ctx, command)
	if err != nil {
		if errs := uc.Errors(); len(errs) > 0 {
			return zero, status.New(codes.Internal, errs[len(errs)-1].Message).Err()
		}

		return zero, status.New(codes.Internal, err.Error()).Err()
	}

	if uc.IsFailure() {
		return zero, Err(uc.Errors())
	}

	if result.HasValue() {
		return result.Value(), nil
	}

	return zero, nil
}
