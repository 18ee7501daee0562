package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/middleware"
)

// Response metadata keys carrying error detail.
const (
	ErrorCodeHeader  = "Error-Code"
	ErrorFieldHeader = "Error-Field"
)

// toConnectError maps an application error onto a Connect error. The stable
// code is exposed in the Error-Code metadata and each field detail as an
// Error-Field entry of the form "field: detail".
func toConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}
	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		slog.Error("unclassified error", "error", err)
		appErr = apperr.ErrInternal
	}

	code := connectCode(appErr)
	msg := appErr.Message
	if code == connect.CodeInternal {
		if appErr.Kind == apperr.KindInvariant {
			slog.Error("ledger invariant violated", "error", err)
		}
		msg = apperr.ErrInternal.Message
	}

	out := connect.NewError(code, errors.New(msg))
	out.Meta().Set(ErrorCodeHeader, appErr.Code)
	fields := make([]string, 0, len(appErr.Fields))
	for field := range appErr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		out.Meta().Add(ErrorFieldHeader, fmt.Sprintf("%s: %s", field, appErr.Fields[field]))
	}
	return out
}

func connectCode(err *apperr.Error) connect.Code {
	switch err.Kind {
	case apperr.KindValidation:
		return connect.CodeInvalidArgument
	case apperr.KindNotFound:
		return connect.CodeNotFound
	case apperr.KindForbidden:
		return connect.CodePermissionDenied
	case apperr.KindConflict:
		if errors.Is(err, apperr.ErrGroupBusy) {
			return connect.CodeAborted
		}
		return connect.CodeFailedPrecondition
	default:
		return connect.CodeInternal
	}
}

// actor returns the authenticated caller's user ID.
func actor(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}
