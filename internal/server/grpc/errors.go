package grpc

import (
	"errors"

	"github.com/dmitrijs2005/dialkeeper/internal/api"
	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error onto a gRPC status. Authentication failures
// share one message whatever the internal reason; storage and corruption
// details never leave the server.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return withReason(codes.InvalidArgument, api.ReasonInvalidInput, err.Error())
	case errors.Is(err, common.ErrDuplicateEmail):
		return withReason(codes.AlreadyExists, api.ReasonDuplicateEmail, "email already registered")
	case errors.Is(err, common.ErrAuthFailed):
		return withReason(codes.Unauthenticated, api.ReasonAuthFailed, "authentication failed")
	case errors.Is(err, common.ErrTokenExpired):
		return withReason(codes.Unauthenticated, api.ReasonUnauthenticated, "token expired")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrorUnauthorized):
		return withReason(codes.Unauthenticated, api.ReasonUnauthenticated, "missing or invalid token")
	case errors.Is(err, common.ErrorNotFound):
		return withReason(codes.NotFound, api.ReasonNotFound, "secret not found")
	default:
		return withReason(codes.Internal, api.ReasonStorage, "internal error")
	}
}

func withReason(code codes.Code, reason, message string) error {
	st := status.New(code, message)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{Reason: reason, Domain: api.ErrorDomain})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
