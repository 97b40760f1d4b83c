package grpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/dialkeeper/internal/api"
	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    codes.Code
		reason  string
		message string
	}{
		{"invalid input", fmt.Errorf("%w: expected 3 angles, got 2", common.ErrInvalidInput),
			codes.InvalidArgument, api.ReasonInvalidInput, "invalid input: expected 3 angles, got 2"},
		{"duplicate", common.ErrDuplicateEmail, codes.AlreadyExists, api.ReasonDuplicateEmail, "email already registered"},
		{"user not found", common.ErrUserNotFound, codes.Unauthenticated, api.ReasonAuthFailed, "authentication failed"},
		{"tolerance", common.ErrToleranceExceeded, codes.Unauthenticated, api.ReasonAuthFailed, "authentication failed"},
		{"expired", common.ErrTokenExpired, codes.Unauthenticated, api.ReasonUnauthenticated, "token expired"},
		{"bad token", common.ErrInvalidToken, codes.Unauthenticated, api.ReasonUnauthenticated, "missing or invalid token"},
		{"not found", common.ErrorNotFound, codes.NotFound, api.ReasonNotFound, "secret not found"},
		{"corrupt", fmt.Errorf("user u-1: %w", common.ErrDataCorrupt), codes.Internal, api.ReasonStorage, "internal error"},
		{"storage", fmt.Errorf("%w: db error: connection refused", common.ErrStorage), codes.Internal, api.ReasonStorage, "internal error"},
		{"unknown", errors.New("???"), codes.Internal, api.ReasonStorage, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toStatus(tt.err)
			st := status.Convert(err)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.message, st.Message())
			assert.Equal(t, tt.reason, api.ReasonOf(err))
		})
	}
}

func TestReasonOf_NonStatus(t *testing.T) {
	assert.Empty(t, api.ReasonOf(errors.New("plain")))
	assert.Empty(t, api.ReasonOf(status.Error(codes.Internal, "no details")))
}
