package api

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// ErrorDomain is the ErrorInfo domain of every error VaultService returns.
const ErrorDomain = "dialkeeper"

// Error categories carried in ErrorInfo.Reason.
const (
	ReasonInvalidInput    = "INVALID_INPUT"
	ReasonDuplicateEmail  = "DUPLICATE_EMAIL"
	ReasonAuthFailed      = "AUTH_FAILED"
	ReasonUnauthenticated = "UNAUTHENTICATED"
	ReasonNotFound        = "NOT_FOUND"
	ReasonStorage         = "STORAGE_ERROR"
)

// ReasonOf extracts the ErrorInfo reason from a status error, or "".
func ReasonOf(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}
