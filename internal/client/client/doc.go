// Package client is the gRPC client for the DialKeeper VaultService.
//
// GRPCClient holds one connection, injects the access token into every call
// through a unary interceptor and maps status errors back onto the sentinel
// errors of internal/common, so callers match them with errors.Is.
package client
