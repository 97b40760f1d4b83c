// Package common contains shared constants and sentinel errors used across
// DialKeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultTolerance is the per-slot tolerance, in degrees, applied when the
// deployment does not configure one.
const DefaultTolerance = 15.0
