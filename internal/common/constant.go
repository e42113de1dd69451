// Package common contains shared constants and sentinel errors used across
// Paygate client components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on authenticated requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix is prepended to the access token in the authorization header.
	BearerPrefix = "Bearer "

	// IdempotencyKeyHeaderName carries the client-generated idempotency key on
	// payment initialization so retried submissions collapse server-side.
	IdempotencyKeyHeaderName = "X-Idempotency-Key"
)
