// Package api contains the gateway to the remote payment-processing API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering
//     every endpoint the Paygate CLI consumes: register/login/profile,
//     payment initialization and verification, the user's payment history,
//     and the admin listings.
//  2. A concrete HTTP implementation (see HTTPClient) that is the single
//     chokepoint for all network calls. It injects the bearer token from a
//     TokenSource, merges headers over a JSON default, parses response
//     bodies even on failure statuses, and normalizes failures into *Error
//     with the server-supplied detail message.
//  3. The idempotency key generator attached to payment initialization so
//     network retries cannot create duplicate payment intents.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable for transport failures and
// common.ErrUnauthorized / common.ErrForbidden for auth failures. Every
// failure carries the server's detail text when one was returned.
//
// No retries happen at this layer; retry policy belongs to the caller.
package api
