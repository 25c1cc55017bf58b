// Package jwt signs and verifies the bearer tokens handed out at login.
//
// It includes:
//   - Claims: the caller identity (id, name, email) plus registered claims.
//   - Symmetric: an HS256 signer/verifier sharing one process-wide secret.
//   - BearerToken: extraction of the token from an Authorization header.
//   - Context helpers for storing and retrieving the verified claims.
package jwt
