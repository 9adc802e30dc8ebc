// Package common defines shared constants and sentinel errors used across
// the storefront client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Generic flow-control errors.
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")

	// ErrValidation marks client-side form constraint failures. These block
	// submission locally and never reach the network.
	ErrValidation = errors.New("validation error")

	// ErrAuthRequired is a synthetic, client-only condition: an operation
	// needs a signed-in user and there is none. No server call is made.
	ErrAuthRequired = errors.New("authorization required")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
