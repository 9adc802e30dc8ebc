package common

const (
	// AuthHeaderName is the header the backend expects the raw access token in.
	// The value is the stored token as-is, without a "Bearer " prefix.
	AuthHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"
)
