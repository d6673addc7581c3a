// Package common contains constants and sentinel errors shared by the
// console and the stub directory server.
package common

const (
	// APIKeyHeaderName carries the optional directory API key.
	APIKeyHeaderName = "x-api-key"

	// RequestIDHeaderName correlates console log lines with server access logs.
	RequestIDHeaderName = "X-Request-Id"

	// AuthorizationHeaderName carries the session token as "Bearer <token>".
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
)

// Keys of the local metadata store.
const (
	MetadataKeyToken   = "token"
	MetadataKeyOverlay = "updatedUsers"
)
