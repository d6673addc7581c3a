// Package client contains the console's outbound building blocks.
//
// # Overview
//
//  1. Directory, the contract of the remote user directory: paged listing,
//     fetch by id, update, delete and login.
//  2. HTTPClient, a JSON-over-HTTP Directory. Every request carries an
//     X-Request-Id and, when configured, the x-api-key header. There is no
//     retry; an optional per-request timeout bounds each call.
//  3. InitDatabase and RunMigrations, which open the local store (SQLite by
//     default, PostgreSQL for postgres:// DSNs) and apply the embedded goose
//     migrations.
//
// # Error Handling
//
// Failures are reported through sentinels matched with errors.Is:
// ErrNetwork (no HTTP response), ErrRemote (non-success status, as a
// *StatusError), ErrNotFound, ErrUnauthorized and ErrInvalidArgument.
// Context cancellation is returned as the context's own error so callers
// can tell an abandoned request from a failed one.
package client
