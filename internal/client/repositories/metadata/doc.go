// Package metadata persists the console's local state as key/value pairs in
// the `metadata` table: the session token and the JSON overlay document.
//
// SQLRepository works over SQLite (the default, file-backed store) and
// PostgreSQL (a shared store for several operators). Queries are written once
// with '?' placeholders and rebound per dialect through dbx.Dialect.
package metadata
