// Package cli provides the interactive userdesk console.
//
// It wires configuration, the local store, the directory client and the
// application services, then runs a REPL. The REPL has two views: the user
// list (paged, with delete) and the edit form for one user. Both are behind
// the session gate: a saved token is required and checked on every
// navigation.
//
// Commands:
//   - login / logout
//   - list [page], next, prev, page N
//   - edit ID, delete ID
//   - overlays [clear]
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
