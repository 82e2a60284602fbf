// Package runtime owns the dispatch loop: the registry that routes
// native events to mounted applications, and the Program type that
// threads {model, view} through successive update/diff/patch cycles.
//
// The registry is an explicit object, not process-global state; every
// independent host (a test, a server session) creates its own.
package runtime
