// Package protocol is the binary wire format between a live session
// and a remote document host (the browser's thin client).
//
// The server renders and patches against its in-memory mirror; every
// primitive call it makes is also encoded as a DOM op. Ops for one
// dispatch cycle travel to the client in a single Ops frame. The
// client sends Event frames naming the bound handler that fired; the
// message payload itself never crosses the wire, the server resolves
// it from the binding.
package protocol
