// Package server hosts mounted applications over HTTP and WebSocket.
//
// Each connection gets its own session: an in-memory document mirror,
// a dispatch registry, and a mounted program. Every primitive call the
// engine makes against the mirror is also recorded as a protocol op;
// the ops for one dispatch cycle are flushed to the browser's thin
// client as a single frame. The client reports fired handlers back as
// event frames.
package server
