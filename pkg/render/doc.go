// Package render materializes virtual trees into live document nodes
// and applies patches produced by the differ.
//
// Render allocates native nodes through the dom primitives; Apply
// mutates an existing live subtree incrementally. Both bind click
// handlers to the dispatch symbol of the owning application.
package render
