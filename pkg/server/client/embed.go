// Package client embeds the browser-side thin client.
package client

import _ "embed"

// JS is the thin client served at /client.js.
//
//go:embed client.js
var JS []byte
