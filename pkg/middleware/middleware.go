// Package middleware holds net/http middleware shared by the HTTP servers.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
