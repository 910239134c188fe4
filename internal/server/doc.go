// Package server provides the loopback HTTP server used during Google sign-in.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers so the first installed is the outermost.
// [LoggingMiddleware] is the only middleware the sign-in flow installs.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method-qualified patterns.
//
// # OAuth Callback Handler
//
// [OAuthHandler] implements the OAuth2 authorization code callback flow.
//
// The handler validates the state parameter (CSRF protection), exchanges the authorization code for tokens,
// and sends the result through a channel.
//
// It only processes one callback to prevent replay attacks.
//
// # Usage
//
// When the user runs `gigmix auth login`, a temporary HTTP server starts on
// localhost, the browser opens the Google consent page, the handler receives
// the callback, and the server shuts down once the token arrives. The token is
// held in memory for the life of the process; nothing is written to disk.
package server
