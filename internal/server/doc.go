// Package server exposes the content catalogue as a read-only JSON API.
//
// # Router Infrastructure
//
// [Mux] implements [Router] on top of [http.ServeMux]. Each path pattern holds a method table;
// a request whose method is not in the table gets a 405 listing the allowed methods, and a path
// with no pattern gets a JSON 404.
//
// [Middleware] added with Use wraps the whole mux, first added outermost, so CORS preflight
// requests are answered before a 405 can be written.
//
// # Middleware
//
//   - [Recover] turns a panic into a 500 JSON response and logs it
//   - [RequestID] propagates or assigns an X-Request-ID header
//   - [RequestLogger] logs method, path, status and duration
//   - [CORS] applies the configured origins via rs/cors
//
// # Content API
//
// [API] registers the read endpoints over the Query Layer. Backend failures are already
// empty lists by the time they reach a handler, so the API answers 200 with an empty
// list rather than a 5xx. Unknown slugs and IDs answer 404, malformed query parameters 400.
//
// # Browse State
//
// The browse endpoints keep one filter selection per visitor in a signed cookie session.
// Query parameters present on a request replace the matching stored field; absent ones
// keep the stored value. Clearing replaces the whole selection at once.
//
// # Mounted Handlers
//
// A [Handler] lists its own patterns and is mounted for every method; [Health] is one.
package server
