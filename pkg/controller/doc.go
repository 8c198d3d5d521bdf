// Package controller contains HTTP middlewares and helper handlers shared by
// the API server.
//
// Middlewares:
//   - WithCORS: CORS headers for a configured origin and OPTIONS preflight.
//   - WithLogger: request ID, request-scoped logger and access log.
//
// Helpers:
//   - PprofRouter: net/http/pprof handlers on a chi router.
package controller
