// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting the catalog and user-items endpoints.
//   - rayid: Assigns a Request ID (RayID) to every request, storing it in the
//     context locals and the X-Ray-ID response header for tracing.
//
// Both are registered globally in the start command, rayid first.
package middleware
