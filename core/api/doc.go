// Package api is the thin HTTP client the grail commands use to reach a
// running server: the catalog endpoint and the user-items endpoints.
//
// Requests are issued with Fiber's Agent (fasthttp underneath). The API key and
// user id from Config are attached as headers on every call.
package api
