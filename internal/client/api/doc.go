// Package api is the typed data access layer for the print-shop backend.
//
// # Overview
//
// The package provides:
//  1. A Client with one method group per REST resource (auth, users,
//     products, categories, suppliers, orders, wishlist, dashboard stats,
//     contact mail).
//  2. A transport that attaches the stored access token verbatim in the
//     Authorization header, tags every request with an X-Request-Id, and
//     transparently refreshes an expired token pair once before surfacing
//     an unauthorized error (mirroring the backend's refresh endpoint).
//  3. An in-process query cache: GET responses are cached per resource tag
//     and invalidated by the mutations that touch the resource, so the next
//     read refetches. Concurrent reads race benignly; the last resolved
//     response wins.
//
// JSON bodies are used everywhere except product create/update, which send
// multipart form data with an optional image part and parse the response
// directly.
//
// # Error Handling
//
// Transport failures surface as ErrUnavailable; non-2xx statuses as
// *APIError, which also matches ErrUnauthorized (401/403) and ErrNotFound
// (404) via errors.Is. No automatic retry beyond the single token refresh:
// retrying is a user decision.
package api
