// Package client contains the client side of the Remote Directory Service
// contract.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the user
//     collection: List, Create, Update, Delete.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) bound to a
//     single collection endpoint. The record identifier travels as the "id"
//     query parameter, never as a path segment.
//
// # Error Handling
//
// Transport failures wrap common.ErrUnavailable. Non-2xx replies wrap
// common.ErrRejected (or common.ErrNotFound for 404) together with a
// *netx.StatusError that carries the server message, if any.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context; the console passes contexts detached from cancellation so
// an issued call always runs to completion.
package client
