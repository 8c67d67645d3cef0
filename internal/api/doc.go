// Package api provides the HTTP transport for communicating with the Mailrify
// API. It handles authentication, query and body serialization, response
// decoding and the mapping of non-2xx responses to typed errors.
//
// # Client Creation
//
// [NewClient] takes a [Config]. The API key is required and is sent as
// "Authorization: Bearer <key>" on every request. Paths passed to [Client.Do]
// are relative to the versioned root, so "/emails" becomes
// "<BaseURL>/v1/emails".
//
// # Query Parameters
//
// [Query] maps wire names to values. Slices are joined with commas into a
// single value; nil, empty and zero values are left out.
//
// # Error Handling
//
// Non-2xx responses become [apierrors.APIError] carrying the status, the
// service message and the optional service code. Failures before a response
// arrives become [apierrors.NetworkError]. Nothing is retried.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
