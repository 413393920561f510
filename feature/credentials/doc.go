// Package credentials verifies signed trusted write requests.
//
// A credential is a pre-provisioned (id, secret) pair scoped to a set of events and a
// set of capabilities. Issuing credentials is out of scope; this package only reads
// them through a Store.
//
// # Verification order
//
//  1. Both auth headers must be present.
//  2. The credential id must resolve.
//  3. The signature over path and raw body must match.
//  4. The path's event must be in the credential's event scope (empty scope = all).
//  5. The route's capability must be granted.
//
// Every failure is classified by core/apperr as Authentication (1-3) or Authorization
// (4-5), and the request is rejected before the body is parsed.
//
// # Caching
//
// CachedStore keeps recent lookups for a TTL and collapses concurrent misses for the
// same id with singleflight. Unknown ids are never cached.
package credentials
