// Package signing computes and checks request signatures.
//
// A signature covers the exact request path followed by the exact body bytes,
// keyed by the credential secret. Two schemes share that framing:
//
//   - md5: hex(md5(secret || path || body)), compatible with existing clients.
//   - hmac-sha256: hex(HMAC-SHA256(secret, path || body)).
//
// Comparison is constant time. Callers must sign the raw bytes they received,
// never a re-serialized body.
package signing
