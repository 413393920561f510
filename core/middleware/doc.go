// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: generates a Request ID (RayID) for every incoming request and exposes it
//     in the X-Ray-ID response header and the "ray_id" local.
//   - auth: admin API key guard for operational endpoints such as /integrity and
//     /metrics. Trusted write routes use signature verification instead.
package middleware
