// Package apperr defines the error taxonomy shared by every write operation.
//
// Each error carries a Kind that decides how it is surfaced:
//
//   - Authentication: unknown credential, missing headers or a bad signature.
//   - Authorization: the credential is valid but not scoped for the event or capability.
//   - Validation: a malformed request or a malformed item inside a batch.
//   - NotFound: a referenced event or match does not exist.
//   - Storage: the underlying store failed; the message is never exposed verbatim.
//
// Authentication and Authorization abort a request before any mutation. Validation and
// NotFound are reported per item when they concern a single element of a batch.
//
// # Usage
//
//	if cred == nil {
//	    return apperr.Wrap(apperr.KindAuthentication, ErrUnknownCredential)
//	}
//
//	// In a handler:
//	return apperr.Respond(c, err)
package apperr
