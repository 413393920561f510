package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trusted-api/core/apperr"
	"trusted-api/core/signing"
)

var (
	ErrMissingHeaders       = errors.New("missing credential id or signature")
	ErrUnknownCredential    = errors.New("unknown credential")
	ErrSignatureMismatch    = errors.New("signature mismatch")
	ErrEventNotAuthorized   = errors.New("event not authorized")
	ErrCapabilityNotGranted = errors.New("capability not granted")
)

// Request is everything the verifier needs from an inbound write.
type Request struct {
	EventID      string
	Path         string
	Body         []byte
	CredentialID string
	Signature    string
	Required     Capability
}

// Verifier authenticates and authorizes trusted requests.
type Verifier struct {
	store  Store
	scheme signing.Scheme
}

// NewVerifier creates a Verifier using store and scheme.
func NewVerifier(store Store, scheme signing.Scheme) *Verifier {
	return &Verifier{store: store, scheme: scheme}
}

// Scheme returns the signature scheme in use.
func (v *Verifier) Scheme() signing.Scheme {
	return v.scheme
}

// Verify returns the credential when req is authentic and in scope.
// It has no side effects.
func (v *Verifier) Verify(ctx context.Context, req Request) (*Credential, error) {
	if req.CredentialID == "" || req.Signature == "" {
		return nil, apperr.Wrap(apperr.KindAuthentication, ErrMissingHeaders)
	}

	cred, err := v.store.Get(ctx, req.CredentialID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.Wrap(apperr.KindAuthentication, ErrUnknownCredential)
	}
	if err != nil {
		return nil, apperr.Storage("credential lookup", err)
	}

	if !v.scheme.Verify(cred.Secret, req.Path, req.Body, strings.ToLower(req.Signature)) {
		return nil, apperr.Wrap(apperr.KindAuthentication, ErrSignatureMismatch)
	}

	if !cred.AllowsEvent(req.EventID) {
		return nil, apperr.Wrap(apperr.KindAuthorization, fmt.Errorf("%w: %s", ErrEventNotAuthorized, req.EventID))
	}

	if !cred.Grants(req.Required) {
		return nil, apperr.Wrap(apperr.KindAuthorization, fmt.Errorf("%w: %s", ErrCapabilityNotGranted, req.Required))
	}

	return cred, nil
}

// Reason maps a verification error to a short metrics label.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingHeaders):
		return "missing_headers"
	case errors.Is(err, ErrUnknownCredential):
		return "unknown_credential"
	case errors.Is(err, ErrSignatureMismatch):
		return "signature_mismatch"
	case errors.Is(err, ErrEventNotAuthorized):
		return "event_not_authorized"
	case errors.Is(err, ErrCapabilityNotGranted):
		return "capability_not_granted"
	default:
		return "storage"
	}
}
