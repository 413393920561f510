package signing

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// Scheme selects the digest construction.
type Scheme string

const (
	SchemeMD5        Scheme = "md5"
	SchemeHMACSHA256 Scheme = "hmac-sha256"
)

// ParseScheme validates a configured scheme name.
func ParseScheme(name string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(name))) {
	case SchemeMD5, "":
		return SchemeMD5, nil
	case SchemeHMACSHA256:
		return SchemeHMACSHA256, nil
	default:
		return "", fmt.Errorf("unknown signing scheme %q", name)
	}
}

// Sign returns the lowercase hex signature of path and body under secret.
func (s Scheme) Sign(secret, path string, body []byte) string {
	switch s {
	case SchemeHMACSHA256:
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(path))
		mac.Write(body)
		return hex.EncodeToString(mac.Sum(nil))
	default:
		h := md5.New()
		h.Write([]byte(secret))
		h.Write([]byte(path))
		h.Write(body)
		return hex.EncodeToString(h.Sum(nil))
	}
}

// Verify reports whether signature matches the expected one.
func (s Scheme) Verify(secret, path string, body []byte, signature string) bool {
	expected := s.Sign(secret, path, body)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
