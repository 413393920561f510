package signing

// Config holds request signing configuration.
type Config struct {
	// Scheme is the digest used for signatures: "md5" or "hmac-sha256".
	Scheme string `mapstructure:"scheme" default:"md5"`

	// IDHeader carries the credential identifier.
	IDHeader string `mapstructure:"id_header" default:"X-TBA-Auth-Id"`

	// SigHeader carries the signature.
	SigHeader string `mapstructure:"sig_header" default:"X-TBA-Auth-Sig"`

	// CredentialCacheTTLSeconds controls credential caching. Zero disables the cache.
	CredentialCacheTTLSeconds int `mapstructure:"credential_cache_ttl_seconds" default:"30"`
}
