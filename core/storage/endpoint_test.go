package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEndpoint(t *testing.T) {
	tests := []struct {
		in       string
		useSSL   bool
		endpoint string
		secure   bool
	}{
		{"localhost:9000", false, "localhost:9000", false},
		{"http://minio:9000/", false, "minio:9000", false},
		{"http://minio:9000", true, "minio:9000", true},
		{"https://s3.example.com", false, "s3.example.com", true},
	}
	for _, tt := range tests {
		endpoint, secure := splitEndpoint(tt.in, tt.useSSL)
		assert.Equal(t, tt.endpoint, endpoint, tt.in)
		assert.Equal(t, tt.secure, secure, tt.in)
	}
}
