package signing

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheme(t *testing.T) {
	tests := []struct {
		input   string
		want    Scheme
		wantErr bool
	}{
		{"", SchemeMD5, false},
		{"md5", SchemeMD5, false},
		{" HMAC-SHA256 ", SchemeHMACSHA256, false},
		{"sha1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScheme(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMD5MatchesClientFraming(t *testing.T) {
	secret := "321tEsTsEcReT"
	path := "/api/trusted/v1/event/2014casj/matches/update"
	body := []byte(`[{"comp_level":"qm","set_number":1,"match_number":1}]`)

	sum := md5.Sum([]byte(secret + path + string(body)))
	assert.Equal(t, hex.EncodeToString(sum[:]), SchemeMD5.Sign(secret, path, body))
}

func TestVerify(t *testing.T) {
	path := "/api/trusted/v1/event/2014casj/team_list/update"
	body := []byte(`["frc254","frc971"]`)

	for _, scheme := range []Scheme{SchemeMD5, SchemeHMACSHA256} {
		t.Run(string(scheme), func(t *testing.T) {
			sig := scheme.Sign("secret", path, body)
			assert.True(t, scheme.Verify("secret", path, body, sig))

			tampered := append([]byte(nil), body...)
			tampered[2] = 'g'
			assert.False(t, scheme.Verify("secret", path, tampered, sig))
			assert.False(t, scheme.Verify("secret", path+"x", body, sig))
			assert.False(t, scheme.Verify("other", path, body, sig))
			assert.False(t, scheme.Verify("secret", path, body, ""))
		})
	}

	assert.NotEqual(t, SchemeMD5.Sign("s", path, body), SchemeHMACSHA256.Sign("s", path, body))
}
