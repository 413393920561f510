package credentials

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trusted-api/core/apperr"
	"trusted-api/core/database"
	"trusted-api/core/signing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "321tEsTsEcReT"
	testPath   = "/api/trusted/v1/event/2014casj/matches/update"
)

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Credential{}))

	store := NewGormStore(db)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &Credential{
		ID:           "tEsT_id_1",
		Secret:       testSecret,
		Description:  "event data",
		EventIDs:     []string{"2014casj"},
		Capabilities: []Capability{CapabilityEventData},
	}))
	require.NoError(t, store.Save(ctx, &Credential{
		ID:           "tEsT_id_2",
		Secret:       testSecret,
		EventIDs:     []string{"2014casj"},
		Capabilities: []Capability{CapabilityMatchVideo},
	}))
	require.NoError(t, store.Save(ctx, &Credential{
		ID:           "global",
		Secret:       "g",
		Capabilities: []Capability{CapabilityAwards},
	}))
	return store
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context, id string) (*Credential, error) {
	args := m.Called(ctx, id)
	cred, _ := args.Get(0).(*Credential)
	return cred, args.Error(1)
}

func TestGormStore_Get(t *testing.T) {
	store := setupStore(t)

	cred, err := store.Get(context.Background(), "tEsT_id_1")
	require.NoError(t, err)
	assert.Equal(t, testSecret, cred.Secret)
	assert.Equal(t, []string{"2014casj"}, []string(cred.EventIDs))
	assert.Equal(t, []Capability{CapabilityEventData}, []Capability(cred.Capabilities))

	_, err = store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCredential_Grants(t *testing.T) {
	tests := []struct {
		name     string
		have     []Capability
		required Capability
		want     bool
	}{
		{"Direct", []Capability{CapabilityMatchVideo}, CapabilityMatchVideo, true},
		{"EventDataImpliesAwards", []Capability{CapabilityEventData}, CapabilityAwards, true},
		{"EventDataImpliesAlliances", []Capability{CapabilityEventData}, CapabilityAllianceSelection, true},
		{"EventDataNotVideo", []Capability{CapabilityEventData}, CapabilityMatchVideo, false},
		{"AwardsNotEventData", []Capability{CapabilityAwards}, CapabilityEventData, false},
		{"AwardsNotAlliances", []Capability{CapabilityAwards}, CapabilityAllianceSelection, false},
		{"AlliancesNotAwards", []Capability{CapabilityAllianceSelection}, CapabilityAwards, false},
		{"VideoNotEventData", []Capability{CapabilityMatchVideo}, CapabilityEventData, false},
		{"None", nil, CapabilityEventData, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Credential{Capabilities: tt.have}
			assert.Equal(t, tt.want, c.Grants(tt.required))
		})
	}
}

func TestCredential_AllowsEvent(t *testing.T) {
	scoped := &Credential{EventIDs: []string{"2014casj"}}
	assert.True(t, scoped.AllowsEvent("2014casj"))
	assert.True(t, scoped.AllowsEvent("2014CASJ"))
	assert.False(t, scoped.AllowsEvent("2014cama"))
	assert.True(t, (&Credential{}).AllowsEvent("2014cama"))
}

func TestVerifier_Verify(t *testing.T) {
	store := setupStore(t)
	v := NewVerifier(store, signing.SchemeMD5)
	body := []byte("[]")
	sig := signing.SchemeMD5.Sign(testSecret, testPath, body)

	tests := []struct {
		name    string
		req     Request
		wantErr error
		kind    apperr.Kind
	}{
		{"Pass", Request{EventID: "2014casj", Path: testPath, Body: body, CredentialID: "tEsT_id_1", Signature: sig, Required: CapabilityEventData}, nil, apperr.KindUnknown},
		{"UppercaseSignature", Request{EventID: "2014casj", Path: testPath, Body: body, CredentialID: "tEsT_id_1", Signature: strings.ToUpper(sig), Required: CapabilityEventData}, nil, apperr.KindUnknown},
		{"MissingHeaders", Request{EventID: "2014casj", Path: testPath, Body: body, Required: CapabilityEventData}, ErrMissingHeaders, apperr.KindAuthentication},
		{"UnknownCredential", Request{EventID: "2014casj", Path: testPath, Body: body, CredentialID: "badTestAuthId", Signature: sig, Required: CapabilityEventData}, ErrUnknownCredential, apperr.KindAuthentication},
		{"BadSignature", Request{EventID: "2014casj", Path: testPath, Body: body, CredentialID: "tEsT_id_1", Signature: "123abc", Required: CapabilityEventData}, ErrSignatureMismatch, apperr.KindAuthentication},
		{"WrongBody", Request{EventID: "2014casj", Path: testPath, Body: []byte("[{}]"), CredentialID: "tEsT_id_1", Signature: sig, Required: CapabilityEventData}, ErrSignatureMismatch, apperr.KindAuthentication},
		{"WrongEvent", Request{EventID: "2014cama", Path: testPath, Body: body, CredentialID: "tEsT_id_1", Signature: sig, Required: CapabilityEventData}, ErrEventNotAuthorized, apperr.KindAuthorization},
		{"WrongCapability", Request{EventID: "2014casj", Path: testPath, Body: body, CredentialID: "tEsT_id_2", Signature: sig, Required: CapabilityEventData}, ErrCapabilityNotGranted, apperr.KindAuthorization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, err := v.Verify(context.Background(), tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.req.CredentialID, cred.ID)
				return
			}
			assert.Nil(t, cred)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
			assert.Equal(t, 400, apperr.Status(err))
		})
	}
}

func TestVerifier_SignatureCheckedBeforeScope(t *testing.T) {
	// A wrong signature on an out-of-scope event reports the signature, not the scope.
	v := NewVerifier(setupStore(t), signing.SchemeMD5)
	_, err := v.Verify(context.Background(), Request{
		EventID: "2014cama", Path: testPath, Body: []byte("[]"),
		CredentialID: "tEsT_id_1", Signature: "deadbeef", Required: CapabilityEventData,
	})
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerifier_StoreFailure(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, "tEsT_id_1").Return(nil, errors.New("too many connections"))

	v := NewVerifier(store, signing.SchemeHMACSHA256)
	_, err := v.Verify(context.Background(), Request{CredentialID: "tEsT_id_1", Signature: "x"})
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	assert.Equal(t, "storage", Reason(err))
	assert.Equal(t, 500, apperr.Status(err))
}

func TestReason(t *testing.T) {
	assert.Equal(t, "missing_headers", Reason(apperr.Wrap(apperr.KindAuthentication, ErrMissingHeaders)))
	assert.Equal(t, "capability_not_granted", Reason(ErrCapabilityNotGranted))
	assert.Equal(t, "event_not_authorized", Reason(ErrEventNotAuthorized))
}
