package service_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-autofill/internal/crypto"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/mock"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/internal/validators"
	"github.com/MKhiriev/go-pass-autofill/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMasterSecret = "correct horse battery staple"

type credentialFixture struct {
	store       store.SecretStore
	keychain    crypto.KeyChainService
	bridge      *mock.MockAutofillBridge
	repo        *mock.MockVaultRepository
	cache       service.PlaintextCacheService
	stats       service.StatisticsService
	credentials service.CredentialService
}

func newCredentialFixture(t *testing.T) *credentialFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &credentialFixture{
		store:    newMemoryStore(t),
		keychain: crypto.NewKeyChainService(),
		bridge:   mock.NewMockAutofillBridge(ctrl),
		repo:     mock.NewMockVaultRepository(ctrl),
	}
	f.cache = service.NewPlaintextCacheService(f.store, logger.Nop())
	f.stats = service.NewStatisticsService(f.store, logger.Nop())
	settings := service.NewSettingsService(f.store, f.bridge, logger.Nop())

	f.credentials = service.NewCredentialService(
		f.store,
		f.keychain,
		validators.NewCredentialValidator(),
		settings,
		f.cache,
		f.stats,
		f.repo,
		f.bridge,
		logger.Nop(),
	)
	return f
}

func (f *credentialFixture) persistPolicy(t *testing.T, policy models.SettingsPolicy) {
	t.Helper()
	payload, err := json.Marshal(policy)
	require.NoError(t, err)
	require.NoError(t, f.store.SetItem(context.Background(), store.KeySettings, string(payload)))
}

func (f *credentialFixture) expectPush() {
	f.bridge.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(nil)
	f.bridge.EXPECT().PrepareCredentials(gomock.Any(), gomock.Any()).Return(nil)
}

// encryptedEntry builds a vault entry holding real ciphertext with a
// complete envelope.
func encryptedEntry(t *testing.T, keychain crypto.KeyChainService, id, website, username, plaintext string) models.VaultEntry {
	t.Helper()

	salt, err := keychain.GenerateSalt()
	require.NoError(t, err)
	iv, err := keychain.GenerateIV()
	require.NoError(t, err)
	key := keychain.DeriveKey(testMasterSecret, salt)
	ciphertext, tag, err := keychain.EncryptPassword(plaintext, key, iv)
	require.NoError(t, err)

	return models.VaultEntry{
		ID:           id,
		Website:      website,
		Username:     username,
		Password:     ciphertext,
		PasswordSalt: base64.StdEncoding.EncodeToString(salt),
		PasswordIV:   base64.StdEncoding.EncodeToString(iv),
		PasswordTag:  tag,
		IsDecrypted:  false,
	}
}

// --- PrepareCredentials ---

func TestCredentials_PlaintextEntryGetsEncrypted(t *testing.T) {
	ctx := context.Background()
	f := newCredentialFixture(t)
	f.expectPush()

	entry := models.VaultEntry{
		ID:          "e1",
		Website:     "https://www.Example.com/login",
		Username:    "alice",
		Password:    "hunter2",
		IsDecrypted: true,
	}
	require.NoError(t, f.credentials.PrepareCredentials(ctx, []models.VaultEntry{entry}, testMasterSecret))

	envelopes, err := f.credentials.LoadCredentials(ctx, testMasterSecret)
	require.NoError(t, err)
	require.Len(t, envelopes, 1)

	got := envelopes[0]
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, "example.com", got.Domain)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, got.Encrypted)
	assert.True(t, got.Consistent())
	assert.NotEqual(t, "hunter2", got.Password)

	// The envelope round-trips through the per-credential scheme.
	salt, err := base64.StdEncoding.DecodeString(got.Salt)
	require.NoError(t, err)
	iv, err := base64.StdEncoding.DecodeString(got.IV)
	require.NoError(t, err)
	key := f.keychain.DeriveKey(testMasterSecret, salt)
	plaintext, err := f.keychain.DecryptPassword(got.Password, got.Tag, key, iv)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plaintext)
}

func TestCredentials_PolicyDowngradesToPlaintext(t *testing.T) {
	ctx := context.Background()
	f := newCredentialFixture(t)
	f.persistPolicy(t, models.SettingsPolicy{Enabled: true, RequireBiometric: false, TrustedDomains: []string{}})
	f.expectPush()

	entry := models.VaultEntry{ID: "e1", Website: "example.com", Username: "alice", Password: "hunter2", IsDecrypted: true}
	require.NoError(t, f.credentials.PrepareCredentials(ctx, []models.VaultEntry{entry}, testMasterSecret))

	envelopes, err := f.credentials.LoadCredentials(ctx, testMasterSecret)
	require.NoError(t, err)
	require.Len(t, envelopes, 1)

	got := envelopes[0]
	assert.False(t, got.Encrypted)
	assert.True(t, got.Consistent())
	assert.Equal(t, "hunter2", got.Password)
	assert.Empty(t, got.Salt)
	assert.Empty(t, got.IV)
	assert.Empty(t, got.Tag)
}

func TestCredentials_EncryptedEntryPassesThrough(t *testing.T) {
	ctx := context.Background()
	f := newCredentialFixture(t)
	f.expectPush()

	entry := encryptedEntry(t, f.keychain, "e1", "example.com", "alice", "hunter2")
	require.NoError(t, f.credentials.PrepareCredentials(ctx, []models.VaultEntry{entry}, testMasterSecret))

	envelopes, err := f.credentials.LoadCredentials(ctx, testMasterSecret)
	require.NoError(t, err)
	require.Len(t, envelopes, 1)

	got := envelopes[0]
	assert.True(t, got.Encrypted)
	assert.Equal(t, entry.Password, got.Password)
	assert.Equal(t, entry.PasswordSalt, got.Salt)
	assert.Equal(t, entry.PasswordIV, got.IV)
	assert.Equal(t, entry.PasswordTag, got.Tag)
}

func TestCredentials_UnusableEntriesAreDropped(t *testing.T) {
	ctx := context.Background()
	f := newCredentialFixture(t)
	f.expectPush()

	legacy := encryptedEntry(t, f.keychain, "legacy", "example.com", "bob", "pw")
	legacy.PasswordTag = ""

	entries := []models.VaultEntry{
		{ID: "good", Website: "example.com", Username: "alice", Password: "hunter2", IsDecrypted: true},
		legacy,
		{ID: "empty", Website: "example.com", Username: "carol", IsDecrypted: true},
		{ID: "no-domain", Website: "   ", Username: "dave", Password: "pw", IsDecrypted: true},
		{ID: "no-user", Website: "example.com", Password: "pw", IsDecrypted: true},
	}
	require.NoError(t, f.credentials.PrepareCredentials(ctx, entries, testMasterSecret))

	envelopes, err := f.credentials.LoadCredentials(ctx, testMasterSecret)
	require.NoError(t, err)
	require.Len(t, envelopes, 1)
	assert.Equal(t, "good", envelopes[0].ID)

	stats, err := f.stats.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CredentialsSaved)
}

func TestCredentials_SettingsSyncFailureWithholdsPush(t *testing.T) {
	ctx := context.Background()
	f := newCredentialFixture(t)

	// UpdateSettings fails; PrepareCredentials must never reach the bridge.
	f.bridge.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(errors.New("runtime unreachable"))

	entry := models.VaultEntry{ID: "e1", Website: "example.com", Username: "alice", Password: "hunter2", IsDecrypted: true}
	require.NoError(t, f.credentials.PrepareCredentials(ctx, []models.VaultEntry{entry}, testMasterSecret))

	// The authoritative opaque-store write still happened.
	envelopes, err := f.credentials.LoadCredentials(ctx, testMasterSecret)
	require.NoError(t, err)
	assert.Len(t, envelopes, 1)
}

func TestCredentials_BridgePushFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	f := newCredentialFixture(t)
	f.bridge.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(nil)
	f.bridge.EXPECT().PrepareCredentials(gomock.Any(), gomock.Any()).Return(errors.New("runtime unreachable"))

	entry := models.VaultEntry{ID: "e1", Website: "example.com", Username: "alice", Password: "hunter2", IsDecrypted: true}
	assert.NoError(t, f.credentials.PrepareCredentials(ctx, []models.VaultEntry{entry}, testMasterSecret))
}

func TestCredentials_PlaintextSourcePreWarmsCache(t *testing.T) {
	ctx := context.Background()
	f := newCredentialFixture(t)
	f.expectPush()

	entry := models.VaultEntry{ID: "e1", Website: "example.com", Username: "alice", Password: "hunter2", IsDecrypted: true}
	require.NoError(t, f.credentials.PrepareCredentials(ctx, []models.VaultEntry{entry}, testMasterSecret))

	got, err := f.cache.Retrieve(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

// --- PrepareFromRepository ---

func TestCredentials_PrepareFromRepository(t *testing.T) {
	ctx := context.Background()
	f := newCredentialFixture(t)
	f.expectPush()

	f.repo.EXPECT().FindAll(gomock.Any()).Return([]models.VaultEntry{
		{ID: "e1", Website: "example.com", Username: "alice", Password: "hunter2", IsDecrypted: true},
	}, nil)

	require.NoError(t, f.credentials.PrepareFromRepository(ctx, testMasterSecret))

	envelopes, err := f.credentials.LoadCredentials(ctx, testMasterSecret)
	require.NoError(t, err)
	assert.Len(t, envelopes, 1)
}

func TestCredentials_PrepareFromRepositoryLoadFailure(t *testing.T) {
	f := newCredentialFixture(t)
	f.repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db locked"))

	err := f.credentials.PrepareFromRepository(context.Background(), testMasterSecret)
	assert.ErrorContains(t, err, "load vault entries")
}

// --- LoadCredentials / ClearCredentials ---

func TestCredentials_LoadWithoutBundle(t *testing.T) {
	f := newCredentialFixture(t)

	envelopes, err := f.credentials.LoadCredentials(context.Background(), testMasterSecret)
	require.NoError(t, err)
	assert.Empty(t, envelopes)
}

func TestCredentials_LoadWithWrongSecret(t *testing.T) {
	ctx := context.Background()
	f := newCredentialFixture(t)
	f.expectPush()

	entry := models.VaultEntry{ID: "e1", Website: "example.com", Username: "alice", Password: "hunter2", IsDecrypted: true}
	require.NoError(t, f.credentials.PrepareCredentials(ctx, []models.VaultEntry{entry}, testMasterSecret))

	_, err := f.credentials.LoadCredentials(ctx, "wrong secret")
	assert.ErrorContains(t, err, "decrypt credential bundle")
}

func TestCredentials_ClearCredentials(t *testing.T) {
	ctx := context.Background()
	f := newCredentialFixture(t)
	f.expectPush()
	f.bridge.EXPECT().ClearCache(gomock.Any()).Return(errors.New("runtime unreachable"))

	entry := models.VaultEntry{ID: "e1", Website: "example.com", Username: "alice", Password: "hunter2", IsDecrypted: true}
	require.NoError(t, f.credentials.PrepareCredentials(ctx, []models.VaultEntry{entry}, testMasterSecret))

	// The runtime cache clear is best-effort; its failure does not surface.
	require.NoError(t, f.credentials.ClearCredentials(ctx))

	envelopes, err := f.credentials.LoadCredentials(ctx, testMasterSecret)
	require.NoError(t, err)
	assert.Empty(t, envelopes)

	_, err = f.cache.Retrieve(ctx, "e1")
	assert.ErrorIs(t, err, service.ErrCacheEntryNotFound)
}
