package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService is the cryptographic core of the autofill pipeline. It
// knows nothing about storage, the runtime bridge or vault entries; its only
// job is deriving keys and producing/consuming authenticated ciphertext.
//
// Per-credential scheme:
//
//	salt, iv = GenerateSalt() + GenerateIV()
//	key      = DeriveKey(masterSecret, salt)
//	ct, tag  = EncryptPassword(plaintext, key, iv)
//
// The (ciphertext, salt, iv, tag) tuple is the credential envelope shipped
// to the external autofill runtime. Decryption reverses the same steps and
// fails with a distinguishable error when the tag does not verify.
type KeyChainService interface {
	// GenerateSalt returns a fresh random 16-byte key-derivation salt.
	// The salt is not a secret; it travels openly inside the envelope.
	GenerateSalt() ([]byte, error)

	// GenerateIV returns a fresh random 12-byte AES-GCM initialisation
	// vector. An IV must never be reused under the same key.
	GenerateIV() ([]byte, error)

	// DeriveKey derives a 256-bit encryption key from the master secret and
	// salt using Argon2id. The key exists only in memory and is never
	// persisted or transmitted.
	DeriveKey(masterSecret string, salt []byte) []byte

	// EncryptPassword encrypts plaintext with key/iv via AES-256-GCM and
	// returns the ciphertext and authentication tag as separate
	// base64-encoded strings, matching the envelope wire format.
	EncryptPassword(plaintext string, key, iv []byte) (ciphertext, tag string, err error)

	// DecryptPassword reverses EncryptPassword. It returns an error when
	// the inputs are malformed or when tag verification fails (wrong key,
	// wrong iv, or tampered ciphertext).
	DecryptPassword(ciphertext, tag string, key, iv []byte) (string, error)

	// EncryptPayload serialises data to JSON and seals it under a key
	// derived from masterSecret with a fresh salt. The result is a single
	// base64 blob (salt + nonce + ciphertext) used for the collection-level
	// envelope of the persisted credential bundle.
	EncryptPayload(data any, masterSecret string) (string, error)

	// DecryptPayload opens a blob produced by EncryptPayload and
	// unmarshals the plaintext JSON into target, which must be a non-nil
	// pointer.
	DecryptPayload(blob, masterSecret string, target any) error
}
