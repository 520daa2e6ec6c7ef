// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen = 16
	ivLen   = 12
)

// ErrDecryptionFailed signals an authentication-tag mismatch: wrong key,
// wrong IV, or tampered ciphertext. Callers distinguish it from malformed
// input via errors.Is.
var ErrDecryptionFailed = errors.New("decryption failed")

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateIV implements [KeyChainService]. It reads 12 random bytes from the
// OS CSPRNG, matching the AES-GCM standard nonce size. Returns an error if
// the random read fails.
func (k *keyChainService) GenerateIV() ([]byte, error) {
	iv := make([]byte, ivLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// DeriveKey implements [KeyChainService]. It derives a 256-bit key from
// masterSecret and salt using Argon2id with the parameters stored in the
// receiver.
func (k *keyChainService) DeriveKey(masterSecret string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterSecret),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// EncryptPassword implements [KeyChainService]. AES-GCM produces the
// authentication tag appended to the ciphertext; the tag is split off and
// returned separately because the envelope wire format carries the two as
// distinct fields.
func (k *keyChainService) EncryptPassword(plaintext string, key, iv []byte) (string, string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", "", err
	}
	if len(iv) != gcm.NonceSize() {
		return "", "", fmt.Errorf("invalid iv length: %d", len(iv))
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)

	// sealed = ciphertext + tag, tag being the trailing gcm.Overhead() bytes.
	cut := len(sealed) - gcm.Overhead()
	ciphertext := base64.StdEncoding.EncodeToString(sealed[:cut])
	tag := base64.StdEncoding.EncodeToString(sealed[cut:])

	return ciphertext, tag, nil
}

// DecryptPassword implements [KeyChainService]. It reassembles the sealed
// blob from the separate ciphertext and tag fields and opens it with
// key/iv. Returns [ErrDecryptionFailed] when tag verification fails.
func (k *keyChainService) DecryptPassword(ciphertext, tag string, key, iv []byte) (string, error) {
	ct, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	tg, err := base64.StdEncoding.DecodeString(tag)
	if err != nil {
		return "", fmt.Errorf("decode tag: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(iv) != gcm.NonceSize() {
		return "", fmt.Errorf("invalid iv length: %d", len(iv))
	}
	if len(tg) != gcm.Overhead() {
		return "", fmt.Errorf("invalid tag length: %d", len(tg))
	}

	plaintext, err := gcm.Open(nil, iv, append(ct, tg...), nil)
	if err != nil {
		// Wrong master secret, wrong IV, or tampered ciphertext.
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

// EncryptPayload implements [KeyChainService]. It marshals data to JSON and
// seals it under a key derived from masterSecret with a fresh salt. The
// output is a Base64 (standard encoding) string of the blob:
// salt (16 bytes) + nonce (12 bytes) + ciphertext.
func (k *keyChainService) EncryptPayload(data any, masterSecret string) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	salt, err := k.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	nonce, err := k.GenerateIV()
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	gcm, err := newGCM(k.DeriveKey(masterSecret, salt))
	if err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(append(salt, nonce...), ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptPayload implements [KeyChainService]. It Base64-decodes the blob,
// splits out salt and nonce, re-derives the key from masterSecret, opens the
// ciphertext and unmarshals the plaintext JSON into target.
func (k *keyChainService) DecryptPayload(blob, masterSecret string, target any) error {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if len(raw) < saltLen+ivLen {
		return fmt.Errorf("payload too short")
	}

	salt, nonce, ciphertext := raw[:saltLen], raw[saltLen:saltLen+ivLen], raw[saltLen+ivLen:]

	gcm, err := newGCM(k.DeriveKey(masterSecret, salt))
	if err != nil {
		return err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	if err = json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
