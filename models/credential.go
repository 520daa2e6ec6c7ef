package models

import "time"

// CredentialEnvelope is the transport-ready form of one vault entry, shaped
// for the external autofill runtime. The runtime treats the presence of an
// encryption envelope (Encrypted=true) as the signal to force a biometric
// prompt before filling.
//
// Invariant: Encrypted=true requires Salt, IV and Tag to all be non-empty
// and Password to hold ciphertext; Encrypted=false requires all three to be
// empty and Password to hold plaintext. An envelope violating this is never
// constructed; the builder drops the source entry instead.
type CredentialEnvelope struct {
	ID        string     `json:"id"`
	Domain    string     `json:"domain"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	Salt      string     `json:"salt,omitempty"`
	IV        string     `json:"iv,omitempty"`
	Tag       string     `json:"tag,omitempty"`
	Encrypted bool       `json:"encrypted"`
	LastUsed  *time.Time `json:"lastUsed,omitempty"`
}

// Consistent reports whether the envelope satisfies the encryption
// invariant: the salt/iv/tag triple is either fully present (encrypted)
// or fully absent (plaintext).
func (c CredentialEnvelope) Consistent() bool {
	if c.Encrypted {
		return c.Salt != "" && c.IV != "" && c.Tag != ""
	}
	return c.Salt == "" && c.IV == "" && c.Tag == ""
}
