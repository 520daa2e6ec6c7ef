package models

// VaultEntry is a single record of the password vault as handed to the
// autofill pipeline. The vault subsystem owns these records; the pipeline
// reads them and never mutates them.
//
// IsDecrypted reports the state of the Password field: true means Password
// holds plaintext that is safe to encrypt fresh, false means Password holds
// ciphertext and PasswordSalt/PasswordIV/PasswordTag, when present, describe
// how to reverse it.
type VaultEntry struct {
	ID           string `json:"id" db:"id"`
	Website      string `json:"website" db:"website"`
	Username     string `json:"username" db:"username"`
	Password     string `json:"password" db:"password"`
	PasswordSalt string `json:"passwordSalt,omitempty" db:"password_salt"`
	PasswordIV   string `json:"passwordIv,omitempty" db:"password_iv"`
	PasswordTag  string `json:"passwordTag,omitempty" db:"password_tag"`
	IsDecrypted  bool   `json:"isDecrypted" db:"is_decrypted"`
}

// HasFullEnvelope reports whether the entry carries the complete
// salt/iv/tag triple needed to decrypt its stored ciphertext.
func (e VaultEntry) HasFullEnvelope() bool {
	return e.PasswordSalt != "" && e.PasswordIV != "" && e.PasswordTag != ""
}
