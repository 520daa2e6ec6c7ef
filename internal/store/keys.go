package store

// Opaque-store keys used by the autofill pipeline. The credential bundle is
// the only value stored encrypted; the remaining keys hold plaintext JSON.
const (
	KeyCredentials        = "autofill_credentials"
	KeySettings           = "autofill_settings"
	KeyDecryptedPasswords = "autofill_decrypted_passwords"
	KeyStatistics         = "autofill_statistics"
)
