package models

// DecryptRequest is the event raised by the external autofill runtime when
// it needs a stored credential decrypted to fill a form. All encryption
// components are hex/base64 strings as produced by the envelope builder.
type DecryptRequest struct {
	CredentialID      string `json:"credentialId"`
	EncryptedPassword string `json:"encryptedPassword"`
	Salt              string `json:"salt"`
	IV                string `json:"iv"`
	Tag               string `json:"tag"`
	Domain            string `json:"domain"`
}

// Complete reports whether every component needed for decryption is present.
func (r DecryptRequest) Complete() bool {
	return r.CredentialID != "" && r.EncryptedPassword != "" &&
		r.Salt != "" && r.IV != "" && r.Tag != ""
}

// DecryptResult is the answer sent back to the runtime for one
// DecryptRequest. Password is set only when Success is true; failure paths
// never carry plaintext.
type DecryptResult struct {
	CredentialID string `json:"credentialId"`
	Password     string `json:"password,omitempty"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}
