package models

// SettingsPolicy is the process-wide autofill configuration. It is persisted
// in the opaque store under the settings key and mirrored to the external
// autofill runtime after every change. The runtime's view may transiently
// lag the persisted value; local persistence is authoritative.
type SettingsPolicy struct {
	Enabled          bool     `json:"enabled"`
	RequireBiometric bool     `json:"requireBiometric"`
	AllowSubdomains  bool     `json:"allowSubdomains"`
	TrustedDomains   []string `json:"trustedDomains"`
}

// DefaultSettingsPolicy returns the policy used before the user has saved
// any settings: autofill off, biometric prompt required, subdomain matching
// on, no trusted domains.
func DefaultSettingsPolicy() SettingsPolicy {
	return SettingsPolicy{
		Enabled:          false,
		RequireBiometric: true,
		AllowSubdomains:  true,
		TrustedDomains:   []string{},
	}
}

// SettingsPolicyUpdate carries a partial settings change. Nil fields keep
// the current value; non-nil fields overwrite it (shallow merge).
type SettingsPolicyUpdate struct {
	Enabled          *bool     `json:"enabled,omitempty"`
	RequireBiometric *bool     `json:"requireBiometric,omitempty"`
	AllowSubdomains  *bool     `json:"allowSubdomains,omitempty"`
	TrustedDomains   *[]string `json:"trustedDomains,omitempty"`
}

// Apply merges the non-nil fields of the update over policy and returns the
// merged result. The receiver value is not modified.
func (u SettingsPolicyUpdate) Apply(policy SettingsPolicy) SettingsPolicy {
	if u.Enabled != nil {
		policy.Enabled = *u.Enabled
	}
	if u.RequireBiometric != nil {
		policy.RequireBiometric = *u.RequireBiometric
	}
	if u.AllowSubdomains != nil {
		policy.AllowSubdomains = *u.AllowSubdomains
	}
	if u.TrustedDomains != nil {
		policy.TrustedDomains = *u.TrustedDomains
	}
	return policy
}
