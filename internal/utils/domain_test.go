package utils_test

import (
	"testing"

	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name    string
		website string
		want    string
	}{
		{name: "plain domain", website: "example.com", want: "example.com"},
		{name: "https scheme", website: "https://example.com", want: "example.com"},
		{name: "http scheme", website: "http://example.com", want: "example.com"},
		{name: "www prefix", website: "https://www.example.com", want: "example.com"},
		{name: "mixed case", website: "https://mail.Example.COM/login", want: "mail.example.com"},
		{name: "path", website: "example.com/login/form", want: "example.com"},
		{name: "query", website: "example.com?next=home", want: "example.com"},
		{name: "fragment", website: "example.com#section", want: "example.com"},
		{name: "port", website: "example.com:8443", want: "example.com"},
		{name: "everything", website: "  HTTPS://WWW.Mail.Example.com:8443/login?a=1#top ", want: "mail.example.com"},
		{name: "empty", website: "", want: ""},
		{name: "subdomain kept", website: "accounts.example.com", want: "accounts.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NormalizeDomain(tt.website))
		})
	}
}

func TestMatchesTrustedDomain(t *testing.T) {
	trusted := []string{"example.com", "https://bank.io"}

	tests := []struct {
		name            string
		domain          string
		allowSubdomains bool
		want            bool
	}{
		{name: "exact match", domain: "example.com", allowSubdomains: false, want: true},
		{name: "exact match normalised trusted", domain: "bank.io", allowSubdomains: false, want: true},
		{name: "subdomain allowed", domain: "mail.example.com", allowSubdomains: true, want: true},
		{name: "subdomain denied", domain: "mail.example.com", allowSubdomains: false, want: false},
		{name: "deep subdomain allowed", domain: "a.b.example.com", allowSubdomains: true, want: true},
		{name: "suffix but not subdomain", domain: "evilexample.com", allowSubdomains: true, want: false},
		{name: "unrelated domain", domain: "other.org", allowSubdomains: true, want: false},
		{name: "empty domain", domain: "", allowSubdomains: true, want: false},
		{name: "domain with scheme", domain: "https://www.example.com", allowSubdomains: false, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.MatchesTrustedDomain(tt.domain, trusted, tt.allowSubdomains))
		})
	}
}

func TestMatchesTrustedDomain_EmptyTrustedList(t *testing.T) {
	assert.False(t, utils.MatchesTrustedDomain("example.com", nil, true))
	assert.False(t, utils.MatchesTrustedDomain("example.com", []string{""}, true))
}
