package utils

import "strings"

// NormalizeDomain reduces a stored website value to the bare domain the
// autofill runtime matches forms against: lowercase, scheme stripped,
// leading "www." stripped, and anything from the first path, query,
// fragment or port separator onwards cut off.
//
//	"https://mail.Example.com:8443/login?next=x" -> "mail.example.com"
func NormalizeDomain(website string) string {
	domain := strings.ToLower(strings.TrimSpace(website))

	if idx := strings.Index(domain, "://"); idx >= 0 {
		domain = domain[idx+3:]
	}
	domain = strings.TrimPrefix(domain, "www.")

	if idx := strings.IndexAny(domain, "/?#:"); idx >= 0 {
		domain = domain[:idx]
	}

	return domain
}

// MatchesTrustedDomain reports whether domain is covered by the trusted
// domain list. An exact match always counts; a subdomain of a trusted
// domain counts only when allowSubdomains is set. Entries in trusted are
// normalised before comparison so stored values may carry schemes or ports.
func MatchesTrustedDomain(domain string, trusted []string, allowSubdomains bool) bool {
	domain = NormalizeDomain(domain)
	if domain == "" {
		return false
	}

	for _, t := range trusted {
		t = NormalizeDomain(t)
		if t == "" {
			continue
		}
		if domain == t {
			return true
		}
		if allowSubdomains && strings.HasSuffix(domain, "."+t) {
			return true
		}
	}

	return false
}
