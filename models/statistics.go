package models

import "time"

// FillStatistics are the autofill usage counters persisted under the
// statistics key. Recording is best-effort; a failed statistics write never
// fails the operation that produced it.
type FillStatistics struct {
	FillSucceeded    int            `json:"fillSucceeded"`
	FillFailed       int            `json:"fillFailed"`
	CredentialsSaved int            `json:"credentialsSaved"`
	Domains          map[string]int `json:"domains,omitempty"`
	FailedDomains    map[string]int `json:"failedDomains,omitempty"`
	LastFillAt       *time.Time     `json:"lastFillAt,omitempty"`
	LastFailure      *FillFailure   `json:"lastFailure,omitempty"`
}

// FillFailure describes the most recent failed fill attempt. Domain is empty
// when the decrypt request carried none.
type FillFailure struct {
	Domain string    `json:"domain,omitempty"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}
