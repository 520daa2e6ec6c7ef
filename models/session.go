package models

// UnlockRequest is the host application's notification that the vault was
// unlocked. The master secret inside never leaves the loopback interface and
// is only kept in the in-process session cache.
type UnlockRequest struct {
	MasterSecret string `json:"masterSecret"`
}
