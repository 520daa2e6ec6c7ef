// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// AgentConfig is the top-level configuration container for the autofill
// agent. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type AgentConfig struct {
	// App holds application-level settings such as the bridge signing key
	// and token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the opaque secret store and the local
	// vault database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP endpoint the autofill runtime calls.
	Server Server `envPrefix:"SERVER_"`

	// Bridge holds the outbound settings of the runtime bridge.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the bridge
// token handshake and the unlock session.
type App struct {
	// BridgeSignKey is the secret key shared with the autofill runtime,
	// used to sign and verify bridge tokens. Must be kept confidential.
	// Env: APP_BRIDGE_SIGN_KEY
	BridgeSignKey string `env:"BRIDGE_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every bridge token and
	// validated on every inbound event.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a bridge token remains valid after
	// issuance (e.g. "1m", "30s").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SessionTTL bounds how long the unlocked master secret stays in the
	// session cache after a vault unlock (e.g. "5m").
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`
}

// Storage groups the configuration for all persistence backends used by the
// agent.
type Storage struct {
	// Secrets holds the opaque secret store settings.
	Secrets Secrets `envPrefix:"SECRETS_"`

	// DB holds the local vault database connection settings.
	DB DB `envPrefix:"DB_"`
}

// Secrets holds the opaque secret store settings.
type Secrets struct {
	// Path is the file the secret store persists into. The special value
	// ":memory:" (or an empty path) keeps everything in memory.
	// Env: STORAGE_SECRETS_PATH
	Path string `env:"PATH"`
}

// DB holds connection settings for the local vault database.
type DB struct {
	// DSN is the SQLite data source name of the vault database
	// (e.g. "/var/lib/autofill/vault.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound event endpoint.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Bridge holds the outbound settings of the runtime bridge.
type Bridge struct {
	// BaseURL is the base URL of the autofill runtime's local endpoint
	// (e.g. "http://127.0.0.1:9200").
	// Env: BRIDGE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-call timeout for outbound bridge requests.
	// Env: BRIDGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval defines how often the settings resync job mirrors the
	// persisted policy to the runtime.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetAgentConfig loads, merges, and validates the agent configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *AgentConfig or an error if any source fails to
// load or the final config fails validation.
func GetAgentConfig() (*AgentConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
