// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [AgentConfig] satisfies the agent's
// startup invariants. Optional groups (workers, session TTL) fall back to
// defaults elsewhere; only settings without a sane default are required here.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *AgentConfig) validate() error {
	if cfg.App.BridgeSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Bridge.BaseURL == "" || cfg.Bridge.RequestTimeout == 0 {
		return ErrInvalidBridgeConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
