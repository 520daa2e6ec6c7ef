package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// settingsService owns the persisted settings policy. Local persistence is
// authoritative; the runtime's mirror may transiently lag and catches up on
// the next successful sync (every credential preparation syncs first).
type settingsService struct {
	store  store.SecretStore
	bridge adapter.AutofillBridge
	logger *logger.Logger
}

// NewSettingsService constructs a [SettingsService].
func NewSettingsService(secretStore store.SecretStore, bridge adapter.AutofillBridge, logger *logger.Logger) SettingsService {
	return &settingsService{store: secretStore, bridge: bridge, logger: logger}
}

// Get implements [SettingsService].
func (s *settingsService) Get(ctx context.Context) (models.SettingsPolicy, error) {
	raw, err := s.store.GetItem(ctx, store.KeySettings)
	if errors.Is(err, store.ErrItemNotFound) {
		return models.DefaultSettingsPolicy(), nil
	}
	if err != nil {
		return models.SettingsPolicy{}, fmt.Errorf("read autofill settings: %w", err)
	}

	var policy models.SettingsPolicy
	if err = json.Unmarshal([]byte(raw), &policy); err != nil {
		return models.SettingsPolicy{}, fmt.Errorf("decode autofill settings: %w", err)
	}
	return policy, nil
}

// Update implements [SettingsService]. Persistence completes strictly
// before the mirror attempt; a mirror failure is logged and swallowed.
func (s *settingsService) Update(ctx context.Context, update models.SettingsPolicyUpdate) (models.SettingsPolicy, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return models.SettingsPolicy{}, err
	}

	merged := update.Apply(current)

	if err = s.persist(ctx, merged); err != nil {
		return models.SettingsPolicy{}, err
	}

	if err = s.bridge.UpdateSettings(ctx, merged); err != nil {
		s.logger.Err(err).Msg("failed to mirror autofill settings to runtime")
	}

	return merged, nil
}

// Sync implements [SettingsService].
func (s *settingsService) Sync(ctx context.Context) error {
	policy, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if err = s.bridge.UpdateSettings(ctx, policy); err != nil {
		return fmt.Errorf("mirror autofill settings: %w", err)
	}
	return nil
}

// Enable implements [SettingsService].
func (s *settingsService) Enable(ctx context.Context) (models.SettingsPolicy, error) {
	enabled := true
	policy, err := s.Update(ctx, models.SettingsPolicyUpdate{Enabled: &enabled})
	if err != nil {
		return models.SettingsPolicy{}, err
	}

	if err = s.bridge.RequestEnable(ctx); err != nil {
		s.logger.Err(err).Msg("failed to request autofill enable from platform")
	}
	return policy, nil
}

// Disable implements [SettingsService].
func (s *settingsService) Disable(ctx context.Context) (models.SettingsPolicy, error) {
	enabled := false
	policy, err := s.Update(ctx, models.SettingsPolicyUpdate{Enabled: &enabled})
	if err != nil {
		return models.SettingsPolicy{}, err
	}

	if err = s.bridge.RequestDisable(ctx); err != nil {
		s.logger.Err(err).Msg("failed to request autofill disable from platform")
	}
	return policy, nil
}

func (s *settingsService) persist(ctx context.Context, policy models.SettingsPolicy) error {
	payload, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("encode autofill settings: %w", err)
	}
	if err = s.store.SetItem(ctx, store.KeySettings, string(payload)); err != nil {
		return fmt.Errorf("write autofill settings: %w", err)
	}
	return nil
}
