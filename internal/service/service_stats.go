package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// statisticsService keeps the autofill usage counters in the opaque store.
// It is a best-effort sink: a statistics write must never fail the fill or
// preparation that produced it, so every error ends in the log.
type statisticsService struct {
	store  store.SecretStore
	logger *logger.Logger

	mu sync.Mutex
}

// NewStatisticsService constructs a [StatisticsService] backed by the given
// opaque store.
func NewStatisticsService(secretStore store.SecretStore, logger *logger.Logger) StatisticsService {
	return &statisticsService{store: secretStore, logger: logger}
}

// RecordFillSuccess implements [StatisticsService].
func (s *statisticsService) RecordFillSuccess(ctx context.Context, domain string) {
	s.update(ctx, func(stats *models.FillStatistics) {
		stats.FillSucceeded++
		now := time.Now()
		stats.LastFillAt = &now
		if domain != "" {
			if stats.Domains == nil {
				stats.Domains = make(map[string]int)
			}
			stats.Domains[domain]++
		}
	})
}

// RecordFillFailure implements [StatisticsService].
func (s *statisticsService) RecordFillFailure(ctx context.Context, domain, reason string) {
	s.logger.Debug().Str("domain", domain).Str("reason", reason).Msg("autofill decrypt failed")
	s.update(ctx, func(stats *models.FillStatistics) {
		stats.FillFailed++
		if domain != "" {
			if stats.FailedDomains == nil {
				stats.FailedDomains = make(map[string]int)
			}
			stats.FailedDomains[domain]++
		}
		stats.LastFailure = &models.FillFailure{Domain: domain, Reason: reason, At: time.Now()}
	})
}

// RecordCredentialsSaved implements [StatisticsService].
func (s *statisticsService) RecordCredentialsSaved(ctx context.Context, count int) {
	if count <= 0 {
		return
	}
	s.update(ctx, func(stats *models.FillStatistics) {
		stats.CredentialsSaved += count
	})
}

// Get implements [StatisticsService].
func (s *statisticsService) Get(ctx context.Context) (models.FillStatistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *statisticsService) update(ctx context.Context, apply func(*models.FillStatistics)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.load(ctx)
	if err != nil {
		s.logger.Err(err).Msg("failed to read autofill statistics")
		return
	}

	apply(&stats)

	payload, err := json.Marshal(stats)
	if err != nil {
		s.logger.Err(err).Msg("failed to encode autofill statistics")
		return
	}
	if err = s.store.SetItem(ctx, store.KeyStatistics, string(payload)); err != nil {
		s.logger.Err(err).Msg("failed to write autofill statistics")
	}
}

func (s *statisticsService) load(ctx context.Context) (models.FillStatistics, error) {
	raw, err := s.store.GetItem(ctx, store.KeyStatistics)
	if errors.Is(err, store.ErrItemNotFound) {
		return models.FillStatistics{}, nil
	}
	if err != nil {
		return models.FillStatistics{}, fmt.Errorf("read autofill statistics: %w", err)
	}

	var stats models.FillStatistics
	if err = json.Unmarshal([]byte(raw), &stats); err != nil {
		return models.FillStatistics{}, fmt.Errorf("decode autofill statistics: %w", err)
	}
	return stats, nil
}
