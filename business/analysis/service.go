package analysis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"chestAnalyzer/business/behavior"
	"chestAnalyzer/business/chest"
	"chestAnalyzer/domain"
	"chestAnalyzer/pkg/logger"

	"github.com/google/uuid"
)

var ErrMissingUserID = errors.New("user_id is required")

// ResultCache stores completed analyses keyed by user id. A nil result
// with a nil error means no cached value.
type ResultCache interface {
	Get(ctx context.Context, userID string) (*domain.UserAnalysis, error)
	Store(ctx context.Context, result domain.UserAnalysis, ttl time.Duration) error
	Clear(ctx context.Context, userID string) error
	ClearAll(ctx context.Context) error
}

// Service runs the full analysis pipeline for a user: behavior scoring
// followed by chest-tier optimization, front-loaded by the result cache.
type Service struct {
	analyzer  *behavior.Analyzer
	optimizer *chest.Optimizer
	cache     ResultCache
	cacheTTL  time.Duration

	totalAnalyses atomic.Int64
	cacheHits     atomic.Int64
	cacheMisses   atomic.Int64
	totalTimeNs   atomic.Int64
}

// NewService builds the analysis service. cache may be nil, in which case
// every request is computed fresh.
func NewService(analyzer *behavior.Analyzer, optimizer *chest.Optimizer, cache ResultCache, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 300 * time.Second
	}
	return &Service{
		analyzer:  analyzer,
		optimizer: optimizer,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// AnalyzeUser analyzes one activity history and derives the chest
// distribution for it. Cached results are only served for the default
// tier set; a caller-restricted tier list is always computed fresh.
func (s *Service) AnalyzeUser(ctx context.Context, history domain.ActivityHistory, tiers []domain.ChestTier, useCache bool) (domain.UserAnalysis, error) {
	if history.UserID == "" {
		return domain.UserAnalysis{}, ErrMissingUserID
	}

	cacheable := useCache && s.cache != nil && len(tiers) == 0

	if cacheable {
		cached, err := s.cache.Get(ctx, history.UserID)
		if err != nil {
			logger.Warn("analysis cache read failed", "user_id", history.UserID, "error", err)
		} else if cached != nil {
			s.cacheHits.Add(1)
			return *cached, nil
		}
		s.cacheMisses.Add(1)
	}

	start := time.Now()

	analysis := s.analyzer.Analyze(history)

	profile := domain.UserProfile{
		UserID:        history.UserID,
		Score:         analysis.Score,
		RiskLevel:     analysis.RiskLevel,
		HistoryLength: history.RecordCount(),
	}
	distribution := s.optimizer.Optimize(ctx, profile, tiers)

	result := domain.UserAnalysis{
		AnalysisID:   uuid.NewString(),
		UserID:       history.UserID,
		Behavior:     analysis,
		Distribution: distribution,
		Timestamp:    time.Now().UTC(),
	}

	s.totalAnalyses.Add(1)
	s.totalTimeNs.Add(time.Since(start).Nanoseconds())

	if cacheable {
		if err := s.cache.Store(ctx, result, s.cacheTTL); err != nil {
			logger.Warn("analysis cache write failed", "user_id", history.UserID, "error", err)
		}
	}

	return result, nil
}

// AnalyzeBatch fans the analyses out concurrently and returns the
// successful results in input order. A failure is scoped to its own
// entry and never aborts the rest of the batch.
func (s *Service) AnalyzeBatch(ctx context.Context, histories []domain.ActivityHistory, tiers []domain.ChestTier, useCache bool) []domain.UserAnalysis {
	results := make([]*domain.UserAnalysis, len(histories))

	var wg sync.WaitGroup
	for i, history := range histories {
		wg.Add(1)
		go func(i int, history domain.ActivityHistory) {
			defer wg.Done()
			result, err := s.AnalyzeUser(ctx, history, tiers, useCache)
			if err != nil {
				logger.Warn("batch analysis entry failed", "user_id", history.UserID, "error", err)
				return
			}
			results[i] = &result
		}(i, history)
	}
	wg.Wait()

	out := make([]domain.UserAnalysis, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}

	logger.Info("batch analysis completed", "requested", len(histories), "succeeded", len(out))
	return out
}

// ClearCache drops one user's cached analysis, or every cached analysis
// when userID is empty.
func (s *Service) ClearCache(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}
	if userID != "" {
		return s.cache.Clear(ctx, userID)
	}
	return s.cache.ClearAll(ctx)
}

// Metrics snapshots the service's own performance counters.
func (s *Service) Metrics() domain.PerformanceMetrics {
	hits := s.cacheHits.Load()
	misses := s.cacheMisses.Load()
	analyses := s.totalAnalyses.Load()

	m := domain.PerformanceMetrics{
		TotalAnalyses: analyses,
		CacheHits:     hits,
		CacheMisses:   misses,
	}
	if hits+misses > 0 {
		m.CacheHitRate = float64(hits) / float64(hits+misses)
	}
	if analyses > 0 {
		m.AvgAnalysisTimeMs = float64(s.totalTimeNs.Load()) / float64(analyses) / 1e6
	}
	return m
}
