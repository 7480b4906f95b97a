package services

//go:generate mockgen -source=usage.go -destination=usage_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
	"github.com/sbilibin2017/gw-diet-planner/internal/repositories"
	"github.com/segmentio/kafka-go"
)

const dateLayout = "2006-01-02"

// TokenUsageStore is the usage ledger.
type TokenUsageStore interface {
	Save(ctx context.Context, usage models.TokenUsage) error
	SumSince(ctx context.Context, userID string, since time.Time) (int, error)
	SummarySince(ctx context.Context, userID string, since time.Time) ([]models.UsageByType, error)
}

// UsageCache holds per-user daily token counters.
type UsageCache interface {
	GetDailyTokens(ctx context.Context, userID, date string) (int, error)
	SeedDailyTokens(ctx context.Context, userID, date string, tokens int) error
	IncrDailyTokens(ctx context.Context, userID, date string, delta int) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// UsageService records model token consumption and enforces the daily quota.
// Neither recording nor checking ever fails the calling request.
type UsageService struct {
	store       TokenUsageStore
	cache       UsageCache
	kafkaWriter KafkaWriter
	dailyLimit  int
	timeout     time.Duration
	now         func() time.Time
	wg          sync.WaitGroup
}

type UsageOpt func(*UsageService)

// WithUsageClock overrides the clock used to find the start of the day.
func WithUsageClock(now func() time.Time) UsageOpt {
	return func(s *UsageService) { s.now = now }
}

// WithRecordTimeout bounds how long a detached record may run.
func WithRecordTimeout(d time.Duration) UsageOpt {
	return func(s *UsageService) { s.timeout = d }
}

// NewUsageService creates a UsageService. A dailyLimit of zero or less disables the quota.
// kafkaWriter may be nil.
func NewUsageService(store TokenUsageStore, cache UsageCache, kafkaWriter KafkaWriter, dailyLimit int, opts ...UsageOpt) *UsageService {
	s := &UsageService{
		store:       store,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		dailyLimit:  dailyLimit,
		timeout:     5 * time.Second,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UsageService) today() (string, time.Time) {
	now := s.now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start.Format(dateLayout), start
}

// RecordTokenUsage appends a ledger entry in the background and returns at once.
// Failures are logged only.
func (s *UsageService) RecordTokenUsage(ctx context.Context, usage models.TokenUsage) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		s.record(ctx, usage)
	}()
}

// Wait blocks until every detached record has finished.
func (s *UsageService) Wait() {
	s.wg.Wait()
}

func (s *UsageService) record(ctx context.Context, usage models.TokenUsage) {
	if err := s.store.Save(ctx, usage); err != nil {
		logger.Log.Errorw("failed to record token usage", "user_id", usage.UserID, "request_type", usage.RequestType, "error", err)
		return
	}

	date, _ := s.today()
	if err := s.cache.IncrDailyTokens(ctx, usage.UserID, date, usage.InputTokens+usage.OutputTokens); err != nil {
		logger.Log.Warnw("failed to bump usage counter", "user_id", usage.UserID, "error", err)
	}

	s.publishUsage(ctx, models.UsageEvent{
		EventID:      uuid.NewString(),
		Timestamp:    s.now().Unix(),
		UserID:       usage.UserID,
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		Model:        usage.Model,
		RequestType:  usage.RequestType,
	})
}

// publishUsage publishes a usage event to Kafka.
func (s *UsageService) publishUsage(ctx context.Context, event models.UsageEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal usage event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish usage event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Usage event published to Kafka", "event_id", event.EventID, "user_id", event.UserID)
	}
}

// dailyTokens reads today's total from the cache, falling back to the ledger
// and seeding the cache on a miss. A record that lands between the ledger sum
// and the seed is missed by the counter until it expires.
func (s *UsageService) dailyTokens(ctx context.Context, userID string) (int, error) {
	date, start := s.today()

	used, err := s.cache.GetDailyTokens(ctx, userID, date)
	if err == nil {
		return used, nil
	}
	if !errors.Is(err, repositories.ErrCacheMiss) {
		logger.Log.Warnw("usage cache unavailable, reading ledger", "user_id", userID, "error", err)
	}

	used, err = s.store.SumSince(ctx, userID, start)
	if err != nil {
		return 0, err
	}

	if err := s.cache.SeedDailyTokens(ctx, userID, date, used); err != nil {
		logger.Log.Warnw("failed to seed usage counter", "user_id", userID, "error", err)
	}
	return used, nil
}

// CheckDailyLimit reports whether userID may start another generation today.
// Any internal failure allows the action.
func (s *UsageService) CheckDailyLimit(ctx context.Context, userID string) models.LimitStatus {
	if s.dailyLimit <= 0 {
		return models.LimitStatus{Allowed: true}
	}

	used, err := s.dailyTokens(ctx, userID)
	if err != nil {
		logger.Log.Errorw("daily limit check failed, allowing", "user_id", userID, "error", err)
		return models.LimitStatus{Allowed: true, Limit: s.dailyLimit, Remaining: s.dailyLimit}
	}

	return models.LimitStatus{
		Allowed:   used < s.dailyLimit,
		Used:      used,
		Limit:     s.dailyLimit,
		Remaining: max(s.dailyLimit-used, 0),
	}
}

// Summary breaks today's usage down by request type.
func (s *UsageService) Summary(ctx context.Context, userID string) (*models.UsageSummary, error) {
	date, start := s.today()

	byType, err := s.store.SummarySince(ctx, userID, start)
	if err != nil {
		logger.Log.Errorw("failed to summarise usage", "user_id", userID, "error", err)
		return nil, err
	}

	summary := &models.UsageSummary{
		Date:       date,
		DailyLimit: s.dailyLimit,
		ByType:     byType,
	}
	for _, t := range byType {
		summary.TotalTokens += t.InputTokens + t.OutputTokens
	}
	if s.dailyLimit > 0 {
		summary.Remaining = max(s.dailyLimit-summary.TotalTokens, 0)
	}
	return summary, nil
}
