package history

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
)

//go:generate mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks

const (
	DefaultLimit = 20
	MaxLimit     = 100

	saveTimeout = 2 * time.Second
)

// Runner — то, что умеет выполнить запрос графика (пайплайн)
type Runner interface {
	Execute(ctx context.Context, searchTerm, coinID string) domain.QueryResult
}

type QueryWriter interface {
	SaveQuery(ctx context.Context, rec domain.QueryRecord) error
}

type QueryReader interface {
	RecentQueries(ctx context.Context, limit int) ([]domain.QueryRecord, error)
}

type QueryPruner interface {
	DeleteQueriesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Recorder оборачивает пайплайн и пишет каждый выполненный запрос в журнал.
// Результат никогда не меняется из-за ошибки записи.
type Recorder struct {
	inner  Runner
	store  QueryWriter
	clock  Clock
	logger *slog.Logger
}

func NewRecorder(inner Runner, store QueryWriter, logger *slog.Logger) *Recorder {
	return &Recorder{
		inner:  inner,
		store:  store,
		clock:  NewRealClock(),
		logger: logger,
	}
}

// WithClock подменяет источник времени для created_at
func (r *Recorder) WithClock(c Clock) *Recorder {
	r.clock = c
	return r
}

func (r *Recorder) Execute(ctx context.Context, searchTerm, coinID string) domain.QueryResult {
	res := r.inner.Execute(ctx, searchTerm, coinID)
	// Empty — запроса к провайдерам не было, писать нечего
	if res.Kind == domain.ResultEmpty {
		return res
	}

	rec := domain.QueryRecord{
		ID:         res.QueryID,
		SearchTerm: strings.TrimSpace(searchTerm),
		CoinSymbol: strings.TrimSpace(coinID),
		Outcome:    res.Kind,
		CreatedAt:  r.clock.Now(),
	}
	if res.Reason != nil {
		rec.Reason = res.Reason.Error()
	}

	// запись не должна теряться из-за отмены запроса клиентом
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()
	if err := r.store.SaveQuery(saveCtx, rec); err != nil {
		r.logger.Error("failed to save query record",
			slog.String("query_id", rec.ID),
			slog.String("error", err.Error()),
		)
	}
	return res
}

// Service — чтение журнала запросов
type Service struct {
	store  QueryReader
	logger *slog.Logger
}

func NewService(store QueryReader, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Recent — последние запросы; limit приводится к диапазону 1..MaxLimit, 0 — DefaultLimit
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	items, err := s.store.RecentQueries(ctx, limit)
	if err != nil {
		s.logger.Error("failed to read query history", "err", err)
		return nil, err
	}
	return items, nil
}

// Pruner удаляет записи журнала старше retention. Используется как задача планировщика.
type Pruner struct {
	store     QueryPruner
	retention time.Duration
	clock     Clock
	logger    *slog.Logger
}

func NewPruner(store QueryPruner, retention time.Duration, clock Clock, logger *slog.Logger) *Pruner {
	if clock == nil {
		clock = NewRealClock()
	}
	return &Pruner{store: store, retention: retention, clock: clock, logger: logger}
}

func (p *Pruner) RunOnce(ctx context.Context) error {
	cutoff := p.clock.Now().Add(-p.retention)
	n, err := p.store.DeleteQueriesBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	p.logger.Debug("query history pruned",
		slog.Int64("deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return nil
}
