package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
)

//go:generate mockgen -source=pipeline.go -destination=mocks/mock_providers.go -package=mocks

// Бизнес-логика: популярность запроса + история цены монеты -> два ряда для графика

const (
	SeriesPopularity = "Popularity"
	SeriesPrice      = "Price"
)

// TrendProvider — источник популярности поисковых запросов
type TrendProvider interface {
	InterestOverTime(ctx context.Context, q domain.TrendQuery) (domain.TrendTable, error)
}

// PriceProvider — источник дневной истории цены
type PriceProvider interface {
	FetchDailyHistory(ctx context.Context, symbol string) ([]domain.PricePoint, error)
}

type Pipeline struct {
	trends  TrendProvider
	prices  PriceProvider
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Pipeline)

// WithTimeout ограничивает один запуск; 0 — без ограничения
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

func New(trends TrendProvider, prices PriceProvider, logger *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{trends: trends, prices: prices, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Execute — один запуск по нажатию "Search". Ошибки не возвращаются:
// любой сбой превращается в Empty или NoResults с причиной в Reason.
// Кэша нет, каждый вызов заново ходит к обоим провайдерам.
func (p *Pipeline) Execute(ctx context.Context, searchTerm, coinID string) domain.QueryResult {
	term := strings.TrimSpace(searchTerm)
	coin := strings.TrimSpace(coinID)
	if term == "" || coin == "" {
		return domain.EmptyResult(ErrInputIncomplete)
	}

	queryID := uuid.NewString()
	started := time.Now()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	var (
		table    domain.TrendTable
		prices   []domain.PricePoint
		trendErr error
		priceErr error
	)

	// запросы независимы; ошибка одного не отменяет другой
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		table, trendErr = p.trends.InterestOverTime(gctx, domain.TrendQuery{
			Terms:     []string{term},
			Category:  0,
			Timeframe: domain.TimeframeLastFiveYears,
			Geo:       "",
			Property:  "",
		})
		return nil
	})
	g.Go(func() error {
		prices, priceErr = p.prices.FetchDailyHistory(gctx, coin)
		return nil
	})
	_ = g.Wait()

	res, maxHigh := assemble(term, table, trendErr, prices, priceErr)
	res.QueryID = queryID

	attrs := []any{
		slog.String("query_id", queryID),
		slog.String("term", term),
		slog.String("coin", coin),
		slog.String("outcome", string(res.Kind)),
		slog.Duration("took", time.Since(started)),
	}
	if res.Reason != nil {
		attrs = append(attrs, slog.String("reason", res.Reason.Error()))
		p.logger.Warn("trend query without chart", attrs...)
	} else {
		attrs = append(attrs, slog.Float64("max_high", maxHigh))
		p.logger.Info("trend query completed", attrs...)
	}
	return res
}

// assemble проверяет ответы в фиксированном порядке и строит график.
// Второе значение — максимальная цена high, для лога.
func assemble(term string, table domain.TrendTable, trendErr error, prices []domain.PricePoint, priceErr error) (domain.QueryResult, float64) {
	if trendErr != nil {
		return domain.NoResults(classify("trends", trendErr)), 0
	}
	if len(table.Rows) == 0 {
		return domain.NoResults(fmt.Errorf("%w: trends", ErrProviderEmpty)), 0
	}
	trend, ok := table.Points(term)
	if !ok {
		return domain.NoResults(fmt.Errorf("%w: trends: no complete column %q", ErrProviderMalformed, term)), 0
	}

	if priceErr != nil {
		return domain.NoResults(classify("prices", priceErr)), 0
	}
	if len(prices) == 0 {
		return domain.NoResults(fmt.Errorf("%w: prices", ErrProviderEmpty)), 0
	}

	maxHigh := math.Inf(-1)
	for _, pp := range prices {
		maxHigh = math.Max(maxHigh, pp.HighPrice)
	}

	popularity := domain.ChartSeries{
		Name:   SeriesPopularity,
		Axis:   domain.AxisSecondary,
		Points: make([]domain.SeriesPoint, 0, len(trend)),
	}
	for _, tp := range trend {
		popularity.Points = append(popularity.Points, domain.SeriesPoint{
			Date:  tp.Date.UTC().Format(domain.DateLayout),
			Value: tp.Popularity,
		})
	}

	price := domain.ChartSeries{
		Name:   SeriesPrice,
		Axis:   domain.AxisPrimary,
		Points: make([]domain.SeriesPoint, 0, len(prices)),
	}
	for _, pp := range prices {
		price.Points = append(price.Points, domain.SeriesPoint{
			Date:  pp.Date.UTC().Format(domain.DateLayout),
			Value: pp.HighPrice,
		})
	}

	layout := domain.AxisLayout{
		XTitle:         "Date",
		YTitle:         SeriesPrice,
		Y2Title:        SeriesPopularity,
		Y2Side:         "right",
		Y2OverlayingOn: domain.AxisPrimary,
	}
	return domain.ChartResult(popularity, price, layout), maxHigh
}

// classify сводит ошибку провайдера к Malformed или Unreachable
func classify(provider string, err error) error {
	if errors.Is(err, domain.ErrMalformedResponse) {
		return fmt.Errorf("%w: %s: %w", ErrProviderMalformed, provider, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrProviderUnreachable, provider, err)
}
