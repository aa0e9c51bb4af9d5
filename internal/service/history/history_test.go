package history_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
	"github.com/NastyaGoryachaya/crypto-trends/internal/service/history"
	historymocks "github.com/NastyaGoryachaya/crypto-trends/internal/service/history/mocks"
	"github.com/NastyaGoryachaya/crypto-trends/internal/service/pipeline"
)

// Выполненный запрос попадает в журнал с id и причиной
func TestRecorder_SavesExecutedQuery(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := historymocks.NewMockRunner(ctrl)
	store := historymocks.NewMockQueryWriter(ctrl)

	want := domain.NoResults(fmt.Errorf("%w: prices", pipeline.ErrProviderEmpty))
	want.QueryID = "5f1c9c1e-0000-4000-8000-000000000001"
	inner.EXPECT().Execute(gomock.Any(), " bitcoin ", "BTC").Return(want).Times(1)

	store.EXPECT().
		SaveQuery(gomock.Any(), gomock.AssignableToTypeOf(domain.QueryRecord{})).
		DoAndReturn(func(_ context.Context, rec domain.QueryRecord) error {
			if rec.ID != want.QueryID {
				t.Errorf("id mismatch: %s", rec.ID)
			}
			if rec.SearchTerm != "bitcoin" || rec.CoinSymbol != "BTC" {
				t.Errorf("unexpected inputs: %+v", rec)
			}
			if rec.Outcome != domain.ResultNoResults || rec.Reason == "" {
				t.Errorf("unexpected outcome: %+v", rec)
			}
			if rec.CreatedAt.IsZero() {
				t.Error("created_at must be set")
			}
			return nil
		}).
		Times(1)

	got := history.NewRecorder(inner, store, slog.Default()).Execute(context.Background(), " bitcoin ", "BTC")
	if got.Kind != want.Kind || got.QueryID != want.QueryID {
		t.Fatalf("result must pass through unchanged: %+v", got)
	}
}

// Пустой ввод — журнал не трогаем
func TestRecorder_SkipsEmpty(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := historymocks.NewMockRunner(ctrl)
	store := historymocks.NewMockQueryWriter(ctrl)

	inner.EXPECT().Execute(gomock.Any(), "", "BTC").Return(domain.EmptyResult(pipeline.ErrInputIncomplete))
	store.EXPECT().SaveQuery(gomock.Any(), gomock.Any()).Times(0)

	got := history.NewRecorder(inner, store, slog.Default()).Execute(context.Background(), "", "BTC")
	if got.Kind != domain.ResultEmpty {
		t.Fatalf("expected empty, got %s", got.Kind)
	}
}

// Ошибка записи не влияет на результат, запись идёт даже при отменённом контексте запроса
func TestRecorder_SaveErrorIgnored(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := historymocks.NewMockRunner(ctrl)
	store := historymocks.NewMockQueryWriter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chart := domain.ChartResult(domain.ChartSeries{Name: "Popularity"}, domain.ChartSeries{Name: "Price"}, domain.AxisLayout{})
	inner.EXPECT().Execute(gomock.Any(), "eth", "ETH").Return(chart)
	store.EXPECT().SaveQuery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.QueryRecord) error {
			if ctx.Err() != nil {
				t.Errorf("save context must not inherit cancellation: %v", ctx.Err())
			}
			return errors.New("db down")
		})

	got := history.NewRecorder(inner, store, slog.Default()).Execute(ctx, "eth", "ETH")
	if got.Kind != domain.ResultChart {
		t.Fatalf("expected chart, got %s", got.Kind)
	}
}

func TestService_RecentClampsLimit(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want int }{
		{0, history.DefaultLimit},
		{-5, history.DefaultLimit},
		{7, 7},
		{1000, history.MaxLimit},
	}
	for _, tc := range cases {
		ctrl := gomock.NewController(t)
		store := historymocks.NewMockQueryReader(ctrl)
		store.EXPECT().RecentQueries(gomock.Any(), tc.want).Return([]domain.QueryRecord{}, nil).Times(1)

		if _, err := history.NewService(store, slog.Default()).Recent(context.Background(), tc.in); err != nil {
			t.Fatalf("limit %d: unexpected error: %v", tc.in, err)
		}
		ctrl.Finish()
	}
}

func TestService_RecentError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockQueryReader(ctrl)
	store.EXPECT().RecentQueries(gomock.Any(), history.DefaultLimit).Return(nil, errors.New("db down"))

	if _, err := history.NewService(store, slog.Default()).Recent(context.Background(), 0); err == nil {
		t.Fatal("expected error")
	}
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestRecorder_UsesClock(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	inner := historymocks.NewMockRunner(ctrl)
	store := historymocks.NewMockQueryWriter(ctrl)

	inner.EXPECT().Execute(gomock.Any(), "doge", "DOGE").Return(domain.NoResults(pipeline.ErrProviderEmpty))
	store.EXPECT().SaveQuery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.QueryRecord) error {
			if !rec.CreatedAt.Equal(now) {
				t.Errorf("created_at = %v, want %v", rec.CreatedAt, now)
			}
			return nil
		})

	history.NewRecorder(inner, store, slog.Default()).
		WithClock(fixedClock{t: now}).
		Execute(context.Background(), "doge", "DOGE")
}

func TestPruner_DeletesBeforeCutoff(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	store := historymocks.NewMockQueryPruner(ctrl)
	store.EXPECT().DeleteQueriesBefore(gomock.Any(), now.Add(-30*24*time.Hour)).Return(int64(3), nil).Times(1)

	p := history.NewPruner(store, 30*24*time.Hour, fixedClock{t: now}, slog.Default())
	if err := p.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPruner_StoreError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockQueryPruner(ctrl)
	store.EXPECT().DeleteQueriesBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

	p := history.NewPruner(store, time.Hour, nil, slog.Default())
	if err := p.RunOnce(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
