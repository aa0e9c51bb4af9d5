package httptransport_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
	"github.com/NastyaGoryachaya/crypto-trends/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-trends/internal/service/coins"
	"github.com/NastyaGoryachaya/crypto-trends/internal/service/pipeline"
	"github.com/NastyaGoryachaya/crypto-trends/internal/transport/httptransport"
	httpmocks "github.com/NastyaGoryachaya/crypto-trends/internal/transport/httptransport/mocks"
)

func catalog() *coins.Catalog {
	return coins.NewCatalog([]domain.CoinListEntry{
		{Symbol: "BTC", DisplayName: "Bitcoin"},
		{Symbol: "ETH", DisplayName: "Ethereum"},
	})
}

func newServer(t *testing.T, runner httptransport.TrendRunner, history httptransport.HistoryReader) *echo.Echo {
	t.Helper()
	h := httptransport.NewTrendsHandler(slog.Default(), runner, catalog(), []byte("<html>dashboard</html>"), time.Second)
	if history != nil {
		h.WithHistory(history)
	}
	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func do(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func chart() domain.QueryResult {
	res := domain.ChartResult(
		domain.ChartSeries{Name: "Popularity", Axis: domain.AxisSecondary, Points: []domain.SeriesPoint{{Date: "2023-01-01", Value: 10}, {Date: "2023-01-02", Value: 20}}},
		domain.ChartSeries{Name: "Price", Axis: domain.AxisPrimary, Points: []domain.SeriesPoint{{Date: "2023-01-01", Value: 16500}}},
		domain.AxisLayout{XTitle: "Date", YTitle: "Price", Y2Title: "Popularity", Y2Side: "right", Y2OverlayingOn: domain.AxisPrimary},
	)
	res.QueryID = "q-1"
	return res
}

func TestGetCoins(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	rec := do(newServer(t, httpmocks.NewMockTrendRunner(ctrl), nil), "/api/coins")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []httptransport.Coin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, httptransport.Coin{Symbol: "BTC", Name: "Bitcoin", Label: "Bitcoin (BTC)"}, got[0])
}

func TestGetTrends_Chart(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	runner := httpmocks.NewMockTrendRunner(ctrl)
	runner.EXPECT().Execute(gomock.Any(), "bitcoin", "BTC").Return(chart()).Times(1)

	rec := do(newServer(t, runner, nil), "/api/trends?term=bitcoin&coin=BTC")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{
		"status": "chart",
		"query_id": "q-1",
		"figure": {
			"data": [
				{"type":"scatter","name":"Popularity","x":["2023-01-01","2023-01-02"],"y":[10,20],"yaxis":"y2"},
				{"type":"scatter","name":"Price","x":["2023-01-01"],"y":[16500]}
			],
			"layout": {
				"xaxis": {"title":"Date"},
				"yaxis": {"title":"Price"},
				"yaxis2": {"title":"Popularity","side":"right","overlaying":"y"}
			}
		}
	}`, rec.Body.String())
}

func TestGetTrends_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		res     domain.QueryResult
		status  domain.ResultKind
		code    errcode.Code
		message string
	}{
		{"empty input", domain.EmptyResult(pipeline.ErrInputIncomplete), domain.ResultEmpty, "", ""},
		{"no data", domain.NoResults(fmt.Errorf("%w: trends", pipeline.ErrProviderEmpty)), domain.ResultNoResults, errcode.NoResults, "No Results Found"},
		{"malformed", domain.NoResults(fmt.Errorf("%w: prices", pipeline.ErrProviderMalformed)), domain.ResultNoResults, errcode.NoResults, "No Results Found"},
		{"unreachable", domain.NoResults(fmt.Errorf("%w: prices: %w", pipeline.ErrProviderUnreachable, errors.New("timeout"))), domain.ResultNoResults, errcode.ServiceUnavailable, "Service unavailable"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			runner := httpmocks.NewMockTrendRunner(ctrl)
			runner.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.res)

			rec := do(newServer(t, runner, nil), "/api/trends?term=x&coin=Y")
			require.Equal(t, http.StatusOK, rec.Code)

			var got httptransport.TrendResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.message, got.Message)
			assert.Nil(t, got.Figure)
		})
	}
}

func TestHistory_RouteOnlyWhenEnabled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	rec := do(newServer(t, httpmocks.NewMockTrendRunner(ctrl), nil), "/api/history")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetHistory(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	history := httpmocks.NewMockHistoryReader(ctrl)

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	history.EXPECT().Recent(gomock.Any(), 5).Return([]domain.QueryRecord{
		{ID: "q-1", SearchTerm: "bitcoin", CoinSymbol: "BTC", Outcome: domain.ResultChart, CreatedAt: at},
	}, nil)

	e := newServer(t, httpmocks.NewMockTrendRunner(ctrl), history)

	rec := do(e, "/api/history?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"q-1","search_term":"bitcoin","coin_symbol":"BTC","outcome":"chart","created_at":"2024-03-01T12:00:00Z"}]`, rec.Body.String())

	for _, limit := range []string{"abc", "0", "-3"} {
		rec = do(e, "/api/history?limit="+limit)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"code":"BAD_REQUEST","message":"Bad request"}`, rec.Body.String())
	}
}

func TestGetHistory_StoreError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	history := httpmocks.NewMockHistoryReader(ctrl)
	history.EXPECT().Recent(gomock.Any(), 0).Return(nil, errors.New("db down"))

	rec := do(newServer(t, httpmocks.NewMockTrendRunner(ctrl), history), "/api/history")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"Internal error"}`, rec.Body.String())
}

func TestDashboardAndHealth(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	e := newServer(t, httpmocks.NewMockTrendRunner(ctrl), nil)

	rec := do(e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard")

	rec = do(e, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","coins":2}`, rec.Body.String())
}
