package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
	"github.com/NastyaGoryachaya/crypto-trends/internal/ports/errcode"
)

//go:generate mockgen -source=http.go -destination=mocks/mock_http.go -package=mocks

// TrendRunner — пайплайн "популярность + цена"
type TrendRunner interface {
	Execute(ctx context.Context, searchTerm, coinID string) domain.QueryResult
}

// CoinCatalog — список монет, загруженный при старте
type CoinCatalog interface {
	All() []domain.CoinListEntry
	Len() int
}

// HistoryReader — журнал запросов (только если включён postgres)
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error)
}

// Coin — DTO элемента выпадающего списка
type Coin struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Label  string `json:"label"`
}

// TrendResponse — ответ на запрос графика. HTTP-статус всегда 200, исход — в Status.
type TrendResponse struct {
	Status  domain.ResultKind `json:"status"`
	QueryID string            `json:"query_id,omitempty"`
	Code    errcode.Code      `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Figure  *Figure           `json:"figure,omitempty"`
}

// MakeTrendResponse — общий перевод результата в DTO (HTTP и CLI)
func MakeTrendResponse(res domain.QueryResult) TrendResponse {
	out := TrendResponse{Status: res.Kind, QueryID: res.QueryID}
	switch res.Kind {
	case domain.ResultChart:
		fig := NewFigure(res)
		out.Figure = &fig
	case domain.ResultNoResults:
		out.Code = FromPipelineReason(res.Reason)
		out.Message = errcode.Message(out.Code)
	}
	return out
}

// TrendsHandler — HTTP-handler дашборда
type TrendsHandler struct {
	logger  *slog.Logger
	runner  TrendRunner
	coins   CoinCatalog
	history HistoryReader
	page    []byte
	timeout time.Duration
}

func NewTrendsHandler(logger *slog.Logger, runner TrendRunner, coins CoinCatalog, page []byte, timeout time.Duration) *TrendsHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if runner == nil {
		log.Fatal("nil runner")
	}
	if coins == nil {
		log.Fatal("nil coin catalog")
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &TrendsHandler{
		logger:  logger,
		runner:  runner,
		coins:   coins,
		page:    page,
		timeout: timeout,
	}
}

// WithHistory подключает журнал запросов и маршрут /api/history
func (h *TrendsHandler) WithHistory(history HistoryReader) *TrendsHandler {
	h.history = history
	return h
}

func (h *TrendsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard)
	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.GET("/coins", h.GetCoins)
	api.GET("/trends", h.GetTrends)
	if h.history != nil {
		api.GET("/history", h.GetHistory)
	}
}

func (h *TrendsHandler) Dashboard(c echo.Context) error {
	if len(h.page) == 0 {
		return c.NoContent(http.StatusNotFound)
	}
	return c.HTMLBlob(http.StatusOK, h.page)
}

func (h *TrendsHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"coins":  h.coins.Len(),
	})
}

func (h *TrendsHandler) GetCoins(c echo.Context) error {
	list := h.coins.All()
	out := make([]Coin, 0, len(list))
	for _, e := range list {
		out = append(out, Coin{Symbol: e.Symbol, Name: e.DisplayName, Label: e.Label()})
	}
	return c.JSON(http.StatusOK, out)
}

// GetTrends — запуск пайплайна по кнопке "Search": ?term=...&coin=...
func (h *TrendsHandler) GetTrends(c echo.Context) error {
	term := c.QueryParam("term")
	coin := c.QueryParam("coin")

	res := h.runner.Execute(c.Request().Context(), term, coin)
	out := MakeTrendResponse(res)
	if out.Code == errcode.Internal {
		h.logger.Error("unexpected pipeline reason",
			slog.String("op", "GetTrends"),
			slog.String("query_id", res.QueryID),
			slog.Any("reason", res.Reason),
		)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TrendsHandler) GetHistory(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, errorBody(errcode.BadRequest))
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.history.Recent(ctx, limit)
	if err != nil {
		h.logger.Error("Recent failed",
			slog.String("op", "GetHistory"),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, errorBody(errcode.Internal))
	}
	return c.JSON(http.StatusOK, items)
}

func errorBody(code errcode.Code) echo.Map {
	return echo.Map{
		"code":    code,
		"message": errcode.Message(code),
	}
}
