package googletrends

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-trends/internal/config"
	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
	"github.com/NastyaGoryachaya/crypto-trends/internal/infra/httpclient"
)

const (
	timeseriesWidget = "TIMESERIES"

	defaultPrimeTimeout = 10 * time.Second
)

var (
	// ErrMalformed — ответ не удалось разобрать или он не совпадает с запросом
	ErrMalformed = fmt.Errorf("googletrends: %w", domain.ErrMalformedResponse)
	// ErrNoWidget — explore не вернул виджет временного ряда
	ErrNoWidget = fmt.Errorf("googletrends: timeseries widget not found: %w", domain.ErrMalformedResponse)
)

type Client struct {
	cfg        config.TrendsConfig
	httpClient *http.Client
	logger     *slog.Logger

	primeMu sync.Mutex
	primed  bool
}

type comparisonItem struct {
	Keyword string `json:"keyword"`
	Time    string `json:"time"`
	Geo     string `json:"geo"`
}

type exploreRequest struct {
	ComparisonItem []comparisonItem `json:"comparisonItem"`
	Category       int              `json:"category"`
	Property       string           `json:"property"`
}

type exploreResponse struct {
	Widgets []struct {
		ID      string          `json:"id"`
		Token   string          `json:"token"`
		Request json.RawMessage `json:"request"`
	} `json:"widgets"`
}

type multilineResponse struct {
	Default *struct {
		TimelineData []struct {
			Time      string    `json:"time"`
			Value     []float64 `json:"value"`
			IsPartial bool      `json:"isPartial"`
		} `json:"timelineData"`
	} `json:"default"`
}

// NewClient — клиент Google Trends. Если httpClient == nil, создаётся клиент с cookie jar.
func NewClient(cfg config.TrendsConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = httpclient.NewWithCookies(cfg.Timeout)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{cfg: cfg, httpClient: httpClient, logger: logger}
}

// InterestOverTime — популярность терминов во времени (explore -> multiline)
func (c *Client) InterestOverTime(ctx context.Context, p domain.TrendQuery) (domain.TrendTable, error) {
	if len(p.Terms) == 0 {
		return domain.TrendTable{}, errors.New("googletrends: no terms")
	}
	c.ensurePrimed(ctx)

	token, widgetReq, err := c.explore(ctx, p)
	if err != nil {
		return domain.TrendTable{}, err
	}

	q := url.Values{}
	q.Set("req", string(widgetReq))
	q.Set("token", token)
	q.Set("tz", strconv.Itoa(c.cfg.TZ))

	body, err := c.get(ctx, "/trends/api/widgetdata/multiline", q)
	if err != nil {
		return domain.TrendTable{}, fmt.Errorf("multiline: %w", err)
	}

	var resp multilineResponse
	if err := json.Unmarshal(stripXSSIPrefix(body), &resp); err != nil {
		return domain.TrendTable{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if resp.Default == nil {
		return domain.TrendTable{}, fmt.Errorf("%w: no default section", ErrMalformed)
	}

	table := domain.TrendTable{Columns: append([]string(nil), p.Terms...), Rows: make([]domain.TrendRow, 0, len(resp.Default.TimelineData))}
	for _, d := range resp.Default.TimelineData {
		sec, err := strconv.ParseInt(d.Time, 10, 64)
		if err != nil {
			return domain.TrendTable{}, fmt.Errorf("%w: time %q: %v", ErrMalformed, d.Time, err)
		}
		if len(d.Value) != len(p.Terms) {
			return domain.TrendTable{}, fmt.Errorf("%w: %d values for %d terms", ErrMalformed, len(d.Value), len(p.Terms))
		}
		table.Rows = append(table.Rows, domain.TrendRow{
			Date:      time.Unix(sec, 0).UTC(),
			Values:    d.Value,
			IsPartial: d.IsPartial,
		})
	}
	return table, nil
}

// explore получает token и request виджета TIMESERIES
func (c *Client) explore(ctx context.Context, p domain.TrendQuery) (string, json.RawMessage, error) {
	req := exploreRequest{Category: p.Category, Property: p.Property}
	for _, term := range p.Terms {
		req.ComparisonItem = append(req.ComparisonItem, comparisonItem{Keyword: term, Time: p.Timeframe, Geo: p.Geo})
	}
	rawReq, err := json.Marshal(req)
	if err != nil {
		return "", nil, fmt.Errorf("encoding explore request: %w", err)
	}

	q := url.Values{}
	q.Set("hl", c.cfg.HL)
	q.Set("tz", strconv.Itoa(c.cfg.TZ))
	q.Set("req", string(rawReq))

	body, err := c.get(ctx, "/trends/api/explore", q)
	if err != nil {
		return "", nil, fmt.Errorf("explore: %w", err)
	}

	var resp exploreResponse
	if err := json.Unmarshal(stripXSSIPrefix(body), &resp); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for _, w := range resp.Widgets {
		if w.ID == timeseriesWidget {
			return w.Token, w.Request, nil
		}
	}
	return "", nil, ErrNoWidget
}

// ensurePrimed получает сессионную cookie, пока это не удалось хотя бы раз.
// Без неё API отвечает 429; ошибка здесь не фатальна, следующий вызов попробует снова.
func (c *Client) ensurePrimed(ctx context.Context) {
	c.primeMu.Lock()
	defer c.primeMu.Unlock()
	if c.primed {
		return
	}

	// отмена запроса клиентом не должна срывать получение cookie
	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultPrimeTimeout
	}
	primeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	q := url.Values{}
	q.Set("geo", "US")
	if _, err := c.get(primeCtx, "/", q); err != nil {
		c.logger.Debug("trends cookie priming failed", slog.String("error", err.Error()))
		return
	}
	c.primed = true
}

func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u, err := url.Parse(strings.TrimRight(c.cfg.BaseURL, "/") + path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// stripXSSIPrefix убирает защитный префикс ")]}'" перед JSON
func stripXSSIPrefix(b []byte) []byte {
	if i := bytes.IndexByte(b, '{'); i > 0 {
		return b[i:]
	}
	return b
}
