package cryptocompare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/NastyaGoryachaya/crypto-trends/internal/config"
	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
	"github.com/NastyaGoryachaya/crypto-trends/internal/infra/httpclient"
)

// ErrMalformed — в ответе нет ожидаемых полей
var ErrMalformed = fmt.Errorf("cryptocompare: %w", domain.ErrMalformedResponse)

type Client struct {
	cfg        config.CryptoCompareConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// histodayRecord — дневная запись histoday; указатели, чтобы отличать отсутствующее поле от нуля
type histodayRecord struct {
	Time *int64   `json:"time"`
	High *float64 `json:"high"`
}

type coinMeta struct {
	CoinName *string `json:"CoinName"`
}

// NewClient создаёт клиента CryptoCompare. Если httpClient == nil, берётся клиент с таймаутом из конфига.
func NewClient(cfg config.CryptoCompareConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = httpclient.New(cfg.Timeout)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.QuoteCurrency == "" {
		cfg.QuoteCurrency = "USD"
	}
	return &Client{cfg: cfg, httpClient: httpClient, logger: logger}
}

// FetchCoinList — список монет в порядке ключей ответа провайдера
func (c *Client) FetchCoinList(ctx context.Context) ([]domain.CoinListEntry, error) {
	body, err := c.get(ctx, c.cfg.CoinListURL, nil)
	if err != nil {
		return nil, err
	}
	defer c.closeBody(body)

	return decodeCoinList(body)
}

// FetchDailyHistory — вся доступная дневная история цены монеты в валюте котировки
func (c *Client) FetchDailyHistory(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	u, err := url.JoinPath(c.cfg.BaseURL, "histoday")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := url.Values{}
	q.Set("fsym", symbol)
	q.Set("tsym", c.cfg.QuoteCurrency)
	q.Set("allData", "true")

	body, err := c.get(ctx, u, q)
	if err != nil {
		return nil, err
	}
	defer c.closeBody(body)

	var top map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&top); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	raw, ok := top["Data"]
	if !ok {
		var msg string
		_ = json.Unmarshal(top["Message"], &msg)
		return nil, fmt.Errorf("%w: no Data field (%s)", ErrMalformed, msg)
	}
	return decodeHistory(raw)
}

func (c *Client) get(ctx context.Context, rawURL string, q url.Values) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if q != nil {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Apikey "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.closeBody(resp.Body)
		return nil, fmt.Errorf("request failed: %s", resp.Status)
	}
	return resp.Body, nil
}

// decodeHistory разбирает поле Data: массив записей, либо пустые {} / null
func decodeHistory(raw json.RawMessage) ([]domain.PricePoint, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("{}")):
		return []domain.PricePoint{}, nil
	case raw[0] != '[':
		return nil, fmt.Errorf("%w: Data is not a list", ErrMalformed)
	}

	var records []histodayRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := make([]domain.PricePoint, 0, len(records))
	for i, r := range records {
		if r.High == nil {
			return nil, fmt.Errorf("%w: record %d has no high", ErrMalformed, i)
		}
		if r.Time == nil {
			return nil, fmt.Errorf("%w: record %d has no time", ErrMalformed, i)
		}
		out = append(out, domain.PricePoint{
			Date:      time.Unix(*r.Time, 0).UTC(),
			HighPrice: *r.High,
		})
	}
	return out, nil
}

// decodeCoinList читает ответ потоково, чтобы сохранить порядок ключей Data
func decodeCoinList(r io.Reader) ([]domain.CoinListEntry, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	found := false
	out := []domain.CoinListEntry{}
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if key != "Data" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			continue
		}
		found = true

		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if tok == nil {
			continue
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, fmt.Errorf("%w: Data is not an object", ErrMalformed)
		}
		for dec.More() {
			symTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			symbol, _ := symTok.(string)
			var meta coinMeta
			if err := dec.Decode(&meta); err != nil {
				return nil, fmt.Errorf("%w: coin %q: %v", ErrMalformed, symbol, err)
			}
			if meta.CoinName == nil {
				return nil, fmt.Errorf("%w: coin %q has no CoinName", ErrMalformed, symbol)
			}
			out = append(out, domain.CoinListEntry{Symbol: symbol, DisplayName: *meta.CoinName})
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: no Data field", ErrMalformed)
	}
	return out, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q", ErrMalformed, want)
	}
	return nil
}

func (c *Client) closeBody(body io.Closer) {
	if err := body.Close(); err != nil {
		c.logger.Warn("failed to close response body", "error", err)
	}
}
