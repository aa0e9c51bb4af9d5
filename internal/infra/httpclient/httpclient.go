package httpclient

import (
	"net"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// New — клиент для внешних API с явными таймаутами.
// http.DefaultClient без таймаута, поэтому провайдеры всегда получают клиента отсюда.
func New(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

// NewWithCookies — как New, но с cookie jar (Google Trends требует сессионную cookie)
func NewWithCookies(timeout time.Duration) *http.Client {
	c := New(timeout)
	// cookiejar.New с nil-опциями не возвращает ошибку
	jar, _ := cookiejar.New(nil)
	c.Jar = jar
	return c
}
