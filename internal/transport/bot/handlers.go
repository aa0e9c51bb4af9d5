package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gopkg.in/telebot.v4"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
)

const coinsLimit = 20

var ErrTrendUsage = errors.New("usage: /trend {symbol} {search term}")

// handleStart — справка по командам
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send("Доступные команды:\n" +
		"/trend {symbol} {запрос} - популярность запроса и цена монеты (пример: /trend BTC bitcoin)\n" +
		"/coins {фильтр} - поиск монеты по символу или названию")
}

// handleCoins — до 20 монет, подходящих под фильтр
func (b *Bot) handleCoins(c telebot.Context) error {
	list := b.coins.Search(strings.Join(c.Args(), " "), coinsLimit)
	if len(list) == 0 {
		return c.Send("Монеты не найдены")
	}
	return c.Send(formatCoins(list))
}

// handleTrend — запуск пайплайна: первый аргумент символ, остальное — поисковый запрос
func (b *Bot) handleTrend(c telebot.Context) error {
	coin, term, err := parseTrendArgs(c.Args())
	if err != nil {
		b.logger.Debug("bot: /trend wrong args",
			slog.Int64("chat_id", c.Chat().ID),
			slog.String("text", c.Text()),
		)
		return c.Send("Укажи монету и запрос: /trend BTC bitcoin")
	}

	symbol, ok := resolveCoin(b.coins, coin)
	if !ok {
		return c.Send("Монета " + coin + " не найдена, поиск: /coins " + coin)
	}
	coin = symbol

	ctx, cancel := context.WithTimeout(context.Background(), b.queryTimeout)
	defer cancel()

	res := b.runner.Execute(ctx, term, coin)
	if res.Kind == domain.ResultChart {
		return c.Send(formatSummary(coin, term, res))
	}
	return c.Send(translateResult(res))
}

func parseTrendArgs(args []string) (coin, term string, err error) {
	if len(args) < 2 {
		return "", "", ErrTrendUsage
	}
	coin = strings.TrimSpace(args[0])
	term = strings.TrimSpace(strings.Join(args[1:], " "))
	if coin == "" || term == "" {
		return "", "", ErrTrendUsage
	}
	return coin, term, nil
}

// resolveCoin сверяет символ со списком монет: сначала точное совпадение, затем в верхнем регистре.
// Пустой список (провайдер не ответил при старте) запрос не блокирует.
func resolveCoin(coins CoinSearcher, raw string) (string, bool) {
	if coins.Len() == 0 {
		return raw, true
	}
	if e, ok := coins.Lookup(raw); ok {
		return e.Symbol, true
	}
	if e, ok := coins.Lookup(strings.ToUpper(raw)); ok {
		return e.Symbol, true
	}
	return "", false
}
