package bot

import (
	"context"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"

	"github.com/NastyaGoryachaya/crypto-trends/internal/config"
	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
)

// TrendRunner — пайплайн "популярность + цена"
type TrendRunner interface {
	Execute(ctx context.Context, searchTerm, coinID string) domain.QueryResult
}

// CoinSearcher — поиск по списку монет
type CoinSearcher interface {
	Search(filter string, limit int) []domain.CoinListEntry
	Lookup(symbol string) (domain.CoinListEntry, bool)
	Len() int
}

// Bot — телеграм-интерфейс к тому же пайплайну, что и дашборд
type Bot struct {
	bot          *telebot.Bot
	runner       TrendRunner
	coins        CoinSearcher
	queryTimeout time.Duration
	logger       *slog.Logger
}

// New создаёт бота и регистрирует команды
func New(cfg config.TelegramConfig, runner TrendRunner, coins CoinSearcher, queryTimeout time.Duration, logger *slog.Logger) (*Bot, error) {
	const defaultPollTimeout = 10 * time.Second

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: defaultPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	if queryTimeout <= 0 {
		queryTimeout = 30 * time.Second
	}

	bot := &Bot{
		bot:          b,
		runner:       runner,
		coins:        coins,
		queryTimeout: queryTimeout,
		logger:       logger,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/coins", bot.handleCoins)
	b.Handle("/trend", bot.handleTrend)
	return bot, nil
}

// Start запускает long polling в отдельной горутине
func (b *Bot) Start(_ context.Context) {
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
