package coins

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
)

//go:generate mockgen -source=loader.go -destination=mocks/mock_coin_list_provider.go -package=mocks

// CoinListProvider — внешний источник списка монет (CryptoCompare)
type CoinListProvider interface {
	FetchCoinList(ctx context.Context) ([]domain.CoinListEntry, error)
}

// Loader загружает список монет один раз при старте
type Loader struct {
	provider CoinListProvider
	logger   *slog.Logger
}

func NewLoader(provider CoinListProvider, logger *slog.Logger) *Loader {
	return &Loader{provider: provider, logger: logger}
}

// Load — список монет, отсортированный по имени без учёта регистра.
// Ошибка провайдера не фатальна: возвращается пустой список.
func (l *Loader) Load(ctx context.Context) []domain.CoinListEntry {
	list, err := l.provider.FetchCoinList(ctx)
	if err != nil {
		l.logger.Warn("coin list unavailable, selection will be empty", slog.String("error", err.Error()))
		return []domain.CoinListEntry{}
	}

	out := make([]domain.CoinListEntry, len(list))
	copy(out, list)
	// стабильная сортировка: при равных именах сохраняется порядок провайдера
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].DisplayName) < strings.ToLower(out[j].DisplayName)
	})

	l.logger.Info("coin list loaded", slog.Int("count", len(out)))
	return out
}
