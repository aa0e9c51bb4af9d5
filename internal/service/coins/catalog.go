package coins

import (
	"strings"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
)

// Catalog — неизменяемый список монет, загруженный при старте.
// Только чтение, поэтому безопасен для конкурентного доступа без блокировок.
type Catalog struct {
	entries []domain.CoinListEntry
}

func NewCatalog(entries []domain.CoinListEntry) *Catalog {
	cp := make([]domain.CoinListEntry, len(entries))
	copy(cp, entries)
	return &Catalog{entries: cp}
}

// All возвращает копию списка
func (c *Catalog) All() []domain.CoinListEntry {
	out := make([]domain.CoinListEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Len() int { return len(c.entries) }

// Search — монеты, у которых символ или имя содержит filter (без учёта регистра).
// limit <= 0 означает без ограничения.
func (c *Catalog) Search(filter string, limit int) []domain.CoinListEntry {
	f := strings.ToLower(strings.TrimSpace(filter))
	out := []domain.CoinListEntry{}
	for _, e := range c.entries {
		if f != "" &&
			!strings.Contains(strings.ToLower(e.Symbol), f) &&
			!strings.Contains(strings.ToLower(e.DisplayName), f) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Lookup ищет монету по точному символу
func (c *Catalog) Lookup(symbol string) (domain.CoinListEntry, bool) {
	for _, e := range c.entries {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return domain.CoinListEntry{}, false
}
