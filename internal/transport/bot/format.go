package bot

import (
	"fmt"
	"strings"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
)

// formatCoins — список монет, по одной на строку
func formatCoins(list []domain.CoinListEntry) string {
	var bld strings.Builder
	for _, e := range list {
		bld.WriteString(e.Label())
		bld.WriteByte('\n')
	}
	return strings.TrimRight(bld.String(), "\n")
}

// formatSummary — текстовая сводка вместо графика
func formatSummary(coin, term string, res domain.QueryResult) string {
	var bld strings.Builder
	fmt.Fprintf(&bld, "[%s] %q\n", coin, term)
	for _, s := range res.Series {
		bld.WriteString(formatSeriesLine(s))
		bld.WriteByte('\n')
	}
	return strings.TrimRight(bld.String(), "\n")
}

func formatSeriesLine(s domain.ChartSeries) string {
	if len(s.Points) == 0 {
		return fmt.Sprintf("%s: нет данных", s.Name)
	}
	first, last := s.Points[0], s.Points[len(s.Points)-1]
	return fmt.Sprintf("%s: %d точек (%s … %s), последнее значение: %s",
		s.Name, len(s.Points), first.Date, last.Date, humanValue(last.Value))
}

// humanValue — два знака после запятой
func humanValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
