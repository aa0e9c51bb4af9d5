package domain_test

import (
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
)

func TestTrendTable_Points(t *testing.T) {
	t.Parallel()

	d1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2023, 1, 8, 0, 0, 0, 0, time.UTC)
	table := domain.TrendTable{
		Columns: []string{"bitcoin", "ethereum"},
		Rows: []domain.TrendRow{
			{Date: d1, Values: []float64{40, 12}},
			{Date: d2, Values: []float64{55, 14}, IsPartial: true},
		},
	}

	got, ok := table.Points("ethereum")
	if !ok {
		t.Fatal("expected column ethereum")
	}
	want := []domain.TrendPoint{{Date: d1, Popularity: 12}, {Date: d2, Popularity: 14}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected points: %+v", got)
	}

	// имя колонки сравнивается точно
	if _, ok := table.Points("Bitcoin"); ok {
		t.Fatal("column lookup must be exact")
	}

	table.Rows = append(table.Rows, domain.TrendRow{Date: d2.AddDate(0, 0, 7), Values: []float64{60}})
	if _, ok := table.Points("ethereum"); ok {
		t.Fatal("short row must fail projection")
	}
	if pts, ok := table.Points("bitcoin"); !ok || len(pts) != 3 {
		t.Fatalf("bitcoin column is complete, got %+v %v", pts, ok)
	}
}
