package domain

import "time"

// DateLayout — формат календарной даты на оси X графика
const DateLayout = "2006-01-02"

// CoinListEntry — монета из списка провайдера (BTC, Bitcoin)
type CoinListEntry struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"name"`
}

// Label — подпись для выпадающего списка: "Bitcoin (BTC)"
func (c CoinListEntry) Label() string {
	return c.DisplayName + " (" + c.Symbol + ")"
}

// TimeframeLastFiveYears — окно "последние 5 лет" в нотации провайдера трендов
const TimeframeLastFiveYears = "today 5-y"

// TrendQuery — параметры запроса популярности
type TrendQuery struct {
	Terms     []string
	Category  int
	Timeframe string
	Geo       string
	Property  string
}

// TrendRow — одна дата таблицы трендов: значения идут в порядке TrendTable.Columns
type TrendRow struct {
	Date      time.Time
	Values    []float64
	IsPartial bool
}

// TrendTable — популярность по дням, по колонке на каждый запрошенный термин
type TrendTable struct {
	Columns []string
	Rows    []TrendRow
}

// Column возвращает индекс колонки с именем name или -1
func (t TrendTable) Column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Points проецирует колонку name в ряд TrendPoint.
// false, если колонки нет или в какой-то строке не хватает значений.
func (t TrendTable) Points(name string) ([]TrendPoint, bool) {
	col := t.Column(name)
	if col < 0 {
		return nil, false
	}
	out := make([]TrendPoint, 0, len(t.Rows))
	for _, row := range t.Rows {
		if col >= len(row.Values) {
			return nil, false
		}
		out = append(out, TrendPoint{Date: row.Date, Popularity: row.Values[col]})
	}
	return out, true
}

// TrendPoint — популярность поискового запроса за день
type TrendPoint struct {
	Date       time.Time
	Popularity float64
}

// PricePoint — дневная запись истории цены
type PricePoint struct {
	Date      time.Time // UTC, из unix-секунд поля time
	HighPrice float64
}

// Axis — ось Y, к которой привязана серия
type Axis string

const (
	AxisPrimary   Axis = "y"
	AxisSecondary Axis = "y2"
)

// SeriesPoint — точка серии: дата в формате YYYY-MM-DD и значение
type SeriesPoint struct {
	Date  string
	Value float64
}

// ChartSeries — одна линия на графике
type ChartSeries struct {
	Name   string
	Points []SeriesPoint
	Axis   Axis
}

// AxisLayout — подписи осей и положение вторичной оси
type AxisLayout struct {
	XTitle         string
	YTitle         string
	Y2Title        string
	Y2Side         string
	Y2OverlayingOn Axis
}

// ResultKind — вариант результата запроса
type ResultKind string

const (
	ResultEmpty     ResultKind = "empty"
	ResultNoResults ResultKind = "no_results"
	ResultChart     ResultKind = "chart"
)

// QueryResult — итог одного запуска пайплайна.
// Series и Layout заполнены только для ResultChart, Reason — только для остальных вариантов.
type QueryResult struct {
	QueryID string
	Kind    ResultKind
	Series  [2]ChartSeries
	Layout  AxisLayout
	Reason  error
}

func EmptyResult(reason error) QueryResult {
	return QueryResult{Kind: ResultEmpty, Reason: reason}
}

func NoResults(reason error) QueryResult {
	return QueryResult{Kind: ResultNoResults, Reason: reason}
}

func ChartResult(popularity, price ChartSeries, layout AxisLayout) QueryResult {
	return QueryResult{Kind: ResultChart, Series: [2]ChartSeries{popularity, price}, Layout: layout}
}
