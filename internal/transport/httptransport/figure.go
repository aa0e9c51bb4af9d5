package httptransport

import "github.com/NastyaGoryachaya/crypto-trends/internal/domain"

// Figure — описание графика в формате plotly.js (data + layout)
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type  string    `json:"type"`
	Name  string    `json:"name"`
	X     []string  `json:"x"`
	Y     []float64 `json:"y"`
	YAxis string    `json:"yaxis,omitempty"`
}

type Axis struct {
	Title      string `json:"title"`
	Side       string `json:"side,omitempty"`
	Overlaying string `json:"overlaying,omitempty"`
}

type Layout struct {
	XAxis  Axis `json:"xaxis"`
	YAxis  Axis `json:"yaxis"`
	YAxis2 Axis `json:"yaxis2"`
}

// NewFigure собирает plotly-фигуру из результата пайплайна
func NewFigure(res domain.QueryResult) Figure {
	fig := Figure{Data: make([]Trace, 0, len(res.Series))}
	for _, s := range res.Series {
		tr := Trace{
			Type: "scatter",
			Name: s.Name,
			X:    make([]string, 0, len(s.Points)),
			Y:    make([]float64, 0, len(s.Points)),
		}
		// основная ось в plotly по умолчанию, указываем только вторичную
		if s.Axis == domain.AxisSecondary {
			tr.YAxis = string(domain.AxisSecondary)
		}
		for _, p := range s.Points {
			tr.X = append(tr.X, p.Date)
			tr.Y = append(tr.Y, p.Value)
		}
		fig.Data = append(fig.Data, tr)
	}

	fig.Layout = Layout{
		XAxis: Axis{Title: res.Layout.XTitle},
		YAxis: Axis{Title: res.Layout.YTitle},
		YAxis2: Axis{
			Title:      res.Layout.Y2Title,
			Side:       res.Layout.Y2Side,
			Overlaying: string(res.Layout.Y2OverlayingOn),
		},
	}
	return fig
}
