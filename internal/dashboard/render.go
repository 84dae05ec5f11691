package dashboard

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// palette is the qualitative color sequence used for groups.
var palette = []string{
	"636efa", "ef553b", "00cc96", "ab63fa", "ffa15a",
	"19d3f3", "ff6692", "b6e880", "ff97ff", "fecb52",
}

const (
	chartHeight   = 480
	barWidth      = 40
	barSpacing    = 12
	minChartWidth = 640
)

// GroupColor returns the color of the i-th group.
func GroupColor(i int) drawing.Color {
	return drawing.ColorFromHex(palette[i%len(palette)])
}

func groupHex(i int) string {
	return "#" + palette[i%len(palette)]
}

// Render draws fig as an SVG bar chart. Bars are laid out category by
// category, one per group present in that category, colored by group.
func Render(fig Figure) ([]byte, error) {
	graph, err := barChart(fig)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// barChart lays out fig. Bars rise or fall from a zero baseline and the
// value axis always includes zero.
func barChart(fig Figure) (chart.BarChart, error) {
	var (
		bars   []chart.Value
		lo, hi float64
	)
	for ci, cat := range fig.Categories {
		for gi, g := range fig.Groups {
			if !g.Present[ci] {
				continue
			}
			v := g.Values[ci]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}

			col := GroupColor(gi)
			bars = append(bars, chart.Value{
				Label: cat + "/" + g.Name,
				Value: v,
				Style: chart.Style{
					FillColor:   col,
					StrokeColor: col,
					StrokeWidth: 1,
				},
			})
		}
	}
	if len(bars) == 0 {
		return chart.BarChart{}, ErrEmptyFigure
	}
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	if hi <= lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.1

	width := len(bars)*(barWidth+barSpacing) + 160
	if width < minChartWidth {
		width = minChartWidth
	}

	return chart.BarChart{
		Width:        width,
		Height:       chartHeight,
		BarWidth:     barWidth,
		BarSpacing:   barSpacing,
		UseBaseValue: true,
		BaseValue:    0,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: chart.YAxis{
			Name:  fig.Spec.Y,
			Range: &chart.ContinuousRange{Min: lo - negPad(lo, pad), Max: hi + pad},
		},
		Bars: bars,
	}, nil
}

// negPad leaves headroom below the baseline only when some bar is negative.
func negPad(lo, pad float64) float64 {
	if lo < 0 {
		return pad
	}
	return 0
}
