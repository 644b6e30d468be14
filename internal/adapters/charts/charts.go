// Package charts renders dashboard datasets as inline SVG with go-chart.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when there is nothing to plot; callers render a
// placeholder instead of an empty chart.
var ErrNoData = errors.New("charts: no data")

const (
	width  = 720
	height = 360
)

type Bar struct {
	Label string
	Value float64
}

// Series is one line of a line chart. X and Y have the same length.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

type Point struct {
	Label string
	X, Y  float64
}

var background = chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}}

func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// paddedRange evita rangos degenerados (min == max) que go-chart no dibuja.
func paddedRange(lo, hi float64, fromZero bool) *chart.ContinuousRange {
	if fromZero && lo > 0 {
		lo = 0
	}
	if hi <= lo {
		if hi == 0 {
			return &chart.ContinuousRange{Min: lo, Max: lo + 1}
		}
		pad := math.Abs(hi) * 0.1
		return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
	}
	pad := (hi - lo) * 0.05
	if fromZero && lo == 0 {
		return &chart.ContinuousRange{Min: 0, Max: hi + pad}
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func bounds(vs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// BarChart renders one bar per entry, in input order.
func BarChart(title string, bars []Bar) ([]byte, error) {
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	values := make([]chart.Value, len(bars))
	ys := make([]float64, len(bars))
	for i, b := range bars {
		values[i] = chart.Value{Label: b.Label, Value: b.Value}
		ys[i] = b.Value
	}
	lo, hi := bounds(ys)

	slot := (width - 80) / len(bars)
	if slot < 2 {
		slot = 2
	}
	barWidth := slot * 3 / 5
	if barWidth > 60 {
		barWidth = 60
	}
	bc := chart.BarChart{
		Title:      title,
		Background: background,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: slot - barWidth,
		YAxis:      chart.YAxis{Range: paddedRange(math.Min(lo, 0), hi, true)},
		Bars:       values,
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

// LineChart draws each series with its own color and a legend. Series with
// no points are skipped; a single point is drawn as a dot.
func LineChart(title, xName, yName string, series []Series) ([]byte, error) {
	var plotted []chart.Series
	var xs, ys []float64
	for i, s := range series {
		if len(s.X) == 0 || len(s.X) != len(s.Y) {
			continue
		}
		col := chart.GetDefaultColor(i)
		st := chart.Style{StrokeColor: col, StrokeWidth: 2, DotWidth: 3, DotColor: col}
		sx, sy := s.X, s.Y
		if len(sx) == 1 {
			st = pointStyle(col)
			sx = []float64{sx[0], sx[0]}
			sy = []float64{sy[0], sy[0]}
		}
		plotted = append(plotted, chart.ContinuousSeries{Name: s.Name, XValues: sx, YValues: sy, Style: st})
		xs = append(xs, s.X...)
		ys = append(ys, s.Y...)
	}
	if len(plotted) == 0 {
		return nil, ErrNoData
	}
	xlo, xhi := bounds(xs)
	ylo, yhi := bounds(ys)

	ch := chart.Chart{
		Title:      title,
		Background: background,
		Width:      width,
		Height:     height,
		XAxis: chart.XAxis{
			Name:           xName,
			Range:          paddedRange(xlo, xhi, false),
			ValueFormatter: intFormatter,
		},
		YAxis:  chart.YAxis{Name: yName, Range: paddedRange(ylo, yhi, true)},
		Series: plotted,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render line chart %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

// ScatterChart draws points only, no connecting line.
func ScatterChart(title, xName, yName string, points []Point) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	xlo, xhi := bounds(xs)
	ylo, yhi := bounds(ys)

	ch := chart.Chart{
		Title:      title,
		Background: background,
		Width:      width,
		Height:     height,
		XAxis:      chart.XAxis{Name: xName, Range: paddedRange(xlo, xhi, true)},
		YAxis:      chart.YAxis{Name: yName, Range: paddedRange(ylo, yhi, true)},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: title, XValues: xs, YValues: ys, Style: pointStyle(chart.ColorBlue)},
		},
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render scatter chart %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

// intFormatter prints years without decimals.
func intFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%v", v)
}
