package views

import (
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// ChartView plots the trailing window of a series.
type ChartView struct {
	*widgets.Plot
	Series SeriesSource
}

func NewChartView(title string) *ChartView {
	view := &ChartView{
		Plot: widgets.NewPlot(),
	}
	view.Title = title
	view.ShowAxes = false
	view.Marker = widgets.MarkerBraille
	view.LineColors = []ui.Color{ui.ColorGreen}
	return view
}

func (v *ChartView) Draw(buf *ui.Buffer) {
	if v.Series == nil {
		v.Block.Draw(buf)
		return
	}

	// Plot needs two points at least.
	values := v.Series.Values()
	if len(values) < 2 {
		v.Title = fmt.Sprintf(" %s (waiting) ", v.Series.Name())
		v.Block.Draw(buf)
		return
	}

	// Braille renders two points per cell.
	data, min, span := chartData(values, v.Inner.Dx()*2)
	v.Data = [][]float64{data}
	v.MaxVal = span
	v.Title = fmt.Sprintf(" %s [%.4g, %.4g] ", v.Series.Name(), min, min+span)
	v.Plot.Draw(buf)
}

// chartData keeps the newest maxPoints values shifted so the minimum is 0,
// returning the shift and the span of the shifted values.
func chartData(values []float64, maxPoints int) (data []float64, min float64, span float64) {
	if maxPoints >= 2 && len(values) > maxPoints {
		values = values[len(values)-maxPoints:]
	}
	if len(values) == 0 {
		return nil, 0, 1
	}

	min, max := values[0], values[0]
	for _, val := range values[1:] {
		if val < min {
			min = val
		} else if val > max {
			max = val
		}
	}

	data = make([]float64, len(values))
	for i, val := range values {
		data[i] = val - min
	}
	span = max - min
	if span == 0 {
		span = 1
	}
	return data, min, span
}
