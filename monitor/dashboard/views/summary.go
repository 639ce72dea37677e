package views

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/ds2-lab/streamstat/monitor/series"
)

// SummaryView lists the aggregates of a series.
type SummaryView struct {
	*widgets.Paragraph
	Series SeriesSource
}

func NewSummaryView(title string) *SummaryView {
	view := &SummaryView{
		Paragraph: widgets.NewParagraph(),
	}
	view.Title = title
	return view
}

func (v *SummaryView) Draw(buf *ui.Buffer) {
	if v.Series == nil {
		v.Text = "No series yet."
	} else if snap, err := v.Series.Snapshot(); err != nil {
		v.Text = fmt.Sprintf("%s: %v", v.Series.Name(), err)
	} else {
		v.Text = FormatSnapshot(snap)
	}
	v.Paragraph.Draw(buf)
}

// FormatSnapshot renders a snapshot as aligned lines.
func FormatSnapshot(snap series.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Series:  %s\n", snap.Name)
	fmt.Fprintf(&b, "Samples: %s\n", humanize.Comma(int64(snap.Seq)))
	fmt.Fprintf(&b, "Last:    %.6g\n", snap.Last)
	fmt.Fprintf(&b, "Window:  %d/%d, min %.6g, max %.6g, mean %.6g\n", snap.Len, snap.Capacity, snap.Min, snap.Max, snap.Mean)
	fmt.Fprintf(&b, "Stream:  mean %.6g", snap.RunningMean)
	if snap.HasDeviation {
		fmt.Fprintf(&b, ", %s variance %.6g, stddev %.6g", snap.Form, snap.Variance, snap.StdDev)
	}
	return b.String()
}
