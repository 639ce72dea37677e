package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/mgutz/ansi"

	"github.com/ds2-lab/streamstat/monitor/series"
)

var (
	colorName   = ansi.ColorFunc("cyan+b")
	colorBreach = ansi.ColorFunc("red+b")
)

// Reporter prints snapshots and breaches when the dashboard is disabled.
type Reporter struct {
	Writer   io.Writer
	Interval uint64
	Plain    bool
}

// Report prints snap if a report is due.
func (r *Reporter) Report(snap series.Snapshot) {
	if r.Interval > 1 && snap.Seq%r.Interval != 0 {
		return
	}
	r.Print(snap)
}

func (r *Reporter) Print(snap series.Snapshot) {
	name := snap.Name
	if !r.Plain {
		name = colorName(name)
	}
	deviation := "n/a"
	if snap.HasDeviation {
		deviation = fmt.Sprintf("%.6g", snap.StdDev)
	}
	fmt.Fprintf(r.Writer, "%s %s samples, window %d/%d min %.6g max %.6g mean %.6g, stream mean %.6g %s stddev %s\n",
		name, humanize.Comma(int64(snap.Seq)), snap.Len, snap.Capacity, snap.Min, snap.Max, snap.Mean,
		snap.RunningMean, snap.Form, deviation)
}

func (r *Reporter) Breach(breach series.Breach) {
	text := "ALERT " + breach.String()
	if !r.Plain {
		text = colorBreach(text)
	}
	fmt.Fprintln(r.Writer, text)
}
