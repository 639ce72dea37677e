package collector

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/ScottMansfield/nanolog"
	"github.com/pkg/errors"

	"github.com/ds2-lab/streamstat/monitor/config"
	"github.com/ds2-lab/streamstat/monitor/global"
	"github.com/ds2-lab/streamstat/monitor/series"
)

const (
	LogTypeSnapshot = "snapshot"
	LogTypeBreach   = "breach"
)

var (
	Enable bool

	LogSnapshot nanolog.Handle
	LogBreach   nanolog.Handle

	stopped      bool
	lastActivity = time.Now()
	output       io.Closer
	mu           sync.Mutex
)

func init() {
	// type(snapshot), series, time, seq, last, min, max, mean, running mean, stddev
	LogSnapshot = nanolog.AddLogger("%s,%s,%i64,%u64,%f64,%f64,%f64,%f64,%f64,%f64")
	// type(breach), series, time, seq, mean, bound, above
	LogBreach = nanolog.AddLogger("%s,%s,%i64,%u64,%f64,%f64,%b")
}

// Create opens prefix + "_monitor.clog" and starts flushing in background.
func Create(prefix string) error {
	file, err := os.Create(prefix + "_monitor.clog")
	if err != nil {
		return errors.Wrap(err, "failed to create collector log")
	}
	if err := CreateWithWriter(file); err != nil {
		file.Close()
		return err
	}
	output = file
	return nil
}

// CreateWithWriter starts collecting to w.
func CreateWithWriter(w io.Writer) error {
	if err := nanolog.SetWriter(w); err != nil {
		return errors.Wrap(err, "failed to set collector writer")
	}

	Enable = true
	stopped = false
	go func() {
		ticker := time.NewTicker(config.FlushInterval)
		for {
			<-ticker.C
			mu.Lock()
			idle := stopped || time.Since(lastActivity) >= config.IdleFlush
			done := stopped
			mu.Unlock()
			if idle {
				if err := nanolog.Flush(); err != nil {
					global.Log.Warn("Failed to save data: %v", err)
				}
			}
			if done {
				ticker.Stop()
				return
			}
		}
	}()
	return nil
}

// Stop flushes collected entries and stops collecting.
func Stop() error {
	mu.Lock()
	stopped = true
	Enable = false
	mu.Unlock()

	err := nanolog.Flush()
	if output != nil {
		output.Close()
		output = nil
	}
	return err
}

func Flush() error {
	return nanolog.Flush()
}

func touch() bool {
	mu.Lock()
	defer mu.Unlock()

	lastActivity = time.Now()
	return Enable
}

// CollectSnapshot records the aggregates published by a push.
func CollectSnapshot(snap series.Snapshot) error {
	if !touch() {
		return nil
	}
	return nanolog.Log(LogSnapshot, LogTypeSnapshot, snap.Name, snap.Time.UnixNano(), snap.Seq,
		snap.Last, snap.Min, snap.Max, snap.Mean, snap.RunningMean, snap.StdDev)
}

// CollectBreach records a threshold breach.
func CollectBreach(breach series.Breach) error {
	if !touch() {
		return nil
	}
	return nanolog.Log(LogBreach, LogTypeBreach, breach.Name, breach.Time.UnixNano(), breach.Seq,
		breach.Mean, breach.Bound, breach.Above)
}
