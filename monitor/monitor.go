package main

import (
	"context"
	"fmt"
	syslog "log"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/uuid"
	"github.com/mason-leap-lab/go-utils/config"
	"github.com/mason-leap-lab/go-utils/logger"
	"github.com/pkg/errors"

	"github.com/ds2-lab/streamstat/common/stats"
	"github.com/ds2-lab/streamstat/monitor/collector"
	monitorConfig "github.com/ds2-lab/streamstat/monitor/config"
	"github.com/ds2-lab/streamstat/monitor/dashboard"
	"github.com/ds2-lab/streamstat/monitor/global"
	"github.com/ds2-lab/streamstat/monitor/series"
	"github.com/ds2-lab/streamstat/monitor/source"
)

var (
	options = &global.Options
	log     logger.Logger = logger.NilLogger
	sig     = make(chan os.Signal, 1)
)

func init() {
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGINT)
}

func main() {
	flags, err := config.ValidateOptions(options)
	if err == config.ErrPrintUsage {
		fmt.Fprintf(os.Stderr, "Usage: ./monitor [options]\n")
		fmt.Fprintf(os.Stderr, "Reads samples as \"value\", \"name value\" or \"name,value\" lines.\n")
		fmt.Fprintf(os.Stderr, "Available options:\n")
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		syslog.Fatal(err)
	}

	log = config.GetDefaultLogger()
	global.Log = log

	if options.LogFile != "" {
		logFile, err := os.OpenFile(path.Join(options.LogPath, options.LogFile), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			syslog.Fatal(err)
		}
		defer logFile.Close()

		syslog.SetOutput(logFile)
		os.Stderr = logFile
	}

	var file *monitorConfig.File
	if options.Config != "" {
		file, err = monitorConfig.LoadFile(options.Config)
		if err != nil {
			log.Error("%v", err)
			os.Exit(1)
		}
	}
	registry := series.NewRegistry(newSeriesFactory(file))

	// Initialize collector
	if !options.NoCollector {
		prefix := options.Prefix
		if prefix == "" {
			prefix = uuid.New().String()
		}
		if err := collector.Create(path.Join(options.LogPath, prefix)); err != nil {
			log.Error("%v", err)
			os.Exit(1)
		}
		log.Info("Collecting snapshots to %s_monitor.clog", prefix)
		defer collector.Stop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var dash *dashboard.Dashboard
	if !options.NoDashboard {
		logFile := ""
		if options.LogFile != "" {
			logFile = path.Join(options.LogPath, options.LogFile)
		}
		dash, err = dashboard.NewDashboard(registry, logFile)
		if err != nil {
			log.Error("%v", err)
			return
		}
		defer dash.Close()
	}

	reporter := &Reporter{Writer: os.Stdout, Interval: uint64(options.Report), Plain: options.Plain}
	handler := func(name string, val float64) error {
		s, err := registry.Get(name)
		if err != nil {
			return err
		}

		snap := s.Push(val)
		if err := collector.CollectSnapshot(snap); err != nil {
			log.Warn("Failed to collect snapshot: %v", err)
		}
		if breach, ok := s.Check(snap); ok {
			log.Warn("%v", breach)
			if err := collector.CollectBreach(breach); err != nil {
				log.Warn("Failed to collect breach: %v", err)
			}
			if dash == nil {
				reporter.Breach(breach)
			}
		}
		if dash == nil {
			reporter.Report(snap)
		}
		return nil
	}

	// Reading stdin can not be interrupted, so the scanner is waited only if it finished.
	finished := make(chan struct{})
	go func() {
		defer func() {
			close(finished)
			if dash == nil {
				cancel()
			}
		}()

		input, err := source.Open(ctx, options.Input, options.Region)
		if err != nil {
			log.Error("%v", err)
			return
		}
		defer input.Close()

		scanner := &source.Scanner{Log: log, Default: monitorConfig.DefaultSeries}
		n, err := scanner.Scan(ctx, input, handler)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Stopped after %d samples: %v", n, err)
		} else {
			log.Info("Consumed %d samples, skipped %d lines", n, scanner.Skipped)
		}
	}()

	// Dashboard stays open after input is drained until the user quits.
	if dash != nil {
		go func() {
			if err := dash.Start(); err != nil && !errors.Is(err, dashboard.ErrClosed) {
				log.Error("Dashboard: %v", err)
			}
			cancel()
		}()
	}

	select {
	case <-sig:
		log.Info("Receive signal, stopping...")
		cancel()
	case <-ctx.Done():
	}

	select {
	case <-finished:
	default:
		return
	}
	if dash == nil {
		for _, name := range registry.Names() {
			s, _ := registry.Lookup(name)
			if snap, err := s.Snapshot(); err == nil {
				reporter.Print(snap)
			}
		}
	}
}

func newSeriesFactory(file *monitorConfig.File) series.Factory {
	form := stats.Population
	if options.Sample || file.SampleVariance() {
		form = stats.Sample
	}

	return func(name string) (*series.Series, error) {
		conf := file.Lookup(name, options.Window)
		s, err := series.New(name, conf.Window, form)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create series %s", name)
		}
		if options.Resum >= 0 {
			s.SetResumInterval(options.Resum)
		}
		if conf.Lower != nil || conf.Upper != nil {
			s.SetThreshold(&series.Threshold{Lower: conf.Lower, Upper: conf.Upper})
		}
		log.Debug("Created series %s with window %d", name, conf.Window)
		return s, nil
	}
}
