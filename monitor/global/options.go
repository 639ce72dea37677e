package global

import (
	"github.com/mason-leap-lab/go-utils/config"
	"github.com/pkg/errors"

	"github.com/ds2-lab/streamstat/common/stats"
)

type CommandlineOptions struct {
	config.LoggerOptions

	Input       string `name:"input" desc:"Sample source: \"-\" for stdin, a file path, or s3://bucket/key."`
	Region      string `name:"region" desc:"AWS region used for s3:// inputs."`
	Window      int    `name:"window" desc:"Trailing window capacity of every series. The config file window, then per-series windows, override it."`
	Config      string `name:"config" desc:"YAML file with per-series windows and alert thresholds."`
	Sample      bool   `name:"sample" desc:"Report sample (n-1) variance instead of population variance."`
	Resum       int    `name:"resum" desc:"Pushes between full resummations of window sums. 0 disables, -1 keeps the default."`
	Report      int    `name:"report" desc:"Print a report every N samples of a series when the dashboard is disabled."`
	Prefix      string `name:"prefix" desc:"Prefix of the collected log. A session id is used if empty."`
	LogPath     string `name:"log-path" desc:"Directory of collected and log files."`
	LogFile     string `name:"log-file" desc:"Redirect logs to the file under log-path."`
	NoCollector bool   `name:"disable-collector" desc:"Do not record snapshots."`
	NoDashboard bool   `name:"disable-dashboard" desc:"Print reports instead of showing the dashboard."`
	Plain       bool   `name:"plain" desc:"Print reports without colors."`
}

// Validate validates options
func (opts *CommandlineOptions) Validate() error {
	if opts.Window < 1 {
		return errors.Wrapf(stats.ErrInvalidConfiguration, "window must be at least 1, got %d", opts.Window)
	}
	if opts.Resum < -1 {
		return errors.Wrapf(stats.ErrInvalidConfiguration, "resum must be -1 or above, got %d", opts.Resum)
	}
	if opts.Report < 1 {
		return errors.Wrapf(stats.ErrInvalidConfiguration, "report must be at least 1, got %d", opts.Report)
	}
	if opts.Input == "" {
		opts.Input = "-"
	}
	return nil
}
