package global

import (
	"github.com/mason-leap-lab/go-utils/logger"

	"github.com/ds2-lab/streamstat/monitor/config"
)

var (
	Log logger.Logger = logger.NilLogger

	// Options with defaults assigned.
	Options = CommandlineOptions{
		Input:  "-",
		Region: config.AWSRegion,
		Window: config.DefaultWindow,
		Resum:  -1,
		Report: config.DefaultReportInterval,
	}
)
