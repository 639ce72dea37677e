package config

import (
	"time"
)

// AWSRegion Default region of S3 inputs.
const AWSRegion = "us-east-1"

// DefaultWindow Trailing window capacity of a series.
const DefaultWindow = 60

// DefaultSeries Name of the series that bare values are pushed to.
const DefaultSeries = "default"

// DefaultReportInterval Samples between two printed reports of a series.
const DefaultReportInterval = 100

// FlushInterval Interval to check if collected entries should be flushed.
const FlushInterval = 1 * time.Second

// IdleFlush Collected entries are flushed after idling this long.
const IdleFlush = 10 * time.Second

// DashboardRefresh Interval of dashboard redraw.
const DashboardRefresh = 1 * time.Second
