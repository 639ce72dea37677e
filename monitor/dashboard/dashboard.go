package dashboard

import (
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/pkg/errors"

	"github.com/ds2-lab/streamstat/monitor/config"
	"github.com/ds2-lab/streamstat/monitor/dashboard/views"
	"github.com/ds2-lab/streamstat/monitor/global"
	"github.com/ds2-lab/streamstat/monitor/series"
)

var (
	ErrClosed = errors.New("dashboard closed")
)

type Dashboard struct {
	*ui.Grid
	ChartView   *views.ChartView
	SummaryView *views.SummaryView
	LogView     *views.LogView
	StatusView  *views.StatusView

	registry *series.Registry
	selected int
	quit     chan string
}

func NewDashboard(registry *series.Registry, logFile string) (*Dashboard, error) {
	if err := ui.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize terminal")
	}

	dashboard := &Dashboard{
		Grid:        ui.NewGrid(),
		ChartView:   views.NewChartView(" Window "),
		SummaryView: views.NewSummaryView(" Aggregates "),
		LogView:     views.NewLogView(" Logs ", logFile),
		registry:    registry,
		quit:        make(chan string, 1),
	}
	dashboard.StatusView = views.NewStatusView(dashboard, registry)

	// Full screen
	termWidth, termHeight := ui.TerminalDimensions()
	dashboard.Grid.SetRect(0, 0, termWidth, termHeight)

	// Layout
	dashboard.Grid.Set(
		ui.NewRow(0.6,
			ui.NewCol(1.0/1, dashboard.ChartView),
		),
		ui.NewRow(0.32,
			ui.NewCol(1.0/2, dashboard.SummaryView),
			ui.NewCol(1.0/2, dashboard.LogView),
		),
		ui.NewRow(0.08,
			ui.NewCol(1.0/1, dashboard.StatusView),
		),
	)

	return dashboard, nil
}

// Update points the views at the selected series and redraws.
func (dash *Dashboard) Update() {
	name, selected, ok := selectSeries(dash.registry.Names(), dash.selected)
	dash.selected = selected
	if ok {
		if s, exists := dash.registry.Lookup(name); exists {
			dash.ChartView.Series = s
			dash.SummaryView.Series = s
		}
	}
	ui.Render(dash)
}

// Start blocks until the user quits, returning nil, or Quit is called,
// returning ErrClosed.
func (dash *Dashboard) Start() error {
	uiEvents := ui.PollEvents()
	ticker := time.NewTicker(config.DashboardRefresh)
	defer ticker.Stop()

	for {
		dash.Update()
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				return nil
			case "<Tab>":
				dash.selected++
			case "<Resize>":
				payload := e.Payload.(ui.Resize)
				dash.SetRect(0, 0, payload.Width, payload.Height)
				ui.Clear()
			}
		case reason := <-dash.quit:
			global.Log.Warn("Dashboard quit: %s", reason)
			return errors.Wrap(ErrClosed, reason)
		case <-ticker.C:
		}
	}
}

// Quit implements views.DashControl.
func (dash *Dashboard) Quit(reason string) {
	select {
	case dash.quit <- reason:
	default:
	}
}

func (dash *Dashboard) Close() {
	ui.Close()
}

// selectSeries wraps selected around names.
func selectSeries(names []string, selected int) (string, int, bool) {
	if len(names) == 0 {
		return "", 0, false
	}
	if selected < 0 || selected >= len(names) {
		selected = 0
	}
	return names[selected], selected, true
}
