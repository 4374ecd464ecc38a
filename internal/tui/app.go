package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/actdash/internal/client"
	"github.com/dm/actdash/internal/engine"
	"github.com/dm/actdash/internal/export"
	"github.com/dm/actdash/internal/model"
)

// defaultFetchTimeout bounds each source fetch when Options.FetchTimeout is
// unset.
const defaultFetchTimeout = 15 * time.Second

// Options configures an App.
type Options struct {
	Interval     time.Duration // zero disables auto refresh
	FetchTimeout time.Duration // per source fetch; zero means 15s
	PageSize     int
	ExportDir    string
	Metrics      *engine.Metrics
	Logger       *slog.Logger
}

// App is the root Bubble Tea model for actdash. All dashboard state lives on
// App and is only mutated from Update, so no locking is needed.
type App struct {
	client       client.ActuatorClient
	interval     time.Duration
	fetchTimeout time.Duration
	exportDir    string
	metrics      *engine.Metrics
	logger       *slog.Logger
	now          func() time.Time

	// Poll state
	snap        model.Snapshot
	pending     int // source fetches in flight
	refreshes   int // refresh cycles started
	lastUpdated time.Time

	// Blocking notifications, oldest first. While non-empty every key other
	// than dismiss/quit is swallowed. At most one per fetch source.
	alerts []alert

	// UI state
	table     traceTable
	detail    *client.HTTPTrace
	statusMsg string
	showHelp  bool

	// Layout
	width, height int
}

// alert is one queued failure notification. Source is empty for alerts that
// do not come from a fetch.
type alert struct {
	Source engine.Source
	Title  string
	Err    error
}

// NewApp creates a new App for the given actuator client.
func NewApp(c client.ActuatorClient, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	timeout := opts.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &App{
		client:       c,
		interval:     opts.Interval,
		fetchTimeout: timeout,
		exportDir:    opts.ExportDir,
		metrics:      opts.Metrics,
		logger:       logger,
		now:          time.Now,
		table:        newTraceTable(opts.PageSize),
	}
}

// Init implements tea.Model. Starts the first refresh immediately on launch.
func (app *App) Init() tea.Cmd {
	cmds := []tea.Cmd{app.refresh()}
	if app.interval > 0 {
		cmds = append(cmds, refreshTickCmd(app.interval))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model and is the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case TracesMsg:
		app.fetchDone()
		app.snap.ApplyTraces(msg.Result.Traces, msg.Result.Buckets, msg.At)
		app.table.SetData(app.snap.Traces)
		app.lastUpdated = msg.At

	case CPUMsg:
		app.fetchDone()
		app.snap.ApplyCPU(msg.CPU, msg.At)
		app.lastUpdated = msg.At

	case HealthMsg:
		app.fetchDone()
		app.snap.ApplyHealth(msg.Health, msg.At)
		app.lastUpdated = msg.At

	case UptimeMsg:
		app.fetchDone()
		// Every rebase restarts the cadence under a new generation; ticks
		// still queued for the old base are dropped in UptimeTickMsg.
		gen, first := app.snap.ApplyUptime(msg.Seconds, msg.At)
		app.lastUpdated = msg.At
		if first {
			app.logger.Debug("uptime cadence started", "seconds", msg.Seconds)
		}
		return app, uptimeTickCmd(gen)

	case UptimeTickMsg:
		if !app.snap.Uptime.Advance(msg.Gen) {
			return app, nil
		}
		return app, uptimeTickCmd(msg.Gen)

	case FetchErrorMsg:
		app.fetchDone()
		app.logger.Warn("fetch failed", "source", string(msg.Source), "err", msg.Err)
		app.queueSourceAlert(msg.Source, msg.Err)

	case RefreshTickMsg:
		// No new cycle while one is in flight or an alert is waiting on the
		// user; the cadence itself keeps running.
		next := refreshTickCmd(app.interval)
		if app.pending > 0 || len(app.alerts) > 0 {
			return app, next
		}
		return app, tea.Batch(app.refresh(), next)

	case ExportResultMsg:
		if msg.Err != nil {
			app.logger.Warn("export failed", "err", msg.Err)
			app.alerts = append(app.alerts, alert{Title: "Export failed", Err: msg.Err})
			return app, nil
		}
		app.logger.Info("traces exported", "path", msg.Path)
		app.statusMsg = "Exported to " + msg.Path

	case tea.KeyMsg:
		return app.handleKey(msg)
	}

	return app, nil
}

// queueSourceAlert queues a fetch failure alert. A source that already has
// an alert pending gets its error replaced in place instead of a second entry.
func (app *App) queueSourceAlert(src engine.Source, err error) {
	for i := range app.alerts {
		if app.alerts[i].Source == src {
			app.alerts[i].Err = err
			return
		}
	}
	app.alerts = append(app.alerts, alert{Source: src, Title: alertTitle(src), Err: err})
}

func (app *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return app, tea.Quit
	}

	if len(app.alerts) > 0 {
		if key.Matches(msg, keys.Select) || key.Matches(msg, keys.Escape) {
			app.alerts = app.alerts[1:]
		}
		return app, nil
	}

	if app.detail != nil {
		if key.Matches(msg, keys.Select) || key.Matches(msg, keys.Escape) {
			app.detail = nil
		}
		if key.Matches(msg, keys.Quit) {
			return app, tea.Quit
		}
		return app, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return app, tea.Quit
	case key.Matches(msg, keys.Refresh):
		app.statusMsg = ""
		return app, app.refresh()
	case key.Matches(msg, keys.Export):
		app.statusMsg = "Exporting..."
		return app, exportCmd(app.exportDir, app.snap.Traces, app.now())
	case key.Matches(msg, keys.Help):
		app.showHelp = !app.showHelp
	case key.Matches(msg, keys.Select):
		if tr, ok := app.table.Selected(); ok {
			app.detail = &tr
		}
	default:
		app.table = app.table.Update(msg)
	}
	return app, nil
}

// refresh starts one reconciliation cycle: four independent fetches, each
// resolving to its own message. There is no join across them, and a cycle
// started while another is in flight simply races it; the later response for
// a source wins.
func (app *App) refresh() tea.Cmd {
	app.pending += len(engine.Sources)
	app.refreshes++
	app.logger.Debug("refresh", "cycle", app.refreshes)
	f := fetcher{client: app.client, metrics: app.metrics, now: app.now, timeout: app.fetchTimeout}
	return tea.Batch(
		f.tracesCmd(),
		f.cpuCmd(),
		f.healthCmd(),
		f.uptimeCmd(),
	)
}

func (app *App) fetchDone() {
	if app.pending > 0 {
		app.pending--
	}
}

// fetching reports whether any source fetch is still in flight.
func (app *App) fetching() bool {
	return app.pending > 0
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	var parts []string

	parts = append(parts, renderHeader(app))

	switch {
	case len(app.alerts) > 0:
		parts = append(parts, renderAlert(app))
	case app.detail != nil:
		parts = append(parts, renderTraceDetail(app, *app.detail))
	default:
		if o := renderOverview(app); o != "" {
			parts = append(parts, o)
		}
		if c := renderCharts(app); c != "" {
			parts = append(parts, c)
		}
		parts = append(parts, app.table.render(app))
	}
	parts = append(parts, renderFooter(app))

	return strings.Join(parts, "\n")
}

// fetcher carries what the off-loop fetch commands need, so commands never
// read App state after they are issued.
type fetcher struct {
	client  client.ActuatorClient
	metrics *engine.Metrics
	now     func() time.Time
	timeout time.Duration
}

func (f fetcher) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), f.timeout)
}

func (f fetcher) tracesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := f.ctx()
		defer cancel()
		res, err := engine.FetchTraces(ctx, f.client, f.metrics)
		if err != nil {
			return FetchErrorMsg{Source: engine.SourceTraces, Err: err}
		}
		return TracesMsg{Result: res, At: f.now()}
	}
}

func (f fetcher) cpuCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := f.ctx()
		defer cancel()
		cpu, err := engine.FetchCPU(ctx, f.client, f.metrics)
		if err != nil {
			return FetchErrorMsg{Source: engine.SourceCPU, Err: err}
		}
		return CPUMsg{CPU: cpu, At: f.now()}
	}
}

func (f fetcher) healthCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := f.ctx()
		defer cancel()
		h, err := engine.FetchHealth(ctx, f.client, f.metrics)
		if err != nil {
			return FetchErrorMsg{Source: engine.SourceHealth, Err: err}
		}
		return HealthMsg{Health: h, At: f.now()}
	}
}

func (f fetcher) uptimeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := f.ctx()
		defer cancel()
		seconds, err := engine.FetchUptime(ctx, f.client, f.metrics)
		if err != nil {
			return FetchErrorMsg{Source: engine.SourceUptime, Err: err}
		}
		return UptimeMsg{Seconds: seconds, At: f.now()}
	}
}

// uptimeTickCmd schedules one local uptime increment a second from now.
func uptimeTickCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return UptimeTickMsg{Gen: gen}
	})
}

// refreshTickCmd schedules the next automatic refresh after duration d.
func refreshTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return RefreshTickMsg(t)
	})
}

// exportCmd writes the trace table to a CSV file off the event loop.
func exportCmd(dir string, traces []client.HTTPTrace, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := export.ExportFile(dir, traces, now)
		return ExportResultMsg{Path: path, Err: err}
	}
}

func alertTitle(src engine.Source) string {
	switch src {
	case engine.SourceTraces:
		return "Failed to load HTTP traces"
	case engine.SourceCPU:
		return "Failed to load CPU usage"
	case engine.SourceHealth:
		return "Failed to load system health"
	case engine.SourceUptime:
		return "Failed to load process uptime"
	default:
		return "Request failed"
	}
}
