package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"beacon-radar.klederson.com/internal/beacon"
	"beacon-radar.klederson.com/internal/bluetooth"
	"beacon-radar.klederson.com/internal/config"
	"beacon-radar.klederson.com/internal/logger"
	"beacon-radar.klederson.com/internal/presenter"
	"beacon-radar.klederson.com/internal/radar"
	"beacon-radar.klederson.com/internal/ui"
)

// Options configures a new AppModel.
type Options struct {
	Config  *config.Config
	Demo    bool
	Logger  *slog.Logger
	Scanner bluetooth.Scanner // nil picks BLE or demo from Demo
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	cfg        *config.Config
	log        *slog.Logger
	store      *bluetooth.BeaconStore
	monitor    *bluetooth.RegionMonitor
	ranger     *bluetooth.Ranger
	presenter  *presenter.Presenter
	alerts     *presenter.AlertPolicy
	transition *presenter.Transition
	pulse      *radar.Pulse
	scanner    bluetooth.Scanner
	regions    []beacon.Region
	registry   beacon.Registry
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	width  int
	height int

	demoMode bool
	cursor   int
	detail   bool
	alert    *presenter.Alert
	message  string

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	shared *shared

	// Cached per-frame snapshot
	beacons []*bluetooth.Beacon
	ranged  map[string]bool
	frame   presenter.Frame
	inside  int
}

// New creates an AppModel. Configured beacons with malformed UUIDs are
// logged and left out; they never stop the program.
func New(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	regions, registry := buildRegions(cfg.Beacons, log)

	p := presenter.New(registry)
	now := time.Now()
	initial := p.Present(beacon.ProximityUnknown, nil)

	ranger := &bluetooth.Ranger{}
	ranger.SetRangeAll(cfg.Scan.RangeAll)

	s := spinner.New()
	s.Spinner = spinner.Dot

	return AppModel{
		demoMode: opts.Demo,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  s,
		frame:    presenter.Frame{State: initial, Progress: 1},
		shared: &shared{
			cfg:        cfg,
			log:        log,
			store:      bluetooth.NewBeaconStore(beacon.ThresholdsFrom(cfg.Proximity)),
			monitor:    bluetooth.NewRegionMonitor(),
			ranger:     ranger,
			presenter:  p,
			alerts:     &presenter.AlertPolicy{},
			transition: presenter.NewTransition(cfg.Scan.Transition, initial),
			pulse:      radar.NewPulse(now),
			scanner:    opts.Scanner,
			regions:    regions,
			registry:   registry,
		},
	}
}

func buildRegions(beacons []config.BeaconConfig, log *slog.Logger) ([]beacon.Region, beacon.Registry) {
	names := make(map[uuid.UUID]string)
	seen := make(map[string]bool)
	var regions []beacon.Region
	for _, b := range beacons {
		c, err := beacon.ParseConstraint(b.UUID, b.Major, b.Minor)
		if err != nil {
			log.Warn("skipping beacon with invalid UUID", "uuid", b.UUID, "name", b.Name, "error", err)
			continue
		}
		ident := b.Name
		if ident == "" {
			ident = c.String()
		}
		if seen[ident] {
			// the monitor keys regions by identifier
			dup := ident
			ident = ident + " (" + c.String() + ")"
			for n := 2; seen[ident]; n++ {
				ident = fmt.Sprintf("%s (%s #%d)", dup, c.String(), n)
			}
			log.Warn("duplicate beacon name, renaming region", "name", dup, "region", ident)
		}
		seen[ident] = true
		regions = append(regions, beacon.Region{Identifier: ident, Constraint: c})
		if b.Name != "" {
			names[c.UUID] = b.Name
		}
	}
	return regions, beacon.NewRegistry(names)
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		evictCmd(),
		m.spinner.Tick,
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		now := time.Time(msg)
		m.rangeAndPresent(now)
		m.shared.pulse.Update(now)
		m.shared.transition.Step()
		m.frame = m.shared.transition.Frame(now)
		return m, tickCmd()

	case EvictMsg:
		m.evict()
		return m, evictCmd()

	case bluetooth.BeaconSightedMsg:
		m.handleSighting(msg)
		return m, nil

	case bluetooth.ScanErrorMsg:
		m.shared.log.Error("scanner error", "error", msg.Err)
		m.message = msg.Err.Error()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.StopScanning()
		return m, tea.Quit
	}

	// The arrival alert is modal.
	if m.alert != nil {
		if key.Matches(msg, m.keys.Detail, m.keys.Back) {
			m.alert = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Start):
		if !m.Scanning() {
			m.startRanging()
		}

	case key.Matches(msg, m.keys.Pause):
		if m.Scanning() {
			m.stopRanging()
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.beacons)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Detail):
		if len(m.beacons) > 0 {
			m.detail = true
		}

	case key.Matches(msg, m.keys.Back):
		m.detail = false

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *AppModel) handleSighting(msg bluetooth.BeaconSightedMsg) {
	id := msg.Advertisement.ID
	if m.shared.store.Upsert(msg) {
		m.shared.log.Debug("beacon heard", "beacon", id.String(), "rssi", msg.RSSI, "address", msg.Address)
	}

	for _, ev := range m.shared.monitor.Observe(id) {
		name := m.shared.presenter.Label(id)
		m.shared.log.Info("region entered", "region", ev.Region.Identifier, "beacon", id.String(), "name", name)
		m.inside++
		if alert, ok := m.shared.alerts.OnRegionEntered(name); ok {
			m.alert = &alert
		}
	}
}

func (m *AppModel) evict() {
	for _, id := range m.shared.store.Evict(m.shared.cfg.Scan.BeaconTimeout) {
		m.shared.log.Debug("beacon lost", "beacon", id.String())
	}

	snap := m.shared.store.Snapshot()
	present := make([]beacon.ID, len(snap))
	for i, b := range snap {
		present[i] = b.ID
	}
	for _, ev := range m.shared.monitor.Reconcile(present) {
		m.shared.log.Info("region exited", "region", ev.Region.Identifier)
		m.message = "left " + ev.Region.Identifier
		m.inside = max(0, m.inside-1)
	}
}

// rangeAndPresent runs one ranging pass and feeds the nearest result to the
// presenter. An empty pass presents the unknown state.
func (m *AppModel) rangeAndPresent(now time.Time) {
	snap := m.shared.store.Snapshot()
	for _, b := range snap {
		if name, ok := m.shared.registry.Lookup(b.ID.UUID); ok {
			b.Name = name
		}
	}
	m.beacons = snap
	if m.cursor >= len(snap) {
		m.cursor = max(0, len(snap)-1)
	}
	if len(snap) == 0 {
		m.detail = false
	}

	obs := m.shared.ranger.Range(snap)
	m.ranged = make(map[string]bool, len(obs))
	for _, o := range obs {
		m.ranged[o.ID.String()] = true
	}

	m.shared.transition.Apply(m.shared.presenter.PresentObservations(obs), now)
}

// StartScanners checks that monitoring is possible, starts monitoring and
// ranging every configured region, then starts the scanner. Must be called
// before p.Run().
func (m AppModel) StartScanners(sender bluetooth.Sender) error {
	sh := m.shared
	if sh.scanner == nil {
		if m.demoMode {
			ids := make([]beacon.ID, 0, len(sh.regions))
			for _, r := range sh.regions {
				ids = append(ids, demoID(r.Constraint))
			}
			sh.scanner = bluetooth.NewMockScanner(ids, nil)
		} else {
			if err := bluetooth.CheckAvailability(sh.cfg.Scan.Adapter); err != nil {
				return err
			}
			sh.scanner = bluetooth.NewBLEScanner(sh.log)
		}
	}

	for _, r := range sh.regions {
		sh.monitor.StartMonitoring(r)
		sh.log.Info("monitoring region", "region", r.Identifier, "constraint", r.Constraint.String())
	}
	m.startRanging()

	return sh.scanner.Start(sender)
}

// StopScanning stops ranging, monitoring and the scanner.
func (m AppModel) StopScanning() {
	m.stopRanging()
	m.shared.monitor.StopAll()
	if m.shared.scanner != nil {
		m.shared.scanner.Stop()
	}
}

// Scanning reports whether any region is being ranged.
func (m AppModel) Scanning() bool {
	return m.shared.ranger.Active()
}

func (m AppModel) startRanging() {
	for _, r := range m.shared.regions {
		m.shared.ranger.StartRanging(r.Constraint)
	}
}

func (m AppModel) stopRanging() {
	m.shared.ranger.StopAll()
}

// demoID picks a concrete beacon identity satisfying c.
func demoID(c beacon.Constraint) beacon.ID {
	id := beacon.ID{UUID: c.UUID, Major: 1, Minor: 1}
	if c.Major != nil {
		id.Major = *c.Major
	}
	if c.Minor != nil {
		id.Minor = *c.Minor
	}
	return id
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}

	menuBar := ui.RenderMenuBar(m.width, m.shared.cfg.Scan.Adapter, m.Scanning(), m.demoMode, m.spinner.View())

	footer := ui.RenderStatusBar(m.width, ui.StatusInfo{
		Scanning: m.Scanning(),
		Heard:    len(m.beacons),
		Ranged:   len(m.ranged),
		Regions:  len(m.shared.regions),
		Inside:   m.inside,
		Message:  m.message,
	})
	if m.help.ShowAll {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.help.View(m.keys), footer)
	}

	bodyH := max(8, m.height-lipgloss.Height(menuBar)-lipgloss.Height(footer))
	mainW := max(24, m.width*2/3)
	sideW := max(20, m.width-mainW)

	iw, ih := ui.IndicatorSize(mainW, bodyH)
	indicator := radar.Render(iw, ih, m.frame.Background, m.frame.Scale, m.shared.pulse)
	mainPanel := ui.RenderProximityPanel(mainW, bodyH, m.frame, indicator)
	if m.alert != nil {
		mainPanel = ui.Overlay(mainW, bodyH, ui.RenderAlert(*m.alert, mainW), m.frame.Background)
	}

	var side string
	if m.detail && m.cursor < len(m.beacons) {
		side = ui.RenderDetailPanel(m.beacons[m.cursor], sideW, bodyH, time.Now())
	} else {
		side = ui.RenderBeaconList(m.beacons, m.ranged, sideW, bodyH, m.cursor)
	}

	return strings.TrimRight(ui.ComposeLayout(menuBar, mainPanel, side, footer), "\n")
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func evictCmd() tea.Cmd {
	return tea.Tick(config.EvictInterval, func(t time.Time) tea.Msg {
		return EvictMsg(t)
	})
}
