// Package teaui hosts the Bubble Tea program for the horizon TUI.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/horizon/pkg/app"
	"tableflip.dev/horizon/pkg/discovery"
	"tableflip.dev/horizon/pkg/place"
	"tableflip.dev/horizon/pkg/timeutil"
	"tableflip.dev/horizon/pkg/tui/components/feed"
	"tableflip.dev/horizon/pkg/tui/components/help"
	journeyview "tableflip.dev/horizon/pkg/tui/components/journey"
	"tableflip.dev/horizon/pkg/tui/components/moods"
	"tableflip.dev/horizon/pkg/tui/components/route"
	"tableflip.dev/horizon/pkg/tui/components/tabbar"
	"tableflip.dev/horizon/pkg/tui/events"
	"tableflip.dev/horizon/pkg/tui/theme"
)

const (
	rootID    events.ComponentID = "root"
	feedID    events.ComponentID = "feed"
	moodsID   events.ComponentID = "moods"
	journalID events.ComponentID = "journal"
	routeID   events.ComponentID = "route"

	defaultRoute    = "Highway 101 North"
	defaultToastTTL = 3 * time.Second
)

// Options configure the program.
type Options struct {
	// Context bounds the program; cancelling it quits. Defaults to
	// context.Background.
	Context  context.Context
	Session  *app.Session
	Provider place.Provider
	// Watch reloads the catalog when the provider reports changes. Only
	// providers with a Watch method support it.
	Watch   bool
	Version string
	Logger  *slog.Logger
	// ToastTTL is how long confirmations stay in the footer.
	ToastTTL time.Duration
}

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayRoute
)

// Model is the root Bubble Tea model. It owns the session and routes events
// between the screens.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	session  *app.Session
	provider place.Provider
	watch    bool
	version  string
	logger   *slog.Logger
	toastTTL time.Duration

	theme   theme.Theme
	moods   *moods.Model
	feed    *feed.Model
	journal *journeyview.Model
	footer  tabbar.Model
	help    *help.Model
	route   *route.Model
	overlay overlay

	width  int
	height int

	toastSeq    int
	watchCh     <-chan place.Event
	watchCancel context.CancelFunc
}

// New builds the root model. A nil session gets default options and a nil
// provider serves the built-in catalog.
func New(opts Options) *Model {
	session := opts.Session
	if session == nil {
		session = app.NewSession(app.Options{DarkMode: true})
	}
	provider := opts.Provider
	if provider == nil {
		provider = place.NewStatic(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ttl := opts.ToastTTL
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	th := theme.For(session.DarkMode())
	m := &Model{
		ctx:      ctx,
		cancel:   cancel,
		session:  session,
		provider: provider,
		watch:    opts.Watch,
		version:  opts.Version,
		logger:   logger,
		toastTTL: ttl,
		theme:    th,
		moods:    moods.New(moodsID, th, session.Mood()),
		feed:     feed.New(feedID, th),
		journal:  journeyview.New(journalID, th),
		footer:   tabbar.New(th),
		help:     help.New(60, 20, session.DarkMode()),
		route:    route.New(routeID, th, session.Route()),
	}
	m.sync()
	return m
}

// Session exposes the underlying state, mostly for tests.
func (m *Model) Session() *app.Session { return m.session }

// Init loads the catalog and starts watching it when enabled.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadCatalogCmd(m.ctx, m.provider)}
	if m.watch {
		cmds = append(cmds, startWatchCmd(m.ctx, m.provider))
	}
	return tea.Batch(cmds...)
}

type catalogLoadedMsg struct {
	places []place.Place
	err    error
}

type watchStartedMsg struct {
	ch     <-chan place.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event place.Event
}

type watchStoppedMsg struct{}

type toastExpiredMsg struct {
	seq int
}

type catalogWatcher interface {
	Watch(ctx context.Context) (<-chan place.Event, error)
}

func loadCatalogCmd(ctx context.Context, provider place.Provider) tea.Cmd {
	return func() tea.Msg {
		places, err := provider.ListPlaces(ctx)
		return catalogLoadedMsg{places: places, err: err}
	}
}

func startWatchCmd(parent context.Context, provider place.Provider) tea.Cmd {
	w, ok := provider.(catalogWatcher)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := w.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) shutdown() {
	m.stopWatch()
	m.cancel()
}

// Update routes Bubble Tea messages to the session and the screens.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	m.noteEvent(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	case catalogLoadedMsg:
		if msg.err != nil {
			m.logger.Error("catalog load failed", slog.Any("err", msg.err))
			m.setStatus("Catalog unavailable: " + msg.err.Error())
			break
		}
		sched := m.session.SetCatalog(msg.places)
		m.sync()
		cmds = append(cmds, sched.Cmd())
	case watchStartedMsg:
		if msg.err != nil {
			m.logger.Warn("catalog watch failed", slog.Any("err", msg.err))
			m.setStatus("ERR: watch " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		if msg.event.Err != nil {
			m.logger.Warn("catalog watch error", slog.Any("err", msg.event.Err))
		} else {
			cmds = append(cmds,
				m.toast("Catalog updated, rediscovering places ahead"),
				loadCatalogCmd(m.ctx, m.provider))
		}
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case discovery.RevealMsg:
		if _, ok := m.session.Reveal(msg.Reveal); ok {
			m.sync()
		}
	case events.MoodSelectMsg:
		sched := m.session.SelectMood(msg.Mood)
		m.sync()
		cmds = append(cmds, sched.Cmd())
	case events.PlaceSaveMsg:
		cmds = append(cmds, m.savePlace(msg.Place))
	case events.PlaceDismissMsg:
		if m.session.Dismiss(msg.Place.ID) {
			m.sync()
			cmds = append(cmds, m.toast("Dismissed "+msg.Place.Label()))
		}
	case events.PlaceNavigateMsg:
		if p, ok := m.session.Navigate(m.ctx, msg.Place.ID); ok {
			cmds = append(cmds, m.toast(fmt.Sprintf("Opening Navigation: Getting directions to %s...", p.Title)))
		}
	case events.JournalRemoveMsg:
		if msg.EntryID != "" {
			if sp, ok := m.session.RemoveEntry(msg.EntryID); ok {
				m.sync()
				cmds = append(cmds, m.toast(fmt.Sprintf("Removed %s from Journey Log", sp.Title)))
			}
			break
		}
		if m.session.Remove(msg.Place.ID) > 0 {
			m.sync()
			cmds = append(cmds, m.toast(fmt.Sprintf("Removed %s from Journey Log", msg.Place.Label())))
		}
	case events.RouteSubmitMsg:
		if err := m.session.SetRoute(msg.From, msg.To); err != nil {
			m.setStatus(err.Error())
			break
		}
		m.overlay = overlayNone
		cmds = append(cmds, m.toast("Route set: "+m.session.Route().String()))
	case events.RouteCancelMsg:
		m.overlay = overlayNone
	case events.TabSelectMsg:
		m.session.SetTab(msg.Tab)
		m.sync()
	case events.ThemeToggleMsg:
		m.session.ToggleDarkMode()
		m.applyTheme()
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.footer.SetStatus("", false)
		}
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	default:
		if m.overlay == overlayRoute {
			var cmd tea.Cmd
			m.route, cmd = m.route.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) noteEvent(msg tea.Msg) {
	if desc := events.Describe(msg); desc != "" {
		m.logger.Debug("ui event", slog.String("type", fmt.Sprintf("%T", msg)), slog.String("detail", desc))
	}
}

func (m *Model) savePlace(ref events.PlaceRef) tea.Cmd {
	if _, added := m.session.Save(ref.ID); added {
		m.sync()
		return m.toast(fmt.Sprintf("Saved to Journey Log: %s has been saved for later exploration.", ref.Label()))
	}
	if m.session.IsSaved(ref.ID) {
		return m.toast(ref.Label() + " is already in your Journey Log")
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.shutdown()
		return tea.Quit
	}

	switch m.overlay {
	case overlayRoute:
		var cmd tea.Cmd
		m.route, cmd = m.route.Update(msg)
		return cmd
	case overlayHelp:
		switch msg.String() {
		case "?", "esc", "q":
			m.overlay = overlayNone
			return nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return cmd
	}

	switch key := msg.String(); key {
	case "q":
		m.shutdown()
		return tea.Quit
	case "?":
		m.overlay = overlayHelp
		return nil
	case "t":
		return events.Emit(events.ThemeToggleMsg{Component: rootID})
	case "r":
		m.route = route.New(routeID, m.theme, m.session.Route())
		m.route.SetWidth(min(m.width-4, 60))
		m.overlay = overlayRoute
		return m.route.Init()
	case "1", "2", "3", "4":
		tab := app.Tabs()[int(key[0]-'1')]
		return events.Emit(events.TabSelectMsg{Component: rootID, Tab: tab})
	case "tab", "shift+tab":
		return events.Emit(events.TabSelectMsg{Component: rootID, Tab: m.cycleTab(key == "tab")})
	}

	var cmd tea.Cmd
	switch m.session.Tab() {
	case app.TabDiscover:
		switch msg.String() {
		case "[", "]", "h", "l", "left", "right", "0":
			m.moods, cmd = m.moods.Update(msg)
		default:
			m.feed, cmd = m.feed.Update(msg)
		}
	case app.TabSaved:
		m.journal, cmd = m.journal.Update(msg)
	}
	return cmd
}

func (m *Model) cycleTab(forward bool) app.Tab {
	tabs := app.Tabs()
	cur := 0
	for i, t := range tabs {
		if t == m.session.Tab() {
			cur = i
			break
		}
	}
	if forward {
		return tabs[(cur+1)%len(tabs)]
	}
	return tabs[(cur-1+len(tabs))%len(tabs)]
}

func (m *Model) toast(text string) tea.Cmd {
	m.toastSeq++
	seq := m.toastSeq
	m.footer.SetStatus(text, true)
	return tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) setStatus(text string) {
	m.toastSeq++
	m.footer.SetStatus(text, false)
}

// sync copies session state into the screens.
func (m *Model) sync() {
	snap := m.session.Snapshot()
	m.feed.SetPlaces(snap.Visible, m.session.IsSaved, snap.Empty)
	m.journal.SetEntries(snap.Journal)
	m.moods.Select(snap.Mood)
	m.footer.SetActive(snap.Tab)
	m.footer.SetSavedCount(len(snap.Journal))
	m.footer.SetHelp(helpLine(snap.Tab))
}

func helpLine(t app.Tab) string {
	switch t {
	case app.TabDiscover:
		return "j/k move · s save · n navigate · d dismiss · [/] mood · ? help"
	case app.TabSaved:
		return "j/k move · x remove · X remove all · n navigate · v visited · ? help"
	case app.TabSettings:
		return "t night mode · r route · ? help"
	default:
		return "r route · ? help · q quit"
	}
}

func (m *Model) applyTheme() {
	th := theme.For(m.session.DarkMode())
	m.theme = th
	m.moods.SetTheme(th)
	m.feed.SetTheme(th)
	m.journal.SetTheme(th)
	m.footer.SetTheme(th)
	m.help.SetDark(th.Dark)
}

func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.moods.SetWidth(m.width)
	body := m.bodyHeight()
	m.feed.SetSize(m.width, max(body-lipgloss.Height(m.moods.View())-1, 3))
	m.journal.SetSize(m.width, body)
	m.help.SetSize(min(m.width-4, 80), max(body-2, 8))
	m.route.SetWidth(min(m.width-4, 60))
}

func (m *Model) bodyHeight() int {
	return max(m.height-lipgloss.Height(m.renderHeader())-m.footer.Height(), 4)
}

// View renders the header, the active screen or overlay, and the footer.
func (m *Model) View() string {
	header := m.renderHeader()
	var body string
	switch m.overlay {
	case overlayHelp:
		body = m.help.View()
	case overlayRoute:
		body = m.route.View()
	default:
		body = m.renderTab()
	}
	if m.width > 0 && m.height > 0 {
		h := m.bodyHeight()
		if m.overlay != overlayNone {
			body = lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, body)
		}
		body = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footer.View(m.width))
}

func (m *Model) renderTab() string {
	switch m.session.Tab() {
	case app.TabSaved:
		return m.journal.View()
	case app.TabProfile:
		return m.renderProfile()
	case app.TabSettings:
		return m.renderSettings()
	default:
		return lipgloss.JoinVertical(lipgloss.Left, m.moods.View(), "", m.feed.View())
	}
}

func (m *Model) renderHeader() string {
	h := m.theme.Header
	routeText := defaultRoute
	if r := m.session.Route(); r.IsSet() {
		routeText = r.String()
	}
	left := lipgloss.JoinHorizontal(lipgloss.Center,
		h.Logo.Render("AT"),
		" ",
		lipgloss.JoinVertical(lipgloss.Left,
			h.Title.Render("Travel Assist"),
			h.Route.Render("📍 "+routeText),
		),
	)
	toggle := "☀ day"
	if m.session.DarkMode() {
		toggle = "☾ night"
	}
	right := lipgloss.JoinHorizontal(lipgloss.Center, h.Badge.Render("En Route"), " ", h.Toggle.Render(toggle))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	row := lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)
	if m.width > 0 {
		return h.Frame.Width(m.width).Render(row)
	}
	return h.Frame.Render(row)
}

func (m *Model) renderProfile() string {
	p := m.theme.Panel
	stat := func(n int, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center, p.Emphasis.Render(fmt.Sprint(n)), p.Muted.Render(label))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(0, "Places Visited"), "    ",
		stat(0, "Miles Explored"), "    ",
		stat(0, "Hidden Gems"),
	)
	card := p.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		p.Title.Render("👤 Adventure Awaits"),
		p.Muted.Render("Road trip enthusiast"),
		"",
		stats,
	))

	var badges []string
	for _, label := range []string{"Hidden History", "Local Eats", "Scenic Views", "Weird & Wonderful"} {
		badges = append(badges, m.theme.Chip.Inactive.Render(label))
	}
	routeLine := "No route set"
	if r := m.session.Route(); r.IsSet() {
		routeLine = r.String()
	}
	prefs := p.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		p.Title.Render("Travel Preferences"),
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
		"",
		p.Title.Render("Your Journey"),
		p.Muted.Render(routeLine+" · press r to change"),
	))
	return lipgloss.JoinVertical(lipgloss.Left, card, prefs)
}

func (m *Model) renderSettings() string {
	p := m.theme.Panel
	row := func(title, desc, value string) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			p.Body.Render(title)+"  "+m.theme.Chip.Badge.Render(value),
			p.Muted.Render(desc),
		)
	}
	night := "Enable (t)"
	if m.session.DarkMode() {
		night = "Disable (t)"
	}
	display := p.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		p.Title.Render("Display Settings"),
		row("Night Mode", "Optimized for night driving", night),
	))
	discover := p.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		p.Title.Render("Discovery Settings"),
		row("Auto-Discover", "Automatically find places along your route", "Enabled"),
		row("Discovery Range", "How far ahead to scan for places", "25km"),
		row("Reveal Interval", "Time between new discoveries", timeutil.Humanize(m.session.Interval())),
	))
	version := m.version
	if version == "" {
		version = "dev"
	}
	about := p.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		p.Title.Render("About Travel Assist"),
		p.Muted.Width(max(m.width-8, 20)).Render("Your AI-powered co-pilot for discovering the hidden stories and secret spots of the world, transforming every journey into an adventure."),
		p.Muted.Render("Version "+version+" • Made for curious travelers"),
	))
	return lipgloss.JoinVertical(lipgloss.Left, display, discover, about)
}

// Run launches the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	defer m.shutdown()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return m.ctx.Err()
	}
	return err
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
