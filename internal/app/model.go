package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/imgdeck/internal/config"
	"github.com/rileyhilliard/imgdeck/internal/errors"
	"github.com/rileyhilliard/imgdeck/internal/loading"
	"github.com/rileyhilliard/imgdeck/internal/logger"
	"github.com/rileyhilliard/imgdeck/internal/message"
	"github.com/rileyhilliard/imgdeck/internal/theme"
	"github.com/rileyhilliard/imgdeck/internal/ui"
	"github.com/rileyhilliard/imgdeck/internal/util"
)

// Layout constants, in cells.
const (
	headerHeight = 3
	sidebarWidth = 24
)

// Simulated work durations.
const (
	refreshDuration = 1500 * time.Millisecond
	galleryDuration = time.Second
	albumsDuration  = 800 * time.Millisecond
	uploadStep      = 300 * time.Millisecond
	uploadChunk     = 20 // percent per step
)

// Options configures a Model.
type Options struct {
	Config *config.Config
	Logger logger.Logger
	// Scheduler replaces the Bubble Tea scheduler. Timers then only run
	// when the caller drives it.
	Scheduler loading.Scheduler
	// Detect replaces terminal background detection.
	Detect theme.Detector
	Images []string
	Albums []string
}

// upload is one simulated upload with its anchored progress overlay.
type upload struct {
	name     string
	pane     *loading.Pane
	handle   *loading.Handle
	progress int
}

// overlaysClearedMsg reports that a cancel-all finished fading out.
type overlaysClearedMsg struct {
	count int
}

// Model is the Bubble Tea model for the gallery shell.
type Model struct {
	cfg *config.Config
	log logger.Logger

	stage    *loading.Stage
	sched    loading.Scheduler
	ticker   *loading.TeaScheduler // nil when Options.Scheduler is set
	overlays *loading.Manager
	theme    *theme.Manager
	messages *message.Service
	toasts   *message.Board

	header  *loading.Pane
	sidebar *loading.Pane
	gallery *loading.Pane
	uploads []*upload
	nextUp  int

	images []string
	albums []string

	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel builds the shell from opts. Config defaults are used when
// opts.Config is nil.
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}

	defaults, timings, layout, err := cfg.LoadingDefaults()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid loading settings",
			"Check the 'loading' section in "+config.ConfigFileName)
	}
	mode, err := theme.ParseMode(cfg.Theme)
	if err != nil {
		return nil, err
	}

	m := &Model{
		cfg:    cfg,
		log:    log,
		stage:  loading.NewStage(80, 24),
		images: opts.Images,
		albums: opts.Albums,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	if len(m.images) == 0 {
		m.images = demoImages()
	}
	if len(m.albums) == 0 {
		m.albums = demoAlbums()
	}

	if opts.Scheduler != nil {
		m.sched = opts.Scheduler
	} else {
		m.ticker = loading.NewTeaScheduler()
		m.sched = m.ticker
	}

	m.messages = message.NewService()
	m.messages.SetLogger(log)
	m.messages.SetDuration(cfg.Toast.Duration)
	m.toasts = message.NewBoard(m.sched)
	m.toasts.SetLimit(cfg.Toast.Limit)
	m.messages.SetSink(m.toasts)

	m.theme = theme.NewManager(mode, opts.Detect)
	m.theme.OnChange(func(current theme.Mode) {
		m.log.Debug("theme changed to %s", current)
		m.messages.Info("Theme: " + string(current))
	})

	m.overlays = loading.NewManager(m.stage, m.sched)
	m.overlays.SetLogger(log)
	m.overlays.SetDefaults(defaults)
	m.overlays.SetTimings(timings)
	m.overlays.SetLayout(layout)
	m.overlays.SetDarkMode(m.theme.IsDark)

	m.header = loading.NewPane("header", loading.Rect{})
	m.sidebar = loading.NewPane("sidebar", loading.Rect{})
	m.gallery = loading.NewPane("gallery", loading.Rect{})
	m.resize(80, 24)

	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.flush()
}

// Update implements tea.Model. Every message passes through the scheduler
// first so overlay timers fire on this goroutine.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.ticker != nil {
		cmds = append(cmds, m.ticker.Update(msg))
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case overlaysClearedMsg:
		m.messages.Warning("Cancelled " + util.Count(msg.count, "task", "tasks"))
	}

	m.layout()
	cmds = append(cmds, m.flush())
	return m, tea.Batch(cmds...)
}

// flush returns the ticks queued since the last call.
func (m *Model) flush() tea.Cmd {
	if m.ticker == nil {
		return nil
	}
	return m.ticker.Cmd()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Fullscreen):
		m.refreshLibrary()
	case key.Matches(msg, m.keys.Gallery):
		m.loadGallery()
	case key.Matches(msg, m.keys.Sidebar):
		m.syncAlbums()
	case key.Matches(msg, m.keys.Upload):
		m.startUpload()
	case key.Matches(msg, m.keys.HideAll):
		return m.cancelAll()
	case key.Matches(msg, m.keys.Theme):
		m.theme.Toggle()
	}
	return nil
}

func (m *Model) refreshLibrary() {
	h := m.overlays.Fullscreen(loading.Label("Refreshing library..."))
	m.finishAfter(h, refreshDuration, func() {
		m.messages.Success("Library refreshed: " + util.Count(len(m.images), "image", "images"))
	})
}

func (m *Model) loadGallery() {
	h := m.overlays.Local(m.gallery, loading.Label("Loading thumbnails..."))
	m.finishAfter(h, galleryDuration, func() {
		m.messages.Info("Thumbnails up to date")
	})
}

func (m *Model) syncAlbums() {
	h := m.overlays.Local(m.sidebar, loading.Options{Text: "Syncing albums...", Mask: loading.Bool(false)})
	m.finishAfter(h, albumsDuration, func() {
		m.messages.Success(util.Count(len(m.albums), "album", "albums") + " synced")
	})
}

// finishAfter simulates work on h: after d it hides the overlay and runs
// done, unless the overlay was evicted or cancelled first.
func (m *Model) finishAfter(h *loading.Handle, d time.Duration, done func()) {
	m.sched.AfterFunc(d, func() {
		if !active(h) {
			return
		}
		h.Hide(0)
		done()
	})
}

func active(h *loading.Handle) bool {
	s := h.State()
	return s == loading.StatePending || s == loading.StateVisible
}

// startUpload opens an anchored progress overlay. Each upload gets its own
// pane over the gallery so concurrent uploads stack instead of evicting
// each other.
func (m *Model) startUpload() {
	m.nextUp++
	u := &upload{
		name: m.images[(m.nextUp-1)%len(m.images)],
		pane: loading.NewPane(fmt.Sprintf("upload-%d", m.nextUp), m.gallery.Bounds()),
	}

	anchor := m.overlays.Defaults().Anchor
	if anchor == loading.AnchorNone {
		anchor = loading.AnchorBottomRight
	}
	u.handle = m.overlays.Local(u.pane, loading.Options{
		Text:   uploadText(u),
		Anchor: anchor,
		Mask:   loading.Bool(false),
		OnHide: func() { m.dropUpload(u) },
	})
	m.uploads = append(m.uploads, u)
	m.log.Debug("upload %s started", u.name)

	m.sched.AfterFunc(uploadStep, func() { m.advanceUpload(u) })
}

func (m *Model) advanceUpload(u *upload) {
	if !active(u.handle) {
		return
	}

	u.progress += uploadChunk
	if u.progress >= 100 {
		u.progress = 100
		u.handle.UpdateText(uploadText(u))
		u.handle.UpdateColor(ui.ColorSuccess)
		u.handle.Hide(uploadStep)
		m.messages.Success("Uploaded " + u.name)
		return
	}

	u.handle.UpdateText(uploadText(u))
	m.sched.AfterFunc(uploadStep, func() { m.advanceUpload(u) })
}

func (m *Model) dropUpload(u *upload) {
	for i, other := range m.uploads {
		if other == u {
			m.uploads = append(m.uploads[:i], m.uploads[i+1:]...)
			return
		}
	}
}

func uploadText(u *upload) string {
	if u.progress >= 100 {
		return u.name + " " + ui.SymbolSuccess
	}
	return fmt.Sprintf("%s %d%%", u.name, u.progress)
}

// cancelAll hides every overlay and reports once they have all faded.
func (m *Model) cancelAll() tea.Cmd {
	n := m.overlays.Len()
	if n == 0 {
		return nil
	}
	return m.overlays.HideAll().Cmd(overlaysClearedMsg{count: n})
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.stage.Resize(width, height)
	m.help.Width = width
	m.layout()
}

// layout recomputes pane bounds. The footer grows with the toast count.
func (m *Model) layout() {
	footer := lipgloss.Height(m.footerView())
	body := m.height - headerHeight - footer
	if body < 0 {
		body = 0
	}
	side := sidebarWidth
	if side > m.width/3 {
		side = m.width / 3
	}

	m.header.SetBounds(loading.Rect{Width: m.width, Height: headerHeight})
	m.sidebar.SetBounds(loading.Rect{Y: headerHeight, Width: side, Height: body})
	m.gallery.SetBounds(loading.Rect{X: side, Y: headerHeight, Width: m.width - side, Height: body})
	for _, u := range m.uploads {
		u.pane.SetBounds(m.gallery.Bounds())
	}
}

// Overlays returns the overlay manager.
func (m *Model) Overlays() *loading.Manager {
	return m.overlays
}

// Theme returns the theme manager.
func (m *Model) Theme() *theme.Manager {
	return m.theme
}

// Messages returns the toast service.
func (m *Model) Messages() *message.Service {
	return m.messages
}

// Gallery returns the gallery pane.
func (m *Model) Gallery() loading.Container {
	return m.gallery
}

// Sidebar returns the sidebar pane.
func (m *Model) Sidebar() loading.Container {
	return m.sidebar
}

func demoImages() []string {
	images := make([]string, 0, 24)
	for i := 1; i <= 24; i++ {
		images = append(images, fmt.Sprintf("IMG_%04d.jpg", 4200+i))
	}
	return images
}

func demoAlbums() []string {
	return []string{"Camera Roll", "Favorites", "Screenshots", "Travel 2025", "Family", "Receipts"}
}
