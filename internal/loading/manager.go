package loading

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/imgdeck/internal/logger"
	"github.com/rileyhilliard/imgdeck/internal/ui"
)

// Default timings and layout constants.
const (
	// DefaultShowDelay lets the hidden frame render before the appear flip.
	DefaultShowDelay    = 10 * time.Millisecond
	DefaultFadeDuration = 200 * time.Millisecond

	DefaultOffset = 1 // rows from the anchor's vertical edge
	DefaultInset  = 2 // columns from the anchor's horizontal edge
	DefaultGap    = 1 // rows between stacked overlays
)

// Timings controls the transition durations.
type Timings struct {
	ShowDelay time.Duration
	Fade      time.Duration
}

// Layout controls anchored placement and stacking.
type Layout struct {
	Offset int
	Inset  int
	Gap    int
}

// Manager owns the overlay registry for one stage. All methods, and every
// callback of its Scheduler, must run on the same goroutine.
type Manager struct {
	stage    *Stage
	sched    Scheduler
	factory  factory
	defaults Config
	timings  Timings
	layout   Layout
	dark     func() bool
	log      logger.Logger

	nextID   InstanceID
	registry registry
	// live holds every instance that is not yet destroyed, hiding ones included.
	live      map[InstanceID]*instance
	animating bool
}

// NewManager creates a manager drawing on stage and timing on sched.
func NewManager(stage *Stage, sched Scheduler) *Manager {
	return &Manager{
		stage:    stage,
		sched:    sched,
		factory:  factory{stage: stage, styles: DefaultStyles()},
		defaults: DefaultConfig(),
		timings:  Timings{ShowDelay: DefaultShowDelay, Fade: DefaultFadeDuration},
		layout:   Layout{Offset: DefaultOffset, Inset: DefaultInset, Gap: DefaultGap},
		dark:     func() bool { return false },
		log:      logger.Default(),
		live:     make(map[InstanceID]*instance),
	}
}

// SetDefaults replaces the defaults requests are merged over.
func (m *Manager) SetDefaults(cfg Config) {
	m.defaults = cfg
}

// Defaults returns the current defaults.
func (m *Manager) Defaults() Config {
	return m.defaults
}

// SetDarkMode sets the theme signal queried when an overlay is built.
func (m *Manager) SetDarkMode(fn func() bool) {
	if fn == nil {
		fn = func() bool { return false }
	}
	m.dark = fn
}

// SetLogger sets the logger for lifecycle events.
func (m *Manager) SetLogger(l logger.Logger) {
	m.log = l
}

// SetTimings sets the transition durations.
func (m *Manager) SetTimings(t Timings) {
	m.timings = t
}

// SetLayout sets the anchored placement constants.
func (m *Manager) SetLayout(l Layout) {
	m.layout = l
}

// SetStyles replaces the style table used for new overlays.
func (m *Manager) SetStyles(t StyleTable) {
	m.factory.styles = t
}

// Stage returns the stage the manager draws on.
func (m *Manager) Stage() *Stage {
	return m.stage
}

// Len returns the number of Pending and Visible overlays.
func (m *Manager) Len() int {
	return m.registry.len()
}

// IDs returns the Pending and Visible overlays in creation order.
func (m *Manager) IDs() []InstanceID {
	ids := make([]InstanceID, 0, m.registry.len())
	for _, inst := range m.registry.items {
		ids = append(ids, inst.id)
	}
	return ids
}

// Show attaches a new overlay and returns its handle. Any Pending or
// Visible overlay on the same container with the same fullscreen flag is
// hidden and dropped from the registry first.
func (m *Manager) Show(req Request) *Handle {
	cfg := resolve(m.defaults, req)
	if cfg.Container == nil {
		cfg.Container = m.stage.Root()
	}

	m.nextID++
	inst := &instance{id: m.nextID, config: cfg, state: StatePending}
	inst.visual = m.factory.build(cfg, m.dark())
	m.stage.Attach(inst.visual)

	for _, old := range m.registry.matching(cfg.Container, cfg.Fullscreen) {
		m.log.Debug("overlay %d evicted by %d on %s", old.id, inst.id, cfg.Container.Name())
		m.Hide(old.id, 0)
		m.registry.remove(old.id)
	}

	m.registry.add(inst)
	m.live[inst.id] = inst
	if cfg.stacks() {
		m.RecomputePositions(cfg.Anchor)
	}

	inst.timers = append(inst.timers, m.sched.AfterFunc(m.timings.ShowDelay, func() {
		m.appear(inst)
	}))
	m.ensureAnimation()

	m.log.Debug("overlay %d shown on %s: %q", inst.id, cfg.Container.Name(), cfg.Text)
	return &Handle{m: m, id: inst.id}
}

// Fullscreen shows an overlay covering the whole viewport.
func (m *Manager) Fullscreen(req Request) *Handle {
	o := optionsOf(req)
	o.Fullscreen = Bool(true)
	return m.Show(o)
}

// Local shows an overlay inside container.
func (m *Manager) Local(container Container, req Request) *Handle {
	o := optionsOf(req)
	o.Fullscreen = Bool(false)
	o.Container = container
	return m.Show(o)
}

func optionsOf(req Request) Options {
	if req == nil {
		return Options{}
	}
	return req.options()
}

func (m *Manager) appear(inst *instance) {
	if inst.state != StatePending {
		return
	}
	inst.visual.phase = phaseShown
	inst.state = StateVisible
	if inst.config.OnShow != nil {
		inst.config.OnShow()
	}
}

// Hide starts the disappear transition after delay and returns a
// completion that resolves once the overlay is detached and its anchor
// group re-laid out. Hiding an unknown, hiding, or destroyed overlay is a
// no-op; the returned completion still resolves.
func (m *Manager) Hide(id InstanceID, delay time.Duration) *Completion {
	inst, ok := m.live[id]
	if !ok || !inst.visual.Attached() {
		m.log.Debug("overlay %d is already gone", id)
		return resolvedCompletion()
	}
	if inst.done == nil {
		inst.done = newCompletion()
	}
	if inst.state == StateHiding {
		return inst.done
	}

	if delay <= 0 {
		m.beginHide(inst)
		return inst.done
	}
	inst.timers = append(inst.timers, m.sched.AfterFunc(delay, func() {
		m.beginHide(inst)
	}))
	return inst.done
}

// Destroy hides the overlay immediately.
func (m *Manager) Destroy(id InstanceID) *Completion {
	return m.Hide(id, 0)
}

func (m *Manager) beginHide(inst *instance) {
	if inst.state == StateHiding || inst.state == StateDestroyed {
		return
	}
	inst.cancelTimers()
	m.registry.remove(inst.id)
	inst.state = StateHiding
	if inst.visual.Shown() {
		inst.visual.phase = phaseLeaving
	} else if inst.config.stacks() {
		m.RecomputePositions(inst.config.Anchor)
	}
	m.sched.AfterFunc(m.timings.Fade, func() {
		m.teardown(inst)
	})
}

func (m *Manager) teardown(inst *instance) {
	if inst.state == StateDestroyed {
		return
	}
	m.stage.Detach(inst.visual)
	inst.visual = nil
	inst.state = StateDestroyed
	delete(m.live, inst.id)

	if inst.config.OnHide != nil {
		inst.config.OnHide()
	}
	if inst.config.stacks() {
		m.RecomputePositions(inst.config.Anchor)
	}

	m.log.Debug("overlay %d destroyed", inst.id)
	if inst.done == nil {
		inst.done = newCompletion()
	}
	inst.done.resolve()
}

// UpdateText replaces the label of a live overlay. Empty text is ignored.
func (m *Manager) UpdateText(id InstanceID, text string) {
	inst, ok := m.live[id]
	if !ok || inst.visual == nil || text == "" {
		return
	}
	before := inst.visual.Height()
	inst.visual.setText(text)
	inst.config.Text = text
	if inst.config.stacks() && inst.state != StateHiding && inst.visual.Height() != before {
		m.RecomputePositions(inst.config.Anchor)
	}
}

// UpdateColor replaces the spinner highlight of a live overlay. An empty
// color is ignored.
func (m *Manager) UpdateColor(id InstanceID, color lipgloss.Color) {
	inst, ok := m.live[id]
	if !ok || inst.visual == nil || color == "" {
		return
	}
	inst.visual.setColor(color)
	inst.config.Color = color
}

// HideAll hides every Pending and Visible overlay. The completion resolves
// after each of them resolved. Overlays shown after the call are not part
// of the batch and stay up.
func (m *Manager) HideAll() *Completion {
	all := newCompletion()
	members := m.registry.snapshot()
	if len(members) == 0 {
		all.resolve()
		return all
	}

	remaining := len(members)
	for _, inst := range members {
		m.Hide(inst.id, 0).OnDone(func() {
			remaining--
			if remaining == 0 {
				all.resolve()
			}
		})
	}
	return all
}

// GetInstance returns the first Pending or Visible overlay on container, or
// nil. A nil container means the stage root.
func (m *Manager) GetInstance(container Container) *Handle {
	if container == nil {
		container = m.stage.Root()
	}
	inst := m.registry.first(container)
	if inst == nil {
		return nil
	}
	return &Handle{m: m, id: inst.id}
}

// State returns the lifecycle state of id. Unknown ids report destroyed.
func (m *Manager) State(id InstanceID) State {
	if inst, ok := m.live[id]; ok {
		return inst.state
	}
	return StateDestroyed
}

// Config returns the stored config of a live overlay.
func (m *Manager) Config(id InstanceID) (Config, bool) {
	inst, ok := m.live[id]
	if !ok {
		return Config{}, false
	}
	return inst.config, true
}

// Visual returns the visual of a live overlay, or nil.
func (m *Manager) Visual(id InstanceID) *Visual {
	if inst, ok := m.live[id]; ok {
		return inst.visual
	}
	return nil
}

// ensureAnimation keeps the shared spinner ticking while anything is attached.
func (m *Manager) ensureAnimation() {
	if m.animating || m.stage.Len() == 0 {
		return
	}
	sp, ok := m.stage.Keyframes(ui.SpinnerKeyframesID)
	if !ok || sp.FPS <= 0 {
		return
	}
	m.animating = true
	m.sched.AfterFunc(sp.FPS, m.animate)
}

func (m *Manager) animate() {
	m.animating = false
	if m.stage.Len() == 0 {
		return
	}
	m.stage.Advance()
	m.ensureAnimation()
}
