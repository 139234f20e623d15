// Package loading manages busy-indicator overlays painted over a Bubble Tea
// view.
//
// # Model
//
// A Stage is the terminal document: viewport size, a root container, the
// attached visuals, and a write-once keyframe stylesheet. Overlays attach
// to a Container (the root, or any Pane the application lays out) and are
// either fullscreen, cover their container, or sit as a compact box at an
// Anchor such as top-right.
//
// A Manager owns the registry of live overlays for one stage:
//
//	stage := loading.NewStage(width, height)
//	sched := loading.NewTeaScheduler()
//	overlays := loading.NewManager(stage, sched)
//
//	h := overlays.Show(loading.Label("Fetching images"))
//	h.UpdateText("Fetching images (12/40)")
//	done := h.Hide(0)
//
// Show accepts a Label or an Options partial merged over the manager
// defaults. Fullscreen and Local force the fullscreen flag and container.
//
// # Lifecycle
//
// Every overlay moves Pending -> Visible -> Hiding -> Destroyed. A short
// tick after Show flips it visible; Hide fades it for a fixed duration and
// then detaches it. Only one Pending or Visible overlay exists per
// (container, fullscreen) pair: a newer Show hides the older one.
//
// Hide, Destroy, and HideAll return a *Completion which never fails.
// Operations on overlays that are already gone are no-ops.
//
// # Stacking
//
// Non-fullscreen anchored overlays sharing an anchor are laid out in
// creation order without overlap, separated by a fixed gap, and re-packed
// whenever one joins or leaves.
//
// # Threading
//
// Nothing here locks. All Manager calls and all Scheduler callbacks must
// run on one goroutine; TeaScheduler guarantees this inside a Bubble Tea
// program by delivering timers as messages:
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		cmd := m.sched.Update(msg)
//		...
//		return m, tea.Batch(cmd, m.sched.Cmd())
//	}
//
//	func (m model) View() string {
//		return m.stage.Compose(m.base())
//	}
package loading
