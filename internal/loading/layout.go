package loading

import (
	"cmp"
	"slices"
)

// RecomputePositions re-packs the overlays stacked on anchor. Members are
// taken in creation order, leaving ones included until they are detached:
// the first sits at the base offset and each next one below (or above, for
// bottom anchors) the previous one's measured height plus the gap. Centered
// anchors sit on the container midline, others at a fixed inset from their
// edge. An empty group is a no-op.
func (m *Manager) RecomputePositions(anchor Anchor) {
	group := m.anchorGroup(anchor)
	if len(group) == 0 {
		return
	}

	vertical, horizontal := anchor.Edges()
	offset := m.layout.Offset
	for i, inst := range group {
		if inst.visual == nil {
			continue
		}
		if i > 0 && group[i-1].visual != nil {
			offset += group[i-1].visual.Height() + m.layout.Gap
		}
		inst.visual.place(Placement{
			Vertical:   vertical,
			Offset:     offset,
			Horizontal: horizontal,
			Inset:      m.layout.Inset,
		})
	}
}

// anchorGroup returns the stacking members for anchor ordered by id. A
// fading overlay is still painted and keeps its slot; one hidden before it
// ever appeared does not.
func (m *Manager) anchorGroup(anchor Anchor) []*instance {
	var out []*instance
	for _, inst := range m.live {
		if !inst.config.stacks() || inst.config.Anchor != anchor || inst.state == StateDestroyed {
			continue
		}
		if inst.state == StateHiding && !inst.visual.Shown() {
			continue
		}
		out = append(out, inst)
	}
	slices.SortFunc(out, func(a, b *instance) int { return cmp.Compare(a.id, b.id) })
	return out
}
