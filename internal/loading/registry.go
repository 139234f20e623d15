package loading

// instance is one overlay and its lifecycle bookkeeping.
type instance struct {
	id     InstanceID
	config Config
	state  State
	visual *Visual
	// timers holds the stop functions of the appear tick and any delayed
	// hides. All are cancelled when hiding begins.
	timers []func() bool
	// done is shared by every Hide call on this instance.
	done *Completion
}

func (i *instance) cancelTimers() {
	for _, stop := range i.timers {
		stop()
	}
	i.timers = nil
}

// registry is the insertion-ordered set of Pending and Visible instances.
type registry struct {
	items []*instance
}

func (r *registry) add(inst *instance) {
	if r.index(inst.id) >= 0 {
		return
	}
	r.items = append(r.items, inst)
}

func (r *registry) index(id InstanceID) int {
	for i, inst := range r.items {
		if inst.id == id {
			return i
		}
	}
	return -1
}

func (r *registry) remove(id InstanceID) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return true
}

func (r *registry) get(id InstanceID) *instance {
	if i := r.index(id); i >= 0 {
		return r.items[i]
	}
	return nil
}

// matching returns members on the same container with the same fullscreen flag.
func (r *registry) matching(c Container, fullscreen bool) []*instance {
	var out []*instance
	for _, inst := range r.items {
		if inst.config.Container == c && inst.config.Fullscreen == fullscreen {
			out = append(out, inst)
		}
	}
	return out
}

func (r *registry) first(c Container) *instance {
	for _, inst := range r.items {
		if inst.config.Container == c {
			return inst
		}
	}
	return nil
}

func (r *registry) snapshot() []*instance {
	out := make([]*instance, len(r.items))
	copy(out, r.items)
	return out
}

func (r *registry) len() int {
	return len(r.items)
}
