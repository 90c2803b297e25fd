package pass

// Backend issues individual state changes to a graphics API.
type Backend interface {
	SetDepthTest(enabled bool)
	SetDepthWrite(enabled bool)
	SetBlend(enabled bool)
	SetBlendFunc(f BlendFunc)
	SetCull(enabled bool)
	SetCullMode(m CullMode)
}

// Tracker is an Applier that shadows the backend state and forwards only the
// fields that differ from what was last applied.
type Tracker struct {
	backend Backend
	cur     State
}

// NewTracker forces initial onto the backend and starts tracking from it.
func NewTracker(b Backend, initial State) *Tracker {
	b.SetDepthTest(initial.DepthTest)
	b.SetDepthWrite(initial.DepthWrite)
	b.SetBlend(initial.Blend)
	b.SetBlendFunc(initial.BlendFunc)
	b.SetCull(initial.Cull)
	b.SetCullMode(initial.CullMode)
	return &Tracker{backend: b, cur: initial}
}

func (t *Tracker) Current() State {
	return t.cur
}

func (t *Tracker) Apply(s State) {
	if s == t.cur {
		return
	}
	b := t.backend
	if s.DepthTest != t.cur.DepthTest {
		b.SetDepthTest(s.DepthTest)
	}
	if s.DepthWrite != t.cur.DepthWrite {
		b.SetDepthWrite(s.DepthWrite)
	}
	if s.Blend != t.cur.Blend {
		b.SetBlend(s.Blend)
	}
	if s.BlendFunc != t.cur.BlendFunc {
		b.SetBlendFunc(s.BlendFunc)
	}
	if s.Cull != t.cur.Cull {
		b.SetCull(s.Cull)
	}
	if s.CullMode != t.cur.CullMode {
		b.SetCullMode(s.CullMode)
	}
	t.cur = s
}
