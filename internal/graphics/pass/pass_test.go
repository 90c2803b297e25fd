package pass

import (
	"fmt"
	"testing"
)

// recordingBackend logs every call it receives
type recordingBackend struct {
	calls []string
}

func (r *recordingBackend) SetDepthTest(on bool)     { r.log("depthTest", on) }
func (r *recordingBackend) SetDepthWrite(on bool)    { r.log("depthWrite", on) }
func (r *recordingBackend) SetBlend(on bool)         { r.log("blend", on) }
func (r *recordingBackend) SetBlendFunc(f BlendFunc) { r.log("blendFunc", f) }
func (r *recordingBackend) SetCull(on bool)          { r.log("cull", on) }
func (r *recordingBackend) SetCullMode(m CullMode)   { r.log("cullMode", m) }

func (r *recordingBackend) log(name string, v any) {
	r.calls = append(r.calls, fmt.Sprintf("%s=%v", name, v))
}

func (r *recordingBackend) reset() { r.calls = nil }

func TestTransparentPreset(t *testing.T) {
	s := TransparentState()
	if !s.DepthTest || s.DepthWrite {
		t.Errorf("transparent pass must test depth without writing it: %+v", s)
	}
	if !s.Blend {
		t.Errorf("transparent pass must blend")
	}
	want := BlendFunc{BlendSrcAlpha, BlendOneMinusSrcAlpha, BlendOne, BlendOneMinusSrcAlpha}
	if s.BlendFunc != want {
		t.Errorf("blend func: got %+v, want %+v", s.BlendFunc, want)
	}
	if !s.Cull || s.CullMode != CullFront {
		t.Errorf("transparent pass must cull front faces: %+v", s)
	}
}

func TestOpaquePreset(t *testing.T) {
	s := OpaqueState()
	if !s.DepthTest || !s.DepthWrite || s.Blend {
		t.Errorf("opaque pass: %+v", s)
	}
	if Opaque.State() != s || Transparent.State() != TransparentState() || Overlay.State() != OverlayState() {
		t.Errorf("Kind.State does not match presets")
	}
}

func TestRunRestoresPreviousState(t *testing.T) {
	rec := &recordingBackend{}
	tr := NewTracker(rec, Default())
	before := tr.Current()

	var during State
	Run(tr, TransparentState(), func() {
		during = tr.Current()
	})
	if during != TransparentState() {
		t.Fatalf("state during draw: got %+v", during)
	}
	if tr.Current() != before {
		t.Fatalf("state after pass: got %+v, want %+v", tr.Current(), before)
	}
}

func TestRunRestoresEveryFrame(t *testing.T) {
	rec := &recordingBackend{}
	tr := NewTracker(rec, Default())
	for frame := 0; frame < 3; frame++ {
		rec.reset()
		Run(tr, OpaqueState(), func() {})
		Run(tr, TransparentState(), func() {})
		if tr.Current() != Default() {
			t.Fatalf("frame %d: state leaked: %+v", frame, tr.Current())
		}
		// Five transparent toggles and their five restores, every frame
		if len(rec.calls) != 10 {
			t.Fatalf("frame %d: got calls %v", frame, rec.calls)
		}
	}
}

func TestRunRestoresOnPanic(t *testing.T) {
	tr := NewTracker(&recordingBackend{}, Default())
	func() {
		defer func() { _ = recover() }()
		Run(tr, OverlayState(), func() { panic("draw failed") })
	}()
	if tr.Current() != Default() {
		t.Fatalf("state not restored after panic: %+v", tr.Current())
	}
}

func TestTrackerForwardsOnlyDeltas(t *testing.T) {
	rec := &recordingBackend{}
	tr := NewTracker(rec, Default())
	if len(rec.calls) != 6 {
		t.Fatalf("initial sync: got %v", rec.calls)
	}

	rec.reset()
	tr.Apply(Default())
	if len(rec.calls) != 0 {
		t.Fatalf("re-applying the same state issued %v", rec.calls)
	}

	s := Default()
	s.DepthWrite = false
	tr.Apply(s)
	if len(rec.calls) != 1 || rec.calls[0] != "depthWrite=false" {
		t.Fatalf("single field change: got %v", rec.calls)
	}

	rec.reset()
	tr.Apply(TransparentState())
	want := map[string]bool{
		"blend=true": true,
		"blendFunc={SRC_ALPHA ONE_MINUS_SRC_ALPHA ONE ONE_MINUS_SRC_ALPHA}": true,
		"cull=true":      true,
		"cullMode=FRONT": true,
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("transparent delta: got %v", rec.calls)
	}
	for _, c := range rec.calls {
		if !want[c] {
			t.Errorf("unexpected call %q", c)
		}
	}
}

func TestKindOrder(t *testing.T) {
	if len(Kinds) != 3 || Kinds[0] != Opaque || Kinds[1] != Transparent || Kinds[2] != Overlay {
		t.Fatalf("pass order: %v", Kinds)
	}
}
