package renderer

import (
	"errors"
	"reflect"
	"testing"

	"planeviz/internal/camera"
	"planeviz/internal/config"
	"planeviz/internal/graphics/pass"
	"planeviz/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeApplier struct {
	cur     pass.State
	applied []pass.State
}

func (f *fakeApplier) Current() pass.State { return f.cur }

func (f *fakeApplier) Apply(s pass.State) {
	f.cur = s
	f.applied = append(f.applied, s)
}

type fakeSurface struct {
	clears    int
	wireframe []bool
	w, h      int
}

func (f *fakeSurface) Clear(mgl32.Vec4)     { f.clears++ }
func (f *fakeSurface) SetWireframe(on bool) { f.wireframe = append(f.wireframe, on) }
func (f *fakeSurface) SetViewport(w, h int) { f.w, f.h = w, h }

type recordingRenderable struct {
	name     string
	log      *[]string
	state    pass.Applier
	initErr  error
	disposed bool
	w, h     int
	seen     []pass.State
}

func (r *recordingRenderable) Init() error { return r.initErr }

func (r *recordingRenderable) Render(ctx RenderContext) {
	*r.log = append(*r.log, r.name+":"+ctx.Pass.String())
	r.seen = append(r.seen, r.state.Current())
}

func (r *recordingRenderable) Dispose()             { r.disposed = true }
func (r *recordingRenderable) SetViewport(w, h int) { r.w, r.h = w, h }

func newCamera() *camera.Camera {
	return camera.New(mgl32.Vec3{0, 0.3, -0.5}, -10, 10, 1.5)
}

func TestRenderPassOrder(t *testing.T) {
	var log []string
	state := &fakeApplier{cur: pass.Default()}
	surf := &fakeSurface{}
	a := &recordingRenderable{name: "a", log: &log, state: state}
	b := &recordingRenderable{name: "b", log: &log, state: state}

	r, err := NewRenderer(newCamera(), state, surf, a, b)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := scene.New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	config.SetWireframe(false)
	r.Render(sc, 0.016)

	want := []string{"a:opaque", "b:opaque", "a:transparent", "b:transparent", "a:overlay", "b:overlay"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("order: got %v, want %v", log, want)
	}
	if surf.clears != 1 {
		t.Errorf("clears: got %d", surf.clears)
	}
	wantStates := []pass.State{pass.OpaqueState(), pass.TransparentState(), pass.OverlayState()}
	for i, s := range a.seen {
		if s != wantStates[i] {
			t.Errorf("pass %d: got state %+v", i, s)
		}
	}
	if state.Current() != pass.Default() {
		t.Errorf("state not restored after frame: %+v", state.Current())
	}
}

func TestRenderWireframeSkipsOverlay(t *testing.T) {
	var log []string
	state := &fakeApplier{cur: pass.Default()}
	surf := &fakeSurface{}
	r, err := NewRenderer(newCamera(), state, surf, &recordingRenderable{name: "a", log: &log, state: state})
	if err != nil {
		t.Fatal(err)
	}
	config.SetWireframe(true)
	defer config.SetWireframe(false)

	r.Render(nil, 0)
	want := []bool{true, true, false, false}
	if !reflect.DeepEqual(surf.wireframe, want) {
		t.Fatalf("wireframe toggles: got %v, want %v", surf.wireframe, want)
	}
}

func TestInitFailureDisposesEarlier(t *testing.T) {
	var log []string
	state := &fakeApplier{cur: pass.Default()}
	boom := errors.New("boom")
	a := &recordingRenderable{name: "a", log: &log, state: state}
	b := &recordingRenderable{name: "b", log: &log, state: state, initErr: boom}
	c := &recordingRenderable{name: "c", log: &log, state: state}

	if _, err := NewRenderer(newCamera(), state, &fakeSurface{}, a, b, c); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if !a.disposed || b.disposed || c.disposed {
		t.Errorf("dispose flags: a=%v b=%v c=%v", a.disposed, b.disposed, c.disposed)
	}
}

func TestUpdateViewportAndDispose(t *testing.T) {
	var log []string
	state := &fakeApplier{cur: pass.Default()}
	surf := &fakeSurface{}
	a := &recordingRenderable{name: "a", log: &log, state: state}
	r, err := NewRenderer(newCamera(), state, surf, a)
	if err != nil {
		t.Fatal(err)
	}
	r.UpdateViewport(640, 480)
	if surf.w != 640 || a.h != 480 {
		t.Errorf("viewport not forwarded: surface %dx%d renderable %dx%d", surf.w, surf.h, a.w, a.h)
	}
	r.Dispose()
	if !a.disposed {
		t.Error("dispose not forwarded")
	}
}
