// Package pass models the fixed-function state a draw pass needs (depth,
// blending, culling) as plain values, applied before a pass and restored after
// it. Nothing here touches a graphics context; an Applier does.
package pass

import "fmt"

// BlendFactor is a blend equation source or destination factor
type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

func (f BlendFactor) String() string {
	switch f {
	case BlendZero:
		return "ZERO"
	case BlendOne:
		return "ONE"
	case BlendSrcAlpha:
		return "SRC_ALPHA"
	case BlendOneMinusSrcAlpha:
		return "ONE_MINUS_SRC_ALPHA"
	default:
		return fmt.Sprintf("BlendFactor(%d)", int(f))
	}
}

// CullMode selects which faces culling discards
type CullMode int

const (
	CullBack CullMode = iota
	CullFront
)

func (m CullMode) String() string {
	if m == CullFront {
		return "FRONT"
	}
	return "BACK"
}

// BlendFunc holds separate RGB and alpha factors
type BlendFunc struct {
	SrcRGB   BlendFactor
	DstRGB   BlendFactor
	SrcAlpha BlendFactor
	DstAlpha BlendFactor
}

// State is the complete pass configuration. It is comparable, so a zero
// diff between two states is just ==.
type State struct {
	DepthTest  bool
	DepthWrite bool
	Blend      bool
	BlendFunc  BlendFunc
	Cull       bool
	CullMode   CullMode
}

// Kind names a pass in frame order
type Kind int

const (
	Opaque Kind = iota
	Transparent
	Overlay
)

// Kinds lists the passes in the order a frame runs them
var Kinds = []Kind{Opaque, Transparent, Overlay}

func (k Kind) String() string {
	switch k {
	case Opaque:
		return "opaque"
	case Transparent:
		return "transparent"
	case Overlay:
		return "overlay"
	default:
		return fmt.Sprintf("pass(%d)", int(k))
	}
}

// State returns the preset state for the pass kind.
func (k Kind) State() State {
	switch k {
	case Transparent:
		return TransparentState()
	case Overlay:
		return OverlayState()
	default:
		return OpaqueState()
	}
}

// alphaOver blends color with source alpha, and accumulates alpha with ONE on
// the source side so the destination alpha is not darkened twice.
var alphaOver = BlendFunc{
	SrcRGB:   BlendSrcAlpha,
	DstRGB:   BlendOneMinusSrcAlpha,
	SrcAlpha: BlendOne,
	DstAlpha: BlendOneMinusSrcAlpha,
}

// Default is the state a fresh GL context starts in, with depth testing on.
func Default() State {
	return State{
		DepthTest:  true,
		DepthWrite: true,
		BlendFunc:  BlendFunc{SrcRGB: BlendOne, DstRGB: BlendZero, SrcAlpha: BlendOne, DstAlpha: BlendZero},
		CullMode:   CullBack,
	}
}

// OpaqueState: depth test and writes on, no blending, no culling.
func OpaqueState() State {
	return Default()
}

// TransparentState: depth test on but writes off so translucent fragments do
// not occlude each other, over-blending, and front faces culled so each thin
// quad only draws its back face once.
func TransparentState() State {
	return State{
		DepthTest:  true,
		DepthWrite: false,
		Blend:      true,
		BlendFunc:  alphaOver,
		Cull:       true,
		CullMode:   CullFront,
	}
}

// OverlayState draws screen-space text over everything.
func OverlayState() State {
	return State{
		DepthTest:  false,
		DepthWrite: false,
		Blend:      true,
		BlendFunc:  alphaOver,
		Cull:       false,
		CullMode:   CullBack,
	}
}

// Applier pushes pass state to a graphics context.
type Applier interface {
	// Current returns the state last applied.
	Current() State
	// Apply makes s the current state.
	Apply(s State)
}

// Run applies s, calls draw, then restores the state that was current before.
// The restore happens even if draw panics.
func Run(a Applier, s State, draw func()) {
	prev := a.Current()
	a.Apply(s)
	defer a.Apply(prev)
	draw()
}
