package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// BackToFront returns the instances ordered farthest-first from eye, the
// order "over" blending needs. Distance is measured to each instance's
// anchor, so two large primitives whose anchors are about equidistant but
// whose extents interpenetrate can still composite in the wrong order.
// Equal distances keep their input order. The input slice is not modified.
func BackToFront(instances []*Instance, eye mgl32.Vec3) []*Instance {
	order := make([]byDistance, len(instances))
	for i, in := range instances {
		order[i] = byDistance{in: in, dist: eye.Sub(in.Anchor()).Len()}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].dist > order[j].dist
	})

	out := make([]*Instance, len(order))
	for i, o := range order {
		out[i] = o.in
	}
	return out
}

type byDistance struct {
	in   *Instance
	dist float32
}
