// Package assets embeds the default GLSL programs.
package assets

import "embed"

// FS holds shaders/*.vert and shaders/*.frag
//
//go:embed shaders
var FS embed.FS

// Program file names, relative to FS
const (
	MeshVert  = "shaders/mesh.vert"
	MeshFrag  = "shaders/mesh.frag"
	PointVert = "shaders/point.vert"
	PointFrag = "shaders/point.frag"
	TextVert  = "shaders/text.vert"
	TextFrag  = "shaders/text.frag"
)
