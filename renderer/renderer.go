package renderer

import (
	"github.com/campfire3d/campfire/materials"
	"github.com/campfire3d/campfire/meshes"
)

type Render interface {
	DrawMesh(mesh *meshes.Mesh, mat *materials.Material)
	FrameEnd()
}
