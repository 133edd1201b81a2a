package rend3dgl

import (
	"github.com/campfire3d/campfire/materials"
	"github.com/campfire3d/campfire/meshes"
	"github.com/campfire3d/campfire/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

// Rend3DGL issues indexed draws and skips redundant vao/program binds
// within a frame. Model and view matrices are uploaded by the caller
// before drawing.
type Rend3DGL struct {
	BoundMatId     uint32
	BoundMeshVaoId uint32
}

func (r *Rend3DGL) DrawMesh(mesh *meshes.Mesh, mat *materials.Material) {

	if mesh.Vao.Id != r.BoundMeshVaoId {
		mesh.Vao.Bind()
		r.BoundMeshVaoId = mesh.Vao.Id
	}

	if mat.Id != r.BoundMatId {
		mat.Bind()
		r.BoundMatId = mat.Id
	}

	for i := 0; i < len(mesh.SubMeshes); i++ {
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, mesh.SubMeshes[i].IndexCount, gl.UNSIGNED_INT, uintptr(mesh.SubMeshes[i].BaseIndex*4), mesh.SubMeshes[i].BaseVertex)
	}
}

func (r3d *Rend3DGL) FrameEnd() {
	r3d.BoundMatId = 0
	r3d.BoundMeshVaoId = 0
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}
