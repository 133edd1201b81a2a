package shapes

import (
	"fmt"
	"path/filepath"

	"github.com/campfire3d/campfire/logging"
	"github.com/campfire3d/campfire/materials"
	"github.com/campfire3d/campfire/meshes"
	"github.com/campfire3d/campfire/renderer"
	"github.com/campfire3d/campfire/scene"
)

// Set owns the primitive meshes the scene composer draws and the
// renderer that draws them. All primitives share one material; the
// composer sets the per-object uniforms before each draw.
type Set struct {
	rend   renderer.Render
	mat    *materials.Material
	meshes map[scene.ShapeKind]*meshes.Mesh
}

var _ scene.ShapeDrawer = &Set{}

var modelFiles = map[scene.ShapeKind]string{
	scene.ShapePlane:    "plane.obj",
	scene.ShapeBox:      "box.obj",
	scene.ShapeCylinder: "cylinder.obj",
	scene.ShapeTorus:    "torus.obj",
	scene.ShapeSphere:   "sphere.obj",
}

// Load reads every primitive model from modelsDir.
func Load(modelsDir string, rend renderer.Render, mat *materials.Material) (*Set, error) {

	set := &Set{
		rend:   rend,
		mat:    mat,
		meshes: make(map[scene.ShapeKind]*meshes.Mesh, len(modelFiles)),
	}

	for kind, file := range modelFiles {

		mesh, err := meshes.NewMesh(kind.String(), filepath.Join(modelsDir, file), 0)
		if err != nil {
			return nil, fmt.Errorf("loading %s primitive: %w", kind, err)
		}

		set.meshes[kind] = &mesh
	}

	return set, nil
}

func (s *Set) DrawShape(kind scene.ShapeKind) {

	mesh, ok := s.meshes[kind]
	if !ok {
		logging.WarnLog.Printf("no mesh loaded for shape %s\n", kind)
		return
	}

	s.rend.DrawMesh(mesh, s.mat)
}
