package scene

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
)

// ObjectMaterial is a Phong surface description applied per object.
// It is plain data; the shader-side material uniforms get written by
// Manager.SetShaderMaterial.
type ObjectMaterial struct {
	Tag           string
	DiffuseColor  gglm.Vec3
	SpecularColor gglm.Vec3
	Shininess     float32
}

// MaterialRegistry holds the scene's named materials.
type MaterialRegistry struct {
	materials []ObjectMaterial
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Register adds a material. Tags must be unique and non-empty.
func (mr *MaterialRegistry) Register(m ObjectMaterial) error {
	if m.Tag == "" {
		return fmt.Errorf("registering material: empty tag")
	}

	for i := 0; i < len(mr.materials); i++ {
		if mr.materials[i].Tag == m.Tag {
			return fmt.Errorf("registering material %s: %w", m.Tag, ErrDuplicateTag)
		}
	}

	mr.materials = append(mr.materials, m)
	return nil
}

// Lookup returns the material registered under tag. The second return
// is false when the tag is unknown or the registry is empty.
func (mr *MaterialRegistry) Lookup(tag string) (ObjectMaterial, bool) {
	if len(mr.materials) == 0 {
		return ObjectMaterial{}, false
	}

	for i := 0; i < len(mr.materials); i++ {
		if mr.materials[i].Tag == tag {
			return mr.materials[i], true
		}
	}

	return ObjectMaterial{}, false
}

func (mr *MaterialRegistry) Count() int {
	return len(mr.materials)
}
