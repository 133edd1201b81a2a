package scene

import (
	"errors"
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/campfire3d/campfire/logging"
)

// UniformSetter is the slice of the materials.Material method set the
// composer needs. Tests substitute a recording fake.
type UniformSetter interface {
	SetUnifMat4(name string, m *gglm.Mat4)
	SetUnifVec2(name string, v *gglm.Vec2)
	SetUnifVec3(name string, v *gglm.Vec3)
	SetUnifVec4(name string, v *gglm.Vec4)
	SetUnifInt32(name string, val int32)
	SetUnifFloat32(name string, val float32)
	SetUnifBool(name string, val bool)
	SetUnifSampler2D(name string, slot int32)
}

// ShapeDrawer issues the draw call for one primitive. The GL
// implementation lives in the shapes package.
type ShapeDrawer interface {
	DrawShape(kind ShapeKind)
}

type ShapeKind int

const (
	ShapeUnknown ShapeKind = iota
	ShapePlane
	ShapeBox
	ShapeCylinder
	ShapeTorus
	ShapeSphere
)

func (s ShapeKind) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeTorus:
		return "torus"
	case ShapeSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// ShapeKindFromString parses the shape names used in scene files.
func ShapeKindFromString(s string) (ShapeKind, error) {
	switch s {
	case "plane":
		return ShapePlane, nil
	case "box":
		return ShapeBox, nil
	case "cylinder":
		return ShapeCylinder, nil
	case "torus":
		return ShapeTorus, nil
	case "sphere":
		return ShapeSphere, nil
	default:
		return ShapeUnknown, fmt.Errorf("unknown shape kind %q", s)
	}
}

// TextureRef names one texture file to load and the tag it is looked up by.
type TextureRef struct {
	Path string
	Tag  string
}

// Object is one drawable in the scene. Rotation is in degrees and is
// applied Z then Y then X, after scaling and before translation.
type Object struct {
	Name        string
	Shape       ShapeKind
	Scale       gglm.Vec3
	Rotation    gglm.Vec3
	Position    gglm.Vec3
	MaterialTag string
	TextureTag  string
	Color       gglm.Vec4
	UVScale     gglm.Vec2
	Unlit       bool
}

// Definition is a fully parsed scene: what to load and what to draw.
type Definition struct {
	Textures  []TextureRef
	Materials []ObjectMaterial
	Lighting  Lighting
	Objects   []Object
}

// Manager prepares GPU resources for a scene definition and replays its
// object list each frame.
type Manager struct {
	Textures  *TextureRegistry
	Materials *MaterialRegistry
	Lighting  Lighting

	shader  UniformSetter
	drawer  ShapeDrawer
	objects []Object
}

func NewManager(shader UniformSetter, drawer ShapeDrawer, backend TextureBackend) *Manager {
	return &Manager{
		Textures:  NewTextureRegistry(backend),
		Materials: NewMaterialRegistry(),
		shader:    shader,
		drawer:    drawer,
	}
}

// PrepareScene loads the definition's textures and materials and stores
// its lighting and object list. Texture loads are attempted in order
// and all failures are reported together.
func (m *Manager) PrepareScene(def *Definition) error {
	var errs []error

	for i := 0; i < len(def.Textures); i++ {
		t := def.Textures[i]
		if err := m.Textures.Load(t.Path, t.Tag); err != nil {
			errs = append(errs, err)
		}
	}

	for i := 0; i < len(def.Materials); i++ {
		if err := m.Materials.Register(def.Materials[i]); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("preparing scene: %w", err)
	}

	m.Lighting = def.Lighting
	m.objects = def.Objects

	m.Textures.BindAll()
	return nil
}

// RenderScene rebinds the scene textures, applies the light rig and
// draws every object. Rebinding every frame matters because the UI
// backend reuses texture units for its font atlas.
func (m *Manager) RenderScene() {
	m.Textures.BindAll()

	m.SetUseLighting(true)
	m.Lighting.Apply(m.shader)

	for i := 0; i < len(m.objects); i++ {
		m.drawObject(&m.objects[i])
	}
}

func (m *Manager) drawObject(obj *Object) {
	if obj.Unlit {
		m.SetUseLighting(false)
		defer m.SetUseLighting(true)
	}

	m.SetTransformations(&obj.Scale, obj.Rotation.X(), obj.Rotation.Y(), obj.Rotation.Z(), &obj.Position)
	m.SetShaderColor(&obj.Color)
	m.SetTextureUVScale(&obj.UVScale)

	if obj.TextureTag != "" {
		m.SetShaderTexture(obj.TextureTag)
	} else {
		m.shader.SetUnifBool(UnifUseTexture, false)
	}

	if obj.MaterialTag != "" {
		m.SetShaderMaterial(obj.MaterialTag)
	}

	m.drawer.DrawShape(obj.Shape)
}

// SetTransformations composes scale, then Z/Y/X rotation (degrees), then
// translation into the model matrix and uploads it.
func (m *Manager) SetTransformations(scale *gglm.Vec3, rotXDeg, rotYDeg, rotZDeg float32, pos *gglm.Vec3) {
	model := ModelMatrix(scale, rotXDeg, rotYDeg, rotZDeg, pos)
	m.shader.SetUnifMat4(UnifModel, &model.Mat4)
}

// ModelMatrix builds translation * rotZ * rotY * rotX * scale.
func ModelMatrix(scale *gglm.Vec3, rotXDeg, rotYDeg, rotZDeg float32, pos *gglm.Vec3) *gglm.TrMat {

	translationMat := gglm.NewTranslationMatVec(pos)
	scaleMat := gglm.NewScaleMatVec(scale)

	rotMat := gglm.NewTrMatId()
	rotMat.Rotate(rotZDeg*gglm.Deg2Rad, 0, 0, 1)
	rotMat.Rotate(rotYDeg*gglm.Deg2Rad, 0, 1, 0)
	rotMat.Rotate(rotXDeg*gglm.Deg2Rad, 1, 0, 0)

	return translationMat.Mul(rotMat.Mul(&scaleMat))
}

// SetShaderColor sets the flat object color and disables texturing.
func (m *Manager) SetShaderColor(color *gglm.Vec4) {
	m.shader.SetUnifBool(UnifUseTexture, false)
	m.shader.SetUnifVec4(UnifObjectColor, color)
}

// SetShaderTexture points the object sampler at the texture registered
// under tag and enables texturing. An unknown tag logs a warning and
// leaves texturing off so the previous object's binding can't bleed
// through.
func (m *Manager) SetShaderTexture(tag string) {
	slot := m.Textures.SlotForTag(tag)
	if slot < 0 {
		logging.WarnLog.Printf("no texture registered under tag %s, drawing untextured\n", tag)
		m.shader.SetUnifBool(UnifUseTexture, false)
		return
	}

	m.shader.SetUnifBool(UnifUseTexture, true)
	m.shader.SetUnifSampler2D(UnifObjectTexture, slot)
}

// SetTextureUVScale sets the texture coordinate multiplier.
func (m *Manager) SetTextureUVScale(uv *gglm.Vec2) {
	m.shader.SetUnifVec2(UnifUVScale, uv)
}

// SetShaderMaterial uploads the material registered under tag. Unknown
// tags log a warning and leave the previous material in place.
func (m *Manager) SetShaderMaterial(tag string) {
	mat, ok := m.Materials.Lookup(tag)
	if !ok {
		logging.WarnLog.Printf("no material registered under tag %s\n", tag)
		return
	}

	m.shader.SetUnifVec3(UnifMaterialDiffuse, &mat.DiffuseColor)
	m.shader.SetUnifVec3(UnifMaterialSpecular, &mat.SpecularColor)
	m.shader.SetUnifFloat32(UnifMaterialShininess, mat.Shininess)
}

// SetUseLighting toggles the shader between the Phong path and
// flat/unlit output.
func (m *Manager) SetUseLighting(on bool) {
	m.shader.SetUnifBool(UnifUseLighting, on)
}

// Release frees the GPU resources PrepareScene created.
func (m *Manager) Release() {
	m.Textures.Release()
}
