package scene

import (
	"strings"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// transformPoint applies a column-major 4x4 matrix to a point with w=1.
func transformPoint(m *gglm.Mat4, x, y, z float32) (float32, float32, float32) {
	in := [4]float32{x, y, z, 1}
	var out [4]float32
	for i := 0; i < 4; i++ {
		for c := 0; c < 4; c++ {
			out[i] += m.Data[c][i] * in[c]
		}
	}
	return out[0], out[1], out[2]
}

func TestModelMatrixComposition(t *testing.T) {
	// Scale by (2,1,1), rotate 90 degrees around Y, translate by (5,0,0).
	// The point (1,0,0) scales to (2,0,0), rotates to (0,0,-2), then
	// lands at (5,0,-2).
	scale := gglm.NewVec3(2, 1, 1)
	pos := gglm.NewVec3(5, 0, 0)
	model := ModelMatrix(&scale, 0, 90, 0, &pos)

	x, y, z := transformPoint(&model.Mat4, 1, 0, 0)
	assert.InDelta(t, 5, x, 1e-5)
	assert.InDelta(t, 0, y, 1e-5)
	assert.InDelta(t, -2, z, 1e-5)
}

func TestModelMatrixScaleWithoutRotation(t *testing.T) {
	scale := gglm.NewVec3(2, 1, 1)
	pos := gglm.NewVec3(0, 0, 0)
	model := ModelMatrix(&scale, 0, 0, 0, &pos)

	x, y, z := transformPoint(&model.Mat4, 1, 1, 1)
	assert.InDelta(t, 2, x, 1e-5)
	assert.InDelta(t, 1, y, 1e-5)
	assert.InDelta(t, 1, z, 1e-5)
}

func TestModelMatrixRotationOrderIsZYX(t *testing.T) {
	// Rotate 90 around Z then 90 around X (applied X first, Z last).
	// (0,1,0) rotates around X to (0,0,1), unchanged by Z.
	scale := gglm.NewVec3(1, 1, 1)
	pos := gglm.NewVec3(0, 0, 0)
	model := ModelMatrix(&scale, 90, 0, 90, &pos)

	x, y, z := transformPoint(&model.Mat4, 0, 1, 0)
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 0, y, 1e-5)
	assert.InDelta(t, 1, z, 1e-5)
}

func newTestManager() (*Manager, *fakeSetter, *fakeDrawer, *fakeBackend) {
	setter := newFakeSetter()
	drawer := &fakeDrawer{}
	backend := newFakeBackend()
	return NewManager(setter, drawer, backend), setter, drawer, backend
}

func TestPrepareSceneLoadsEverything(t *testing.T) {
	m, _, _, backend := newTestManager()

	def := &Definition{
		Textures: []TextureRef{
			{Path: "ground.jpg", Tag: "ground"},
			{Path: "bark.png", Tag: "bark"},
		},
		Materials: []ObjectMaterial{
			{Tag: "floor", Shininess: 16},
		},
		Objects: []Object{
			{Name: "ground", Shape: ShapePlane},
		},
	}

	require.NoError(t, m.PrepareScene(def))

	assert.Equal(t, 2, m.Textures.Count())
	assert.Equal(t, 1, m.Materials.Count())
	// PrepareScene binds every loaded texture to its slot.
	assert.Len(t, backend.binds, 2)
}

func TestPrepareSceneReportsAllFailures(t *testing.T) {
	m, _, _, backend := newTestManager()
	backend.failPaths["missing.png"] = true

	def := &Definition{
		Textures: []TextureRef{
			{Path: "missing.png", Tag: "missing"},
			{Path: "ok.png", Tag: "ok"},
		},
		Materials: []ObjectMaterial{
			{Tag: "wood"},
			{Tag: "wood"},
		},
	}

	err := m.PrepareScene(def)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTag)
	assert.Contains(t, err.Error(), "missing.png")

	// Loads that could succeed still did.
	assert.Equal(t, 1, m.Textures.Count())
}

func TestRenderSceneDrawsObjectsInOrder(t *testing.T) {
	m, setter, drawer, _ := newTestManager()

	require.NoError(t, m.PrepareScene(&Definition{
		Objects: []Object{
			{Name: "ground", Shape: ShapePlane, Scale: gglm.NewVec3(10, 1, 10), Color: gglm.NewVec4(1, 1, 1, 1), UVScale: gglm.NewVec2(10, 10)},
			{Name: "crate", Shape: ShapeBox, Scale: gglm.NewVec3(1, 1, 1), Color: gglm.NewVec4(1, 1, 1, 1), UVScale: gglm.NewVec2(1, 1)},
		},
	}))

	m.RenderScene()

	assert.Equal(t, []ShapeKind{ShapePlane, ShapeBox}, drawer.drawn)
	assert.Equal(t, gglm.NewVec2(10, 10), setter.last[UnifUVScale])
}

func TestRenderSceneRebindsTexturesEveryFrame(t *testing.T) {
	m, _, _, backend := newTestManager()

	require.NoError(t, m.PrepareScene(&Definition{
		Textures: []TextureRef{
			{Path: "ground.jpg", Tag: "ground"},
			{Path: "bark.jpg", Tag: "bark"},
		},
	}))
	require.Len(t, backend.binds, 2)

	// Other GL users (the UI font atlas) clobber texture unit state
	// between frames, so every frame must restore slot bindings.
	m.RenderScene()
	m.RenderScene()

	require.Len(t, backend.binds, 6)
	assert.Equal(t, fakeBind{Handle: 1, Unit: 0}, backend.binds[4])
	assert.Equal(t, fakeBind{Handle: 2, Unit: 1}, backend.binds[5])
}

func TestRenderSceneTogglesLightingForUnlitObjects(t *testing.T) {
	m, setter, _, _ := newTestManager()

	require.NoError(t, m.PrepareScene(&Definition{
		Objects: []Object{
			{Name: "sky", Shape: ShapeSphere, Unlit: true, Scale: gglm.NewVec3(1, 1, 1), Color: gglm.NewVec4(1, 1, 1, 1), UVScale: gglm.NewVec2(1, 1)},
		},
	}))

	m.RenderScene()

	var lightingCalls []string
	for _, c := range setter.calls {
		if strings.HasPrefix(c, UnifUseLighting+"=") {
			lightingCalls = append(lightingCalls, c)
		}
	}

	// On for the frame, off around the unlit draw, back on after.
	assert.Equal(t, []string{
		UnifUseLighting + "=true",
		UnifUseLighting + "=false",
		UnifUseLighting + "=true",
	}, lightingCalls)
}

func TestSetShaderTextureUnknownTagDisablesTexturing(t *testing.T) {
	m, setter, _, _ := newTestManager()

	m.SetShaderTexture("never-loaded")

	assert.Equal(t, false, setter.last[UnifUseTexture])
	_, sampledAnything := setter.last[UnifObjectTexture]
	assert.False(t, sampledAnything)
}

func TestSetShaderTextureKnownTag(t *testing.T) {
	m, setter, _, _ := newTestManager()
	require.NoError(t, m.Textures.Load("a.png", "a"))
	require.NoError(t, m.Textures.Load("b.png", "b"))

	m.SetShaderTexture("b")

	assert.Equal(t, true, setter.last[UnifUseTexture])
	assert.Equal(t, int32(1), setter.last[UnifObjectTexture])
}

func TestSetShaderColorDisablesTexturing(t *testing.T) {
	m, setter, _, _ := newTestManager()

	color := gglm.NewVec4(0.2, 0.3, 0.4, 1)
	m.SetShaderColor(&color)

	assert.Equal(t, false, setter.last[UnifUseTexture])
	assert.Equal(t, color, setter.last[UnifObjectColor])
}

func TestSetShaderMaterialUploadsValues(t *testing.T) {
	m, setter, _, _ := newTestManager()
	require.NoError(t, m.Materials.Register(ObjectMaterial{
		Tag:           "metal",
		DiffuseColor:  gglm.NewVec3(0.6, 0.6, 0.6),
		SpecularColor: gglm.NewVec3(0.9, 0.9, 0.9),
		Shininess:     64,
	}))

	m.SetShaderMaterial("metal")

	assert.Equal(t, gglm.NewVec3(0.6, 0.6, 0.6), setter.last[UnifMaterialDiffuse])
	assert.Equal(t, gglm.NewVec3(0.9, 0.9, 0.9), setter.last[UnifMaterialSpecular])
	assert.Equal(t, float32(64), setter.last[UnifMaterialShininess])
}

func TestSetShaderMaterialUnknownTagWritesNothing(t *testing.T) {
	m, setter, _, _ := newTestManager()

	m.SetShaderMaterial("nope")

	assert.Empty(t, setter.calls)
}

func TestShapeKindRoundTrip(t *testing.T) {
	for _, k := range []ShapeKind{ShapePlane, ShapeBox, ShapeCylinder, ShapeTorus, ShapeSphere} {
		got, err := ShapeKindFromString(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ShapeKindFromString("dodecahedron")
	assert.Error(t, err)
}
