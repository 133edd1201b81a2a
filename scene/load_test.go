package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSceneFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefinition(t *testing.T) {
	path := writeSceneFile(t, `
locals {
  warm_orange = [0.9, 0.5, 0.0]
}

texture "ground" {
  path = "res/textures/ground.jpg"
}

texture "bark" {
  path = "res/textures/bark.png"
}

material "metal" {
  diffuse   = [0.6, 0.6, 0.6]
  specular  = [0.9, 0.9, 0.9]
  shininess = 64
}

lighting {
  view_position = [0, 5, 15]

  dir_light {
    direction = [0.5, -1, 0]
    diffuse   = [0.4, 0.4, 0.4]
    specular  = [0.1, 0.1, 0.1]
    active    = true
  }

  point_light {
    position  = [0, 2.5, 0]
    ambient   = [0.4, 0.2, 0]
    diffuse   = local.warm_orange
    specular  = [0.3, 0.2, 0]
    constant  = 1
    linear    = 0.09
    quadratic = 0.032
    active    = true
  }
}

object "ground" {
  shape    = "plane"
  scale    = [10, 1, 10]
  material = "metal"
  texture  = "ground"
  uv_scale = [10, 10]
}

object "sky" {
  shape    = "sphere"
  position = [0, 0, 0]
  unlit    = true
}
`)

	def, err := LoadDefinition(path)
	require.NoError(t, err)

	require.Len(t, def.Textures, 2)
	assert.Equal(t, TextureRef{Path: "res/textures/ground.jpg", Tag: "ground"}, def.Textures[0])
	assert.Equal(t, TextureRef{Path: "res/textures/bark.png", Tag: "bark"}, def.Textures[1])

	require.Len(t, def.Materials, 1)
	metal := def.Materials[0]
	assert.Equal(t, "metal", metal.Tag)
	assert.Equal(t, gglm.NewVec3(0.6, 0.6, 0.6), metal.DiffuseColor)
	assert.Equal(t, gglm.NewVec3(0.9, 0.9, 0.9), metal.SpecularColor)
	assert.Equal(t, float32(64), metal.Shininess)

	assert.Equal(t, gglm.NewVec3(0, 5, 15), def.Lighting.ViewPosition)
	assert.True(t, def.Lighting.Directional.Active)
	// local.warm_orange resolved through the eval context.
	assert.Equal(t, gglm.NewVec3(0.9, 0.5, 0), def.Lighting.PointLights[0].Diffuse)
	assert.InDelta(t, 0.09, def.Lighting.PointLights[0].Linear, 1e-6)
	assert.False(t, def.Lighting.PointLights[1].Active)

	require.Len(t, def.Objects, 2)

	ground := def.Objects[0]
	assert.Equal(t, ShapePlane, ground.Shape)
	assert.Equal(t, gglm.NewVec3(10, 1, 10), ground.Scale)
	assert.Equal(t, gglm.NewVec2(10, 10), ground.UVScale)
	assert.Equal(t, "metal", ground.MaterialTag)
	assert.Equal(t, "ground", ground.TextureTag)
	assert.False(t, ground.Unlit)
	// Unset attributes take their defaults.
	assert.Equal(t, gglm.NewVec3(0, 0, 0), ground.Rotation)
	assert.Equal(t, gglm.NewVec4(1, 1, 1, 1), ground.Color)

	sky := def.Objects[1]
	assert.Equal(t, ShapeSphere, sky.Shape)
	assert.True(t, sky.Unlit)
	assert.Equal(t, gglm.NewVec3(1, 1, 1), sky.Scale)
	assert.Equal(t, gglm.NewVec2(1, 1), sky.UVScale)
	assert.Empty(t, sky.MaterialTag)
	assert.Empty(t, sky.TextureTag)
}

func TestLoadDefinitionChainedLocals(t *testing.T) {
	// Locals must resolve in source order regardless of how the parser's
	// attribute map iterates, so a local can build on an earlier one.
	path := writeSceneFile(t, `
locals {
  zz_base  = [1, 2, 3]
  my_scale = local.zz_base
  aa_pos   = local.my_scale
}

object "stack" {
  shape    = "box"
  scale    = local.my_scale
  position = local.aa_pos
}
`)

	def, err := LoadDefinition(path)
	require.NoError(t, err)

	require.Len(t, def.Objects, 1)
	assert.Equal(t, gglm.NewVec3(1, 2, 3), def.Objects[0].Scale)
	assert.Equal(t, gglm.NewVec3(1, 2, 3), def.Objects[0].Position)
}

func TestLoadDefinitionUnknownShape(t *testing.T) {
	path := writeSceneFile(t, `
object "weird" {
  shape = "dodecahedron"
}
`)

	_, err := LoadDefinition(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dodecahedron")
}

func TestLoadDefinitionWrongVectorLength(t *testing.T) {
	path := writeSceneFile(t, `
object "short" {
  shape = "box"
  scale = [1, 2]
}
`)

	_, err := LoadDefinition(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 components")
}

func TestLoadDefinitionTooManyPointLights(t *testing.T) {
	path := writeSceneFile(t, `
lighting {
  view_position = [0, 0, 0]

  point_light {
    position  = [0, 0, 0]
    ambient   = [0, 0, 0]
    diffuse   = [0, 0, 0]
    specular  = [0, 0, 0]
    constant  = 1
    linear    = 0
    quadratic = 0
  }

  point_light {
    position  = [1, 0, 0]
    ambient   = [0, 0, 0]
    diffuse   = [0, 0, 0]
    specular  = [0, 0, 0]
    constant  = 1
    linear    = 0
    quadratic = 0
  }

  point_light {
    position  = [2, 0, 0]
    ambient   = [0, 0, 0]
    diffuse   = [0, 0, 0]
    specular  = [0, 0, 0]
    constant  = 1
    linear    = 0
    quadratic = 0
  }
}
`)

	_, err := LoadDefinition(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point lights")
}

func TestLoadDefinitionMissingFile(t *testing.T) {
	_, err := LoadDefinition(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}
