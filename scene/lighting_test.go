package scene

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
)

func TestLightingApplyWritesFullRig(t *testing.T) {
	setter := newFakeSetter()

	l := Lighting{
		ViewPosition: gglm.NewVec3(0, 5, 15),
		Directional: DirLight{
			Direction: gglm.NewVec3(0.5, -1, 0),
			Diffuse:   gglm.NewVec3(0.4, 0.4, 0.4),
			Specular:  gglm.NewVec3(0.1, 0.1, 0.1),
			Active:    true,
		},
	}
	l.PointLights[0] = PointLight{
		Position:  gglm.NewVec3(0, 2.5, 0),
		Ambient:   gglm.NewVec3(0.4, 0.2, 0),
		Diffuse:   gglm.NewVec3(0.9, 0.5, 0),
		Specular:  gglm.NewVec3(0.3, 0.2, 0),
		Constant:  1,
		Linear:    0.09,
		Quadratic: 0.032,
		Active:    true,
	}

	l.Apply(setter)

	assert.Equal(t, gglm.NewVec3(0, 5, 15), setter.last[UnifViewPosition])
	assert.Equal(t, true, setter.last[UnifDirLightActive])
	assert.Equal(t, gglm.NewVec3(0.9, 0.5, 0), setter.last[PointLightUnif(0, "diffuse")])
	assert.Equal(t, float32(0.032), setter.last[PointLightUnif(0, "quadratic")])

	// The unused second light is still uploaded, inactive, so stale GPU
	// state can't leak through.
	assert.Equal(t, false, setter.last[PointLightUnif(1, "bActive")])
	assert.Equal(t, gglm.NewVec3(0, 0, 0), setter.last[PointLightUnif(1, "position")])
}

func TestPointLightUnifNames(t *testing.T) {
	assert.Equal(t, "pointLights[0].ambient", PointLightUnif(0, "ambient"))
	assert.Equal(t, "pointLights[1].bActive", PointLightUnif(1, "bActive"))
}
