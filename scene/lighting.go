package scene

import "github.com/bloeys/gglm/gglm"

// MaxPointLights matches the pointLights array size in the scene shader.
const MaxPointLights = 2

type DirLight struct {
	Direction gglm.Vec3
	Diffuse   gglm.Vec3
	Specular  gglm.Vec3
	Active    bool
}

type PointLight struct {
	Position gglm.Vec3
	Ambient  gglm.Vec3
	Diffuse  gglm.Vec3
	Specular gglm.Vec3

	// Attenuation factors. Intensity falls off as
	// 1 / (constant + linear*d + quadratic*d^2).
	Constant  float32
	Linear    float32
	Quadratic float32

	Active bool
}

// Lighting is the scene's full light rig. Inactive lights are still
// uploaded so stale GPU state from a previous frame can't leak through.
type Lighting struct {
	ViewPosition gglm.Vec3
	Directional  DirLight
	PointLights  [MaxPointLights]PointLight
}

// Apply writes the entire rig to the shader.
func (l *Lighting) Apply(us UniformSetter) {
	us.SetUnifVec3(UnifViewPosition, &l.ViewPosition)

	us.SetUnifVec3(UnifDirLightDirection, &l.Directional.Direction)
	us.SetUnifVec3(UnifDirLightDiffuse, &l.Directional.Diffuse)
	us.SetUnifVec3(UnifDirLightSpecular, &l.Directional.Specular)
	us.SetUnifBool(UnifDirLightActive, l.Directional.Active)

	for i := 0; i < MaxPointLights; i++ {
		p := &l.PointLights[i]
		us.SetUnifVec3(PointLightUnif(i, "position"), &p.Position)
		us.SetUnifVec3(PointLightUnif(i, "ambient"), &p.Ambient)
		us.SetUnifVec3(PointLightUnif(i, "diffuse"), &p.Diffuse)
		us.SetUnifVec3(PointLightUnif(i, "specular"), &p.Specular)
		us.SetUnifFloat32(PointLightUnif(i, "constant"), p.Constant)
		us.SetUnifFloat32(PointLightUnif(i, "linear"), p.Linear)
		us.SetUnifFloat32(PointLightUnif(i, "quadratic"), p.Quadratic)
		us.SetUnifBool(PointLightUnif(i, "bActive"), p.Active)
	}
}
