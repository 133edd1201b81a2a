package scene

import "strconv"

// The scene shader's parameter surface. The composer only ever writes
// uniforms named here; keeping the full set in one place is the contract
// between Go code and res/shaders/scene.glsl.
const (
	UnifModel         = "model"
	UnifProjView      = "projView"
	UnifObjectColor   = "objectColor"
	UnifObjectTexture = "objectTexture"
	UnifUseTexture    = "bUseTexture"
	UnifUseLighting   = "bUseLighting"
	UnifUVScale       = "UVscale"
	UnifViewPosition  = "viewPosition"

	UnifMaterialDiffuse   = "material.diffuseColor"
	UnifMaterialSpecular  = "material.specularColor"
	UnifMaterialShininess = "material.shininess"

	UnifDirLightDirection = "dirLight.direction"
	UnifDirLightDiffuse   = "dirLight.diffuse"
	UnifDirLightSpecular  = "dirLight.specular"
	UnifDirLightActive    = "dirLight.bActive"
)

// PointLightUnif builds the uniform name of one point light field, e.g.
// PointLightUnif(0, "ambient") == "pointLights[0].ambient".
func PointLightUnif(index int, field string) string {
	return "pointLights[" + strconv.Itoa(index) + "]." + field
}
