package camera

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/chewxy/math32"
)

type Camera struct {
	Pos     gglm.Vec3
	Forward gglm.Vec3
	WorldUp gglm.Vec3

	NearClip    float32
	FarClip     float32
	Fov         float32
	AspectRatio float32

	ViewMat gglm.Mat4
	ProjMat gglm.Mat4
}

// NewPerspective creates a camera at pos looking along forward. Fov is
// the vertical field of view in radians.
func NewPerspective(pos, forward, worldUp *gglm.Vec3, nearClip, farClip, fov, aspectRatio float32) Camera {

	cam := Camera{
		Pos:     *pos,
		Forward: *forward,
		WorldUp: *worldUp,

		NearClip:    nearClip,
		FarClip:     farClip,
		Fov:         fov,
		AspectRatio: aspectRatio,
	}

	cam.Update()
	return cam
}

// Update recomputes the view and projection matrices from the camera's
// current fields. Call after changing Pos, Forward, Fov or AspectRatio.
func (c *Camera) Update() {

	targetPos := c.Pos.Clone().Add(&c.Forward)
	c.ViewMat = gglm.LookAtRH(&c.Pos, targetPos, &c.WorldUp).Mat4
	c.ProjMat = gglm.Perspective(c.Fov, c.AspectRatio, c.NearClip, c.FarClip)
}

// UpdateRotation points the camera using pitch and yaw in radians and
// recomputes the matrices.
func (c *Camera) UpdateRotation(pitch, yaw float32) {

	c.Forward.Data[0] = math32.Cos(yaw) * math32.Cos(pitch)
	c.Forward.Data[1] = math32.Sin(pitch)
	c.Forward.Data[2] = math32.Sin(yaw) * math32.Cos(pitch)
	c.Forward.Normalize()

	c.Update()
}
