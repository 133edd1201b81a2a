package camera

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
)

func TestNewPerspectiveComputesMatrices(t *testing.T) {
	pos := gglm.NewVec3(0, 5, 15)
	forward := gglm.NewVec3(0, 0, -1)
	up := gglm.NewVec3(0, 1, 0)

	cam := NewPerspective(&pos, &forward, &up, 0.1, 2000, 45*gglm.Deg2Rad, 16.0/9)

	wantProj := gglm.Perspective(45*gglm.Deg2Rad, 16.0/9, 0.1, 2000)
	assert.Equal(t, wantProj, cam.ProjMat)

	target := pos.Clone().Add(&forward)
	wantView := gglm.LookAtRH(&pos, target, &up).Mat4
	assert.Equal(t, wantView, cam.ViewMat)
}

func TestUpdateRotationPointsForward(t *testing.T) {
	pos := gglm.NewVec3(0, 0, 0)
	forward := gglm.NewVec3(0, 0, -1)
	up := gglm.NewVec3(0, 1, 0)
	cam := NewPerspective(&pos, &forward, &up, 0.1, 100, 45*gglm.Deg2Rad, 1)

	// Yaw of -90 degrees with zero pitch looks down -Z.
	cam.UpdateRotation(0, -90*gglm.Deg2Rad)

	assert.InDelta(t, 0, cam.Forward.X(), 1e-5)
	assert.InDelta(t, 0, cam.Forward.Y(), 1e-5)
	assert.InDelta(t, -1, cam.Forward.Z(), 1e-5)

	// Matrices track the new forward.
	target := cam.Pos.Clone().Add(&cam.Forward)
	wantView := gglm.LookAtRH(&cam.Pos, target, &cam.WorldUp).Mat4
	assert.Equal(t, wantView, cam.ViewMat)
}
