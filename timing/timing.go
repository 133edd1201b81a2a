// The timing package tracks per-frame delta time and a smoothed FPS figure.
// FrameStarted/FrameEnded must bracket each frame of the main loop.
package timing

import "time"

var (
	frameStartTime time.Time

	// dt of the last finished frame, in seconds
	dt float32 = 1.0 / 60

	avgFps       float32 = 60
	framesInSec  int
	secondElapse float32
)

func Init() {
	frameStartTime = time.Now()
}

func FrameStarted() {
	frameStartTime = time.Now()
}

func FrameEnded() {

	dt = float32(time.Since(frameStartTime).Seconds())

	secondElapse += dt
	framesInSec++

	if secondElapse >= 1 {
		avgFps = float32(framesInSec) / secondElapse
		secondElapse = 0
		framesInSec = 0
	}
}

// DT returns the duration of the last frame in seconds
func DT() float32 {
	return dt
}

// GetAvgFPS returns the frame rate averaged over the last second
func GetAvgFPS() float32 {
	return avgFps
}
