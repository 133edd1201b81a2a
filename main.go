package main

import (
	"fmt"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/campfire3d/campfire/assets"
	"github.com/campfire3d/campfire/camera"
	"github.com/campfire3d/campfire/engine"
	"github.com/campfire3d/campfire/input"
	"github.com/campfire3d/campfire/logging"
	"github.com/campfire3d/campfire/materials"
	"github.com/campfire3d/campfire/renderer/rend3dgl"
	"github.com/campfire3d/campfire/scene"
	"github.com/campfire3d/campfire/shapes"
	"github.com/campfire3d/campfire/timing"
	nmageimgui "github.com/campfire3d/campfire/ui/imgui"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	windowWidth  = 1280
	windowHeight = 720

	scenePath  = "./res/scenes/campfire.hcl"
	shaderPath = "./res/shaders/scene.glsl"
	modelsDir  = "./res/models"

	camMoveSpeed = 15
	camRotSpeed  = 0.5
)

type Game struct {
	Win       *engine.Window
	Rend      *rend3dgl.Rend3DGL
	ImGUIInfo nmageimgui.ImguiInfo

	Cam      camera.Camera
	SceneMat materials.Material
	Scene    *scene.Manager
	Shapes   *shapes.Set

	WinWidth  int32
	WinHeight int32

	pitch float32
	yaw   float32
}

func main() {

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	rend := rend3dgl.NewRend3DGL()
	win, err := engine.CreateOpenGLWindowCentered("Campfire", windowWidth, windowHeight, engine.WindowFlags_RESIZABLE, rend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}

	engine.SetMSAA(true)
	engine.SetVSync(true)

	game := &Game{
		Win:       win,
		Rend:      rend,
		ImGUIInfo: nmageimgui.NewImGui("./res/shaders/imgui.glsl"),
		yaw:       -90 * gglm.Deg2Rad,
	}

	engine.Run(game, win, rend, game.ImGUIInfo)
}

func (g *Game) Init() {

	var err error

	g.WinWidth, g.WinHeight = g.Win.SDLWin.GetSize()
	g.Win.EventCallbacks = append(g.Win.EventCallbacks, g.handleWindowEvents)

	g.SceneMat = materials.NewMaterial("Scene Mat", shaderPath)

	g.Shapes, err = shapes.Load(modelsDir, g.Rend, &g.SceneMat)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load primitive meshes. Err:", err)
	}

	def, err := scene.LoadDefinition(scenePath)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load scene. Err:", err)
	}

	g.Scene = scene.NewManager(&g.SceneMat, g.Shapes, assets.Backend{})
	if err := g.Scene.PrepareScene(def); err != nil {
		logging.ErrLog.Fatalln("Failed to prepare scene. Err:", err)
	}

	// Camera starts at the scene's view position looking down -Z
	camPos := def.Lighting.ViewPosition
	camForward := gglm.NewVec3(0, 0, -1)
	camWorldUp := gglm.NewVec3(0, 1, 0)
	g.Cam = camera.NewPerspective(
		&camPos,
		&camForward,
		&camWorldUp,
		0.1, 2000,
		45*gglm.Deg2Rad,
		float32(g.WinWidth)/float32(g.WinHeight),
	)

	g.updateProjView()
}

func (g *Game) handleWindowEvents(event sdl.Event) {

	switch e := event.(type) {
	case *sdl.WindowEvent:

		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {

			g.WinWidth, g.WinHeight = g.Win.SDLWin.GetSize()
			if g.WinWidth <= 0 || g.WinHeight <= 0 {
				return
			}

			g.Cam.AspectRatio = float32(g.WinWidth) / float32(g.WinHeight)
			g.Cam.Update()
			g.updateProjView()
		}
	}
}

func (g *Game) Update() {

	if input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	g.updateCameraLookAround()
	g.updateCameraPos()
	g.updateCameraZoom()

	// Specular highlights follow the live camera
	g.Scene.Lighting.ViewPosition = g.Cam.Pos

	g.showDebugWindow()
}

func (g *Game) updateCameraLookAround() {

	mouseX, mouseY := input.GetMouseMotion()
	if (mouseX == 0 && mouseY == 0) || !input.MouseDown(sdl.BUTTON_RIGHT) {
		return
	}

	const maxMouseMove = 300
	mouseX = gglm.Clamp(mouseX, -maxMouseMove, maxMouseMove)
	mouseY = gglm.Clamp(mouseY, -maxMouseMove, maxMouseMove)

	g.yaw += float32(mouseX) * camRotSpeed * timing.DT()

	g.pitch += float32(-mouseY) * camRotSpeed * timing.DT()
	if g.pitch > 1.5 {
		g.pitch = 1.5
	}

	if g.pitch < -1.5 {
		g.pitch = -1.5
	}

	g.Cam.UpdateRotation(g.pitch, g.yaw)
	g.updateProjView()
}

func (g *Game) updateCameraPos() {

	moved := false

	if input.KeyDown(sdl.K_w) {
		g.Cam.Pos.Add(g.Cam.Forward.Clone().Scale(camMoveSpeed * timing.DT()))
		moved = true
	}

	if input.KeyDown(sdl.K_s) {
		g.Cam.Pos.Add(g.Cam.Forward.Clone().Scale(-camMoveSpeed * timing.DT()))
		moved = true
	}

	if input.KeyDown(sdl.K_d) {
		cross := gglm.Cross(&g.Cam.Forward, &g.Cam.WorldUp)
		g.Cam.Pos.Add(cross.Normalize().Scale(camMoveSpeed * timing.DT()))
		moved = true
	}

	if input.KeyDown(sdl.K_a) {
		cross := gglm.Cross(&g.Cam.Forward, &g.Cam.WorldUp)
		g.Cam.Pos.Add(cross.Normalize().Scale(-camMoveSpeed * timing.DT()))
		moved = true
	}

	if moved {
		g.Cam.Update()
		g.updateProjView()
	}
}

func (g *Game) updateCameraZoom() {

	wheelY := input.GetMouseWheelYNorm()
	if wheelY == 0 {
		return
	}

	g.Cam.Fov = gglm.Clamp(g.Cam.Fov-float32(wheelY)*5*gglm.Deg2Rad, 10*gglm.Deg2Rad, 90*gglm.Deg2Rad)
	g.Cam.Update()
	g.updateProjView()
}

func (g *Game) updateProjView() {

	projViewMat := g.Cam.ProjMat.Clone().Mul(&g.Cam.ViewMat)
	g.SceneMat.SetUnifMat4(scene.UnifProjView, projViewMat)
}

func (g *Game) showDebugWindow() {

	imgui.Begin("Debug controls")

	imgui.LabelText("FPS", fmt.Sprint(timing.GetAvgFPS()))
	imgui.LabelText("Textures", fmt.Sprint(g.Scene.Textures.Count()))
	imgui.LabelText("Materials", fmt.Sprint(g.Scene.Materials.Count()))

	imgui.Spacing()
	imgui.Text("Camera")

	if imgui.DragFloat3("Cam Pos", &g.Cam.Pos.Data) {
		g.Cam.Update()
		g.updateProjView()
	}

	imgui.Spacing()
	imgui.Text("Directional Light")

	dir := &g.Scene.Lighting.Directional
	imgui.Checkbox("Dir Active", &dir.Active)
	imgui.DragFloat3("Direction", &dir.Direction.Data)
	imgui.ColorEdit3("Dir Diffuse", &dir.Diffuse.Data)
	imgui.ColorEdit3("Dir Specular", &dir.Specular.Data)

	for i := 0; i < scene.MaxPointLights; i++ {

		pl := &g.Scene.Lighting.PointLights[i]
		indexStr := fmt.Sprint(i)

		imgui.Spacing()
		imgui.Text("Point Light " + indexStr)

		imgui.Checkbox("Active##"+indexStr, &pl.Active)
		imgui.DragFloat3("Pos##"+indexStr, &pl.Position.Data)
		imgui.ColorEdit3("Ambient##"+indexStr, &pl.Ambient.Data)
		imgui.ColorEdit3("Diffuse##"+indexStr, &pl.Diffuse.Data)
		imgui.ColorEdit3("Specular##"+indexStr, &pl.Specular.Data)
		imgui.DragFloat("Linear##"+indexStr, &pl.Linear)
		imgui.DragFloat("Quadratic##"+indexStr, &pl.Quadratic)
	}

	imgui.End()
}

func (g *Game) Render() {
	g.Scene.RenderScene()
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {

	g.Scene.Release()
	g.SceneMat.Delete()
	g.Win.Destroy()
}
