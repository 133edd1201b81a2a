package nmageimgui

import (
	"unsafe"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/campfire3d/campfire/materials"
	"github.com/campfire3d/campfire/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

type ImguiInfo struct {
	ImCtx *imgui.Context

	Mat        materials.Material
	VaoId      uint32
	VboId      uint32
	IndexBufId uint32
	TexId      uint32
}

func NewImGui(shaderPath string) ImguiInfo {

	imguiInfo := ImguiInfo{
		ImCtx: imgui.CreateContext(),
		Mat:   materials.NewMaterial("ImGUI Mat", shaderPath),
	}

	imIO := imgui.CurrentIO()
	imIO.SetBackendFlags(imIO.BackendFlags() | imgui.BackendFlagsRendererHasVtxOffset)

	gl.GenVertexArrays(1, &imguiInfo.VaoId)
	gl.GenBuffers(1, &imguiInfo.VboId)
	gl.GenBuffers(1, &imguiInfo.IndexBufId)
	gl.GenTextures(1, &imguiInfo.TexId)

	// Upload font atlas
	pixels, width, height, _ := imIO.Fonts().GetTextureDataAsRGBA32()

	gl.BindTexture(gl.TEXTURE_2D, imguiInfo.TexId)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(pixels))

	imIO.Fonts().SetTexID(imgui.TextureID(uintptr(imguiInfo.TexId)))

	return imguiInfo
}

func (i *ImguiInfo) FrameStart(winWidth, winHeight float32) {

	imIO := imgui.CurrentIO()
	imIO.SetDisplaySize(imgui.Vec2{X: winWidth, Y: winHeight})
	imIO.SetDeltaTime(timing.DT())

	imgui.NewFrame()
}

func (i *ImguiInfo) Render(winWidth, winHeight float32, fbWidth, fbHeight int32) {

	imgui.Render()

	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	drawData := imgui.CurrentDrawData()
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / winWidth,
		Y: float32(fbHeight) / winHeight,
	})

	// Backup state we change so the 3D pass isn't disturbed
	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	// Orthographic projection mapping window coordinates with y going down
	orthoMat := gglm.Mat4{
		Data: [4][4]float32{
			{2.0 / winWidth, 0, 0, 0},
			{0, 2.0 / -winHeight, 0, 0},
			{0, 0, -1, 0},
			{-1, 1, 0, 1},
		},
	}

	i.Mat.Bind()
	i.Mat.SetUnifInt32("Texture", 0)
	i.Mat.SetUnifMat4("ProjMtx", &orthoMat)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindSampler(0, 0)

	gl.BindVertexArray(i.VaoId)
	gl.BindBuffer(gl.ARRAY_BUFFER, i.VboId)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, i.IndexBufId)

	// ImDrawVert layout: vec2 pos, vec2 uv, u32 color
	const vertexSize = 20
	const posOffset = 0
	const uvOffset = 8
	const colOffset = 16
	const indexSize = 2

	i.Mat.EnableAttribute("Position")
	i.Mat.EnableAttribute("UV")
	i.Mat.EnableAttribute("Color")
	gl.VertexAttribPointerWithOffset(uint32(i.Mat.GetAttribLoc("Position")), 2, gl.FLOAT, false, vertexSize, posOffset)
	gl.VertexAttribPointerWithOffset(uint32(i.Mat.GetAttribLoc("UV")), 2, gl.FLOAT, false, vertexSize, uvOffset)
	gl.VertexAttribPointerWithOffset(uint32(i.Mat.GetAttribLoc("Color")), 4, gl.UNSIGNED_BYTE, true, vertexSize, colOffset)

	for _, commandList := range drawData.CommandLists() {

		vertexBuffer, vertexBufferSize := commandList.GetVertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := commandList.GetIndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		for _, cmd := range commandList.Commands() {

			if cmd.HasUserCallback() {
				cmd.CallUserCallback(commandList)
				continue
			}

			clipRect := cmd.ClipRect()
			gl.Scissor(int32(clipRect.X), fbHeight-int32(clipRect.W), int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))

			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureId()))
			gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount()), gl.UNSIGNED_SHORT, uintptr(cmd.IdxOffset()*indexSize), int32(cmd.VtxOffset()))
		}
	}

	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	gl.BindVertexArray(0)
}

// AddFontTTF adds a ttf font with the given size to the current imgui context.
func (i *ImguiInfo) AddFontTTF(fontPath string, fontSize float32) imgui.Font {

	imIO := imgui.CurrentIO()
	font := imIO.Fonts().AddFontFromFileTTF(fontPath, fontSize)

	pixels, width, height, _ := imIO.Fonts().GetTextureDataAsRGBA32()

	gl.BindTexture(gl.TEXTURE_2D, i.TexId)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(pixels))

	return font
}

func SdlScancodeToImGuiKey(scancode sdl.Scancode) imgui.Key {

	switch scancode {

	case sdl.SCANCODE_TAB:
		return imgui.KeyTab
	case sdl.SCANCODE_LEFT:
		return imgui.KeyLeftArrow
	case sdl.SCANCODE_RIGHT:
		return imgui.KeyRightArrow
	case sdl.SCANCODE_UP:
		return imgui.KeyUpArrow
	case sdl.SCANCODE_DOWN:
		return imgui.KeyDownArrow
	case sdl.SCANCODE_PAGEUP:
		return imgui.KeyPageUp
	case sdl.SCANCODE_PAGEDOWN:
		return imgui.KeyPageDown
	case sdl.SCANCODE_HOME:
		return imgui.KeyHome
	case sdl.SCANCODE_END:
		return imgui.KeyEnd
	case sdl.SCANCODE_INSERT:
		return imgui.KeyInsert
	case sdl.SCANCODE_DELETE:
		return imgui.KeyDelete
	case sdl.SCANCODE_BACKSPACE:
		return imgui.KeyBackspace
	case sdl.SCANCODE_SPACE:
		return imgui.KeySpace
	case sdl.SCANCODE_RETURN:
		return imgui.KeyEnter
	case sdl.SCANCODE_ESCAPE:
		return imgui.KeyEscape
	case sdl.SCANCODE_APOSTROPHE:
		return imgui.KeyApostrophe
	case sdl.SCANCODE_COMMA:
		return imgui.KeyComma
	case sdl.SCANCODE_MINUS:
		return imgui.KeyMinus
	case sdl.SCANCODE_PERIOD:
		return imgui.KeyPeriod
	case sdl.SCANCODE_SLASH:
		return imgui.KeySlash
	case sdl.SCANCODE_SEMICOLON:
		return imgui.KeySemicolon
	case sdl.SCANCODE_EQUALS:
		return imgui.KeyEqual
	case sdl.SCANCODE_LEFTBRACKET:
		return imgui.KeyLeftBracket
	case sdl.SCANCODE_BACKSLASH:
		return imgui.KeyBackslash
	case sdl.SCANCODE_RIGHTBRACKET:
		return imgui.KeyRightBracket
	case sdl.SCANCODE_GRAVE:
		return imgui.KeyGraveAccent
	case sdl.SCANCODE_CAPSLOCK:
		return imgui.KeyCapsLock
	case sdl.SCANCODE_SCROLLLOCK:
		return imgui.KeyScrollLock
	case sdl.SCANCODE_NUMLOCKCLEAR:
		return imgui.KeyNumLock
	case sdl.SCANCODE_PRINTSCREEN:
		return imgui.KeyPrintScreen
	case sdl.SCANCODE_PAUSE:
		return imgui.KeyPause
	case sdl.SCANCODE_KP_0:
		return imgui.KeyKeypad0
	case sdl.SCANCODE_KP_1:
		return imgui.KeyKeypad1
	case sdl.SCANCODE_KP_2:
		return imgui.KeyKeypad2
	case sdl.SCANCODE_KP_3:
		return imgui.KeyKeypad3
	case sdl.SCANCODE_KP_4:
		return imgui.KeyKeypad4
	case sdl.SCANCODE_KP_5:
		return imgui.KeyKeypad5
	case sdl.SCANCODE_KP_6:
		return imgui.KeyKeypad6
	case sdl.SCANCODE_KP_7:
		return imgui.KeyKeypad7
	case sdl.SCANCODE_KP_8:
		return imgui.KeyKeypad8
	case sdl.SCANCODE_KP_9:
		return imgui.KeyKeypad9
	case sdl.SCANCODE_KP_PERIOD:
		return imgui.KeyKeypadDecimal
	case sdl.SCANCODE_KP_DIVIDE:
		return imgui.KeyKeypadDivide
	case sdl.SCANCODE_KP_MULTIPLY:
		return imgui.KeyKeypadMultiply
	case sdl.SCANCODE_KP_MINUS:
		return imgui.KeyKeypadSubtract
	case sdl.SCANCODE_KP_PLUS:
		return imgui.KeyKeypadAdd
	case sdl.SCANCODE_KP_ENTER:
		return imgui.KeyKeypadEnter
	case sdl.SCANCODE_KP_EQUALS:
		return imgui.KeyKeypadEqual
	case sdl.SCANCODE_LCTRL:
		return imgui.KeyLeftCtrl
	case sdl.SCANCODE_LSHIFT:
		return imgui.KeyLeftShift
	case sdl.SCANCODE_LALT:
		return imgui.KeyLeftAlt
	case sdl.SCANCODE_LGUI:
		return imgui.KeyLeftSuper
	case sdl.SCANCODE_RCTRL:
		return imgui.KeyRightCtrl
	case sdl.SCANCODE_RSHIFT:
		return imgui.KeyRightShift
	case sdl.SCANCODE_RALT:
		return imgui.KeyRightAlt
	case sdl.SCANCODE_RGUI:
		return imgui.KeyRightSuper
	case sdl.SCANCODE_APPLICATION:
		return imgui.KeyMenu
	case sdl.SCANCODE_0:
		return imgui.Key0
	case sdl.SCANCODE_1:
		return imgui.Key1
	case sdl.SCANCODE_2:
		return imgui.Key2
	case sdl.SCANCODE_3:
		return imgui.Key3
	case sdl.SCANCODE_4:
		return imgui.Key4
	case sdl.SCANCODE_5:
		return imgui.Key5
	case sdl.SCANCODE_6:
		return imgui.Key6
	case sdl.SCANCODE_7:
		return imgui.Key7
	case sdl.SCANCODE_8:
		return imgui.Key8
	case sdl.SCANCODE_9:
		return imgui.Key9
	case sdl.SCANCODE_A:
		return imgui.KeyA
	case sdl.SCANCODE_B:
		return imgui.KeyB
	case sdl.SCANCODE_C:
		return imgui.KeyC
	case sdl.SCANCODE_D:
		return imgui.KeyD
	case sdl.SCANCODE_E:
		return imgui.KeyE
	case sdl.SCANCODE_F:
		return imgui.KeyF
	case sdl.SCANCODE_G:
		return imgui.KeyG
	case sdl.SCANCODE_H:
		return imgui.KeyH
	case sdl.SCANCODE_I:
		return imgui.KeyI
	case sdl.SCANCODE_J:
		return imgui.KeyJ
	case sdl.SCANCODE_K:
		return imgui.KeyK
	case sdl.SCANCODE_L:
		return imgui.KeyL
	case sdl.SCANCODE_M:
		return imgui.KeyM
	case sdl.SCANCODE_N:
		return imgui.KeyN
	case sdl.SCANCODE_O:
		return imgui.KeyO
	case sdl.SCANCODE_P:
		return imgui.KeyP
	case sdl.SCANCODE_Q:
		return imgui.KeyQ
	case sdl.SCANCODE_R:
		return imgui.KeyR
	case sdl.SCANCODE_S:
		return imgui.KeyS
	case sdl.SCANCODE_T:
		return imgui.KeyT
	case sdl.SCANCODE_U:
		return imgui.KeyU
	case sdl.SCANCODE_V:
		return imgui.KeyV
	case sdl.SCANCODE_W:
		return imgui.KeyW
	case sdl.SCANCODE_X:
		return imgui.KeyX
	case sdl.SCANCODE_Y:
		return imgui.KeyY
	case sdl.SCANCODE_Z:
		return imgui.KeyZ
	case sdl.SCANCODE_F1:
		return imgui.KeyF1
	case sdl.SCANCODE_F2:
		return imgui.KeyF2
	case sdl.SCANCODE_F3:
		return imgui.KeyF3
	case sdl.SCANCODE_F4:
		return imgui.KeyF4
	case sdl.SCANCODE_F5:
		return imgui.KeyF5
	case sdl.SCANCODE_F6:
		return imgui.KeyF6
	case sdl.SCANCODE_F7:
		return imgui.KeyF7
	case sdl.SCANCODE_F8:
		return imgui.KeyF8
	case sdl.SCANCODE_F9:
		return imgui.KeyF9
	case sdl.SCANCODE_F10:
		return imgui.KeyF10
	case sdl.SCANCODE_F11:
		return imgui.KeyF11
	case sdl.SCANCODE_F12:
		return imgui.KeyF12
	}

	return imgui.KeyNone
}
