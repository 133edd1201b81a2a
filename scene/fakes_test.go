package scene

import (
	"errors"
	"fmt"

	"github.com/bloeys/gglm/gglm"
)

// fakeBackend stands in for the GL texture backend. Handles are handed
// out sequentially starting at 1.
type fakeBackend struct {
	nextHandle uint32
	created    []string
	failPaths  map[string]bool

	binds   []fakeBind
	deleted []uint32
}

type fakeBind struct {
	Handle uint32
	Unit   int32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{failPaths: map[string]bool{}}
}

func (f *fakeBackend) CreateTexture(path string) (uint32, error) {
	if f.failPaths[path] {
		return 0, errors.New("decode failed")
	}
	f.nextHandle++
	f.created = append(f.created, path)
	return f.nextHandle, nil
}

func (f *fakeBackend) BindTexture(handle uint32, unit int32) {
	f.binds = append(f.binds, fakeBind{Handle: handle, Unit: unit})
}

func (f *fakeBackend) DeleteTexture(handle uint32) {
	f.deleted = append(f.deleted, handle)
}

// fakeSetter records every uniform write in call order and keeps the
// latest value per uniform name.
type fakeSetter struct {
	calls []string
	last  map[string]any
}

func newFakeSetter() *fakeSetter {
	return &fakeSetter{last: map[string]any{}}
}

func (f *fakeSetter) record(name string, val any) {
	f.calls = append(f.calls, fmt.Sprintf("%s=%v", name, val))
	f.last[name] = val
}

func (f *fakeSetter) SetUnifMat4(name string, m *gglm.Mat4)      { f.record(name, *m) }
func (f *fakeSetter) SetUnifVec2(name string, v *gglm.Vec2)      { f.record(name, *v) }
func (f *fakeSetter) SetUnifVec3(name string, v *gglm.Vec3)      { f.record(name, *v) }
func (f *fakeSetter) SetUnifVec4(name string, v *gglm.Vec4)      { f.record(name, *v) }
func (f *fakeSetter) SetUnifInt32(name string, val int32)        { f.record(name, val) }
func (f *fakeSetter) SetUnifFloat32(name string, val float32)    { f.record(name, val) }
func (f *fakeSetter) SetUnifBool(name string, val bool)          { f.record(name, val) }
func (f *fakeSetter) SetUnifSampler2D(name string, slot int32)   { f.record(name, slot) }

type fakeDrawer struct {
	drawn []ShapeKind
}

func (f *fakeDrawer) DrawShape(kind ShapeKind) {
	f.drawn = append(f.drawn, kind)
}
