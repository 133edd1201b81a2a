package scene

import (
	"errors"
	"fmt"

	"github.com/campfire3d/campfire/logging"
)

const (
	// MaxTextures is the number of texture slots the registry manages.
	// A texture's slot index doubles as the texture unit it gets bound to,
	// so this must not exceed the GL implementation's unit count.
	MaxTextures = 16
)

var (
	ErrRegistryFull = errors.New("texture registry is full")
	ErrDuplicateTag = errors.New("tag already registered")
)

// TextureBackend uploads image files to the GPU and controls texture
// unit bindings. The GL implementation lives in the assets package;
// tests substitute a recording fake.
type TextureBackend interface {
	CreateTexture(path string) (handle uint32, err error)
	BindTexture(handle uint32, unit int32)
	DeleteTexture(handle uint32)
}

type loadedTexture struct {
	Tag    string
	Handle uint32
}

// TextureRegistry owns the scene's textures. Load order is significant:
// a texture's position in the registry is the texture unit BindAll
// assigns it to.
type TextureRegistry struct {
	backend  TextureBackend
	textures []loadedTexture
}

func NewTextureRegistry(backend TextureBackend) *TextureRegistry {
	return &TextureRegistry{
		backend:  backend,
		textures: make([]loadedTexture, 0, MaxTextures),
	}
}

// Load decodes and uploads the image at path and registers it under tag.
// Capacity and tag uniqueness are checked before any GPU work happens,
// so a failed Load never leaks a texture object.
func (tr *TextureRegistry) Load(path, tag string) error {
	if len(tr.textures) >= MaxTextures {
		return fmt.Errorf("loading texture %s: %w", path, ErrRegistryFull)
	}

	for i := 0; i < len(tr.textures); i++ {
		if tr.textures[i].Tag == tag {
			return fmt.Errorf("loading texture %s: tag %s: %w", path, tag, ErrDuplicateTag)
		}
	}

	handle, err := tr.backend.CreateTexture(path)
	if err != nil {
		return fmt.Errorf("loading texture %s: %w", path, err)
	}

	tr.textures = append(tr.textures, loadedTexture{Tag: tag, Handle: handle})
	return nil
}

// BindAll binds every registered texture to the texture unit matching
// its registry slot.
func (tr *TextureRegistry) BindAll() {
	for i := 0; i < len(tr.textures); i++ {
		tr.backend.BindTexture(tr.textures[i].Handle, int32(i))
	}
}

// Release destroys all registered textures. Safe to call more than once.
func (tr *TextureRegistry) Release() {
	for i := 0; i < len(tr.textures); i++ {
		tr.backend.DeleteTexture(tr.textures[i].Handle)
	}
	tr.textures = tr.textures[:0]
}

// HandleForTag returns the GPU handle registered under tag, or 0 if the
// tag is unknown.
func (tr *TextureRegistry) HandleForTag(tag string) uint32 {
	for i := 0; i < len(tr.textures); i++ {
		if tr.textures[i].Tag == tag {
			return tr.textures[i].Handle
		}
	}

	logging.WarnLog.Printf("no texture registered under tag %s\n", tag)
	return 0
}

// SlotForTag returns the texture unit tag is bound to, or -1 if the tag
// is unknown.
func (tr *TextureRegistry) SlotForTag(tag string) int32 {
	for i := 0; i < len(tr.textures); i++ {
		if tr.textures[i].Tag == tag {
			return int32(i)
		}
	}
	return -1
}

func (tr *TextureRegistry) Count() int {
	return len(tr.textures)
}
