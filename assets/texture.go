package assets

import (
	"fmt"

	"github.com/campfire3d/campfire/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Texture struct {
	TexID  uint32
	Width  int32
	Height int32
}

// LoadTexture2D decodes the image at path and uploads it as a mipmapped
// 2D texture. Images are flipped vertically on decode so their UVs
// follow GL conventions.
func LoadTexture2D(path string) (Texture, error) {
	img, err := DecodeImage(path, true)
	if err != nil {
		return Texture{}, err
	}
	return UploadTexture2D(img)
}

// UploadTexture2D creates a GL texture from decoded pixel data. The
// texture repeats in both directions and minifies through mipmaps.
func UploadTexture2D(img *Image) (Texture, error) {
	var internalFormat int32
	var format uint32
	switch img.Channels {
	case 3:
		internalFormat = gl.RGB8
		format = gl.RGB
	case 4:
		internalFormat = gl.RGBA8
		format = gl.RGBA
	default:
		return Texture{}, fmt.Errorf("%d channels: %w", img.Channels, ErrUnsupportedChannels)
	}

	tex := Texture{Width: int32(img.Width), Height: int32(img.Height)}
	gl.GenTextures(1, &tex.TexID)
	gl.BindTexture(gl.TEXTURE_2D, tex.TexID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// 3-channel rows aren't 4-byte aligned for every width.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, tex.Width, tex.Height, 0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}

// Backend is the GL implementation of the texture operations the scene
// composer needs.
type Backend struct {
}

var _ scene.TextureBackend = Backend{}

func (Backend) CreateTexture(path string) (uint32, error) {
	tex, err := LoadTexture2D(path)
	if err != nil {
		return 0, err
	}
	return tex.TexID, nil
}

func (Backend) BindTexture(handle uint32, unit int32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0) + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (Backend) DeleteTexture(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
