package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"runtime"

	// Register the decoders for the formats scene files reference.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/mandykoh/prism"
)

// ErrUnsupportedChannels is returned for source images that carry
// neither 3 nor 4 color channels (e.g. grayscale or CMYK).
var ErrUnsupportedChannels = errors.New("image must have 3 or 4 color channels")

// Image is decoded pixel data ready for GPU upload. Pix is tightly
// packed RGB or RGBA depending on Channels.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// DecodeImage reads and decodes the image file at path. With
// flipVertically set the rows are reversed so the first pixel is the
// bottom-left one, matching GL texture coordinates.
func DecodeImage(path string, flipVertically bool) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}

	channels, err := channelCount(src)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", path, err)
	}

	nrgba := prism.ConvertImageToNRGBA(src, runtime.NumCPU())
	if flipVertically {
		flipNRGBA(nrgba)
	}

	img := &Image{
		Width:    nrgba.Rect.Dx(),
		Height:   nrgba.Rect.Dy(),
		Channels: channels,
	}

	if channels == 4 {
		img.Pix = nrgba.Pix
	} else {
		img.Pix = stripAlpha(nrgba.Pix)
	}

	return img, nil
}

// channelCount maps the decoded image type to the channel count of the
// source format. JPEGs decode to YCbCr and have no alpha, everything
// with an alpha channel keeps it.
func channelCount(img image.Image) (int, error) {
	switch img.(type) {
	case *image.YCbCr:
		return 3, nil
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA, *image.Paletted:
		return 4, nil
	default:
		return 0, ErrUnsupportedChannels
	}
}

func flipNRGBA(img *image.NRGBA) {
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	height := img.Rect.Dy()

	for y := 0; y < height/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(height-1-y)*img.Stride : (height-1-y)*img.Stride+rowLen]

		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

func stripAlpha(rgba []byte) []byte {
	rgb := make([]byte, 0, len(rgba)/4*3)
	for i := 0; i < len(rgba); i += 4 {
		rgb = append(rgb, rgba[i], rgba[i+1], rgba[i+2])
	}
	return rgb
}
