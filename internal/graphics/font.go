package graphics

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// NewFace builds a font.Face from the embedded Go Regular font at the given
// pixel size. The embedded font avoids shipping a font file next to the
// binary.
func NewFace(pixels int) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(pixels),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// RasterizeText renders a single line of text into a tightly sized alpha
// image with a small margin. The caller owns closing the face.
func RasterizeText(face font.Face, text string) (*image.Alpha, error) {
	if text == "" {
		return nil, fmt.Errorf("rasterize: empty text")
	}

	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize: text %q has no extent", text)
	}

	margin := 2
	img := image.NewAlpha(image.Rect(0, 0, width+2*margin, height+2*margin))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Opaque),
		Face: face,
		Dot:  fixed.P(margin, margin+ascent),
	}
	d.DrawString(text)
	return img, nil
}

// UploadAlpha uploads a single-channel image as a GL_RED texture and returns
// the texture id. The label shader reads the red channel as coverage.
func UploadAlpha(img *image.Alpha) uint32 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	// Tight byte alignment for single-channel upload.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return texture
}
