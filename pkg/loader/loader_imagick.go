//go:build imagick

package loader

import (
	"fmt"
	"image"
	"sync"

	"gopkg.in/gographics/imagick.v3/imagick"
)

var imagickOnce sync.Once

func ensureImagick() {
	imagickOnce.Do(imagick.Initialize)
}

// loadImpl decodes path through ImageMagick, which recognizes whatever raster
// formats the local libmagickwand build was compiled with support for (TIFF,
// ICO, TGA, PSD, and the usual PNG/JPEG/GIF/BMP/WebP set) rather than just the
// handful golang.org/x/image ships decoders for.
func loadImpl(path string) (image.Image, string, error) {
	ensureImagick()

	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	if err := mw.ReadImage(path); err != nil {
		return nil, "", fmt.Errorf("loader: imagick read %s: %w", path, err)
	}

	w := int(mw.GetImageWidth())
	h := int(mw.GetImageHeight())
	pix, err := mw.ExportImagePixels(0, 0, uint(w), uint(h), "RGBA", imagick.PIXEL_CHAR)
	if err != nil {
		return nil, "", fmt.Errorf("loader: imagick export pixels: %w", err)
	}
	bytes, ok := pix.([]byte)
	if !ok || len(bytes) != w*h*4 {
		return nil, "", fmt.Errorf("loader: unexpected pixel buffer from imagick for %s", path)
	}

	img := &image.NRGBA{Pix: bytes, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	return img, mw.GetImageFormat(), nil
}

// saveImpl encodes img through ImageMagick using the format ImageMagick
// infers from path's extension.
func saveImpl(path string, img image.Image) error {
	ensureImagick()

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	nrgba := toNRGBA(img)

	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	if err := mw.ConstituteImage(uint(w), uint(h), "RGBA", imagick.PIXEL_CHAR, nrgba.Pix); err != nil {
		return fmt.Errorf("loader: imagick constitute image: %w", err)
	}
	if e := ext(path); e != "" {
		if err := mw.SetImageFormat(e); err != nil {
			return fmt.Errorf("loader: imagick set format %s: %w", e, err)
		}
	}
	if err := mw.WriteImage(path); err != nil {
		return fmt.Errorf("loader: imagick write %s: %w", path, err)
	}
	return nil
}

// toNRGBA returns img as *image.NRGBA, converting only if it isn't one
// already, since ExportImagePixels/ConstituteImage both need tightly packed
// RGBA bytes with no alpha premultiplication.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
