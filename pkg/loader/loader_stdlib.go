//go:build !imagick

package loader

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("webp", "RIFF", webp.Decode, webp.DecodeConfig)
}

// loadImpl decodes path with the stdlib image registry, extended above to
// also recognize BMP and WebP. image.Decode sniffs the format from the file's
// magic bytes rather than its extension, so a mislabeled file still loads.
func loadImpl(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("loader: decode %s: %w", path, err)
	}
	return img, format, nil
}

// saveImpl encodes img using the encoder matching path's extension. WebP and
// BMP have no stdlib encoder and golang.org/x/image ships decoders only, so
// both formats fall back to PNG on save; depix only ever needs to round-trip
// its own rendered previews, not re-author arbitrary
// source formats.
func saveImpl(path string, img image.Image) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext(path) {
	case "jpg", "jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	case "gif":
		return gif.Encode(f, img, nil)
	default:
		return png.Encode(f, img)
	}
}
