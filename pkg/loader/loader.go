// Package loader is the bitmap I/O collaborator for depix: it turns a path on
// disk into an image.Image (and back), trying every source format a scanned
// or exported pixel-art sprite might arrive in.
//
// Two implementations exist behind a build tag. The default build is pure Go
// (stdlib PNG/JPEG/GIF plus BMP and WebP decoders from golang.org/x/image) so
// depix cross-compiles without a C toolchain. Building with -tags imagick
// swaps in an ImageMagick-backed loader (loader_imagick.go) that additionally
// accepts whatever raster formats the local ImageMagick install supports
// (TIFF, ICO, TGA, and so on) at the cost of requiring CGO and libmagickwand.
package loader

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// Load reads path from disk and decodes it into an image.Image, returning the
// detected format name ("png", "jpeg", "gif", "bmp", "webp", ...).
func Load(path string) (image.Image, string, error) {
	return loadImpl(path)
}

// Save encodes img and writes it to path, inferring the output format from
// path's extension. The default build writes jpg/jpeg and gif with their own
// encoders and every other extension as PNG; the imagick build hands the
// extension to ImageMagick and returns its error for one it does not know.
func Save(path string, img image.Image) error {
	return saveImpl(path, img)
}

func ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func createFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("loader: create %s: %w", path, err)
	}
	return f, nil
}
