package cli

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/Fepozopo/depix/pkg/preprocess"
	"github.com/Fepozopo/depix/pkg/render"
	"github.com/Fepozopo/depix/pkg/vectorize"
)

// stdImageAdapter adapts a stdlib image.Image to vectorize.Image.
type stdImageAdapter struct {
	img image.Image
}

func (a stdImageAdapter) Size() (w, h int) {
	b := a.img.Bounds()
	return b.Dx(), b.Dy()
}

func (a stdImageAdapter) RGBAt(x, y int) uint32 {
	b := a.img.Bounds()
	r, g, bl, _ := a.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(bl>>8)
}

// orientationOf returns the EXIF orientation for a JPEG at path, or 1
// ("upright, no-op") for any other format or read failure - Prepare
// treats 1 as "leave as-is" so this never needs to be an error return.
func orientationOf(path string) int {
	if path == "" {
		return 1
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return 1
	}
	o, err := extractJPEGOrientation(b)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}

// runVectorize normalizes cur via preprocess.Prepare, runs the S1-S6
// pipeline over the result, prints the resulting stats, and offers to
// save a rasterized preview of the stitched curves.
func runVectorize(cur image.Image, currentImagePath string) {
	if cur == nil {
		fmt.Println("No image loaded. Press 'o' to open an image first.")
		return
	}

	prepared, rep, err := preprocess.Prepare(cur, orientationOf(currentImagePath), 8, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prepare failed: %v\n", err)
		return
	}
	if rep.TrimmedTo != rep.TrimmedFrom {
		fmt.Printf("Trimmed border: %v -> %v\n", rep.TrimmedFrom, rep.TrimmedTo)
	}
	if rep.PosterizeToN > 0 {
		fmt.Printf("Posterized %d source colors down to %d levels/channel\n", rep.SourceColors, rep.PosterizeToN)
	}

	adapter := stdImageAdapter{img: prepared}
	curves, stats, err := vectorize.Vectorize(adapter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vectorize failed: %v\n", err)
		return
	}
	fmt.Printf("Vectorized: %d pixels, %d visible edges, %d closed curves, %d open curves\n",
		stats.Pixels, stats.VisibleEdges, stats.ClosedCurves, stats.OpenCurves)

	w, h := adapter.Size()
	preview, err := render.Preview(curves, w, h, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	if err != nil {
		fmt.Fprintf(os.Stderr, "preview render failed: %v\n", err)
		return
	}
	_ = PreviewImage(preview, "png")

	out, _ := PromptLine("Save the rendered preview? Enter output filename (leave empty to skip): ")
	if out == "" {
		return
	}
	if err := SaveImage(out, preview); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write preview: %v\n", err)
		return
	}
	fmt.Printf("Saved preview to %s\n", out)
}
