package preprocess

import (
	"errors"
	"image"
	"image/draw"
	"math"
)

var errNilImage = errors.New("preprocess: nil image")

// Report summarizes what Prepare changed, so a caller can print a status
// line the way the teacher's filter commands printed "Applied %s".
type Report struct {
	Oriented     bool
	TrimmedFrom  image.Rectangle
	TrimmedTo    image.Rectangle
	SourceColors int
	PosterizeToN int
}

// ToNRGBA converts any image.Image to *image.NRGBA, normalized to bounds
// starting at (0,0) so downstream pixel math never has to carry an offset.
func ToNRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}

// CloneNRGBA returns a copy of src.
func CloneNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := image.NewNRGBA(src.Rect)
	copy(out.Pix, src.Pix)
	return out
}

func clampFloatToUint8(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// quantizeChannel rounds a channel value to the nearest multiple of step,
// clamped to 0..255.
func quantizeChannel(v uint8, step float64) uint8 {
	return uint8(clampFloatToUint8(math.Round(float64(v)/step) * step))
}

// Posterize reduces color levels per channel to `levels`. levels below 2
// is treated as "no change" rather than collapsing to a single shade,
// since a pixel-art sprite posterized to 1 level is just a solid square.
func Posterize(src *image.NRGBA, levels int) *image.NRGBA {
	if src == nil {
		return nil
	}
	if levels < 2 {
		return CloneNRGBA(src)
	}
	out := image.NewNRGBA(src.Rect)
	step := 255.0 / float64(levels-1)
	for i := 0; i+3 < len(src.Pix); i += 4 {
		out.Pix[i+0] = quantizeChannel(src.Pix[i+0], step)
		out.Pix[i+1] = quantizeChannel(src.Pix[i+1], step)
		out.Pix[i+2] = quantizeChannel(src.Pix[i+2], step)
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}

// countPalette returns the number of distinct RGBA colors in src, capped
// at capAt+1 (callers only care whether the count is "small" or "too big
// to bother capping", not the exact count of a million-color photo).
func countPalette(src *image.NRGBA, capAt int) int {
	seen := make(map[uint32]struct{}, 256)
	for i := 0; i+3 < len(src.Pix); i += 4 {
		key := uint32(src.Pix[i+0])<<24 | uint32(src.Pix[i+1])<<16 | uint32(src.Pix[i+2])<<8 | uint32(src.Pix[i+3])
		seen[key] = struct{}{}
		if len(seen) > capAt {
			return len(seen)
		}
	}
	return len(seen)
}

// paletteLevelsFor derives a per-channel posterize level count from the
// image's existing palette size: an indexed sprite already quantized to,
// say, 16 colors should not be posterized further, while a dithered or
// anti-aliased export with thousands of colors benefits from collapsing
// toward maxLevels per channel before S1's similarity graph runs. The
// cube root approximates "levels per channel" from "total distinct colors"
// assuming a roughly even RGB spread, clamped to the [2,maxLevels] band.
func paletteLevelsFor(colorCount, maxLevels int) int {
	if colorCount <= 0 {
		return maxLevels
	}
	levels := int(math.Ceil(math.Cbrt(float64(colorCount))))
	if levels < 2 {
		levels = 2
	}
	if levels > maxLevels {
		levels = maxLevels
	}
	return levels
}

// Trim removes uniform border regions matching the top-left pixel color
// within a fuzz tolerance. fuzz is a Euclidean RGB distance on the 0..255
// scale. Unlike a general photo-editor trim, the returned rectangle is
// reported back in Report so callers can tell the vectorizer ran on a
// cropped sub-grid rather than the original pixel dimensions.
func Trim(src *image.NRGBA, fuzz float64) (*image.NRGBA, image.Rectangle) {
	if src == nil {
		return nil, image.Rectangle{}
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return CloneNRGBA(src), b
	}

	refo := src.PixOffset(b.Min.X, b.Min.Y)
	refR := float64(src.Pix[refo+0])
	refG := float64(src.Pix[refo+1])
	refB := float64(src.Pix[refo+2])
	fuzzSq := fuzz * fuzz

	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			dx := float64(src.Pix[i+0]) - refR
			dy := float64(src.Pix[i+1]) - refG
			dz := float64(src.Pix[i+2]) - refB
			if dx*dx+dy*dy+dz*dz > fuzzSq {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if maxX < minX || maxY < minY {
		return CloneNRGBA(src), b
	}

	rect := image.Rect(minX, minY, maxX+1, maxY+1)
	out := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), src, rect.Min, draw.Src)
	return out, rect
}

// Prepare runs the automatic normalization pass spec.md's similarity graph
// (S1/S2) expects a grid of exact pixel colors to already be: EXIF-oriented
// upright, trimmed of any uniform letterbox/canvas border, and with any
// anti-aliasing/dithering noise collapsed back toward a small palette. It
// is invoked once per image by the CLI's vectorize command rather than
// left as a manually dispatched filter, so the sequencing it exists for
// actually happens.
//
// maxPaletteSize bounds how aggressively Posterize quantizes; pass 0 to
// skip palette-aware posterization entirely (e.g. when the source is
// already a clean indexed sprite).
func Prepare(img image.Image, orientation int, trimFuzz float64, maxPaletteSize int) (*image.NRGBA, Report, error) {
	if img == nil {
		return nil, Report{}, errNilImage
	}
	var rep Report

	oriented := AutoOrient(img, orientation)
	rep.Oriented = orientation > 1 && orientation <= 8

	nrgba := ToNRGBA(oriented)

	trimmed, trimRect := Trim(nrgba, trimFuzz)
	rep.TrimmedFrom = nrgba.Bounds()
	rep.TrimmedTo = trimRect

	if maxPaletteSize <= 0 {
		return trimmed, rep, nil
	}

	colors := countPalette(trimmed, maxPaletteSize*maxPaletteSize*maxPaletteSize)
	rep.SourceColors = colors
	if colors <= maxPaletteSize {
		return trimmed, rep, nil
	}
	levels := paletteLevelsFor(colors, maxPaletteSize)
	rep.PosterizeToN = levels
	return Posterize(trimmed, levels), rep, nil
}
