package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/Fepozopo/depix/pkg/vectorize"
)

// Scale is the number of destination pixels per unit of curve-space
// coordinate. Curve coordinates already live in a space 4x the size of the
// source image (see vectorize.globalPoint), so Scale=1 maps one curve-space
// unit to one destination pixel and yields a preview 4x the source image's
// width and height.
const Scale = 1.0

// Preview rasterizes a set of stitched curves into a flat-shaded raster
// image for terminal/file preview. Each curve is filled with fillColor
// using the nonzero winding rule, with straight segments between its
// points. Open curves are not stroked: they are closed by a straight
// segment back to their first point and filled like closed ones.
func Preview(curves []vectorize.Curve, srcW, srcH int, fillColor color.NRGBA) (*image.NRGBA, error) {
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("invalid preview dimensions: %dx%d", srcW, srcH)
	}
	outW := int(float64(srcW) * 4 * Scale)
	outH := int(float64(srcH) * 4 * Scale)
	if outW <= 0 || outH <= 0 {
		return nil, fmt.Errorf("scaled preview dimensions are empty")
	}

	out := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, c := range curves {
		if len(c.Points) < 2 {
			continue
		}
		r := vector.NewRasterizer(outW, outH)
		p0 := c.Points[0]
		r.MoveTo(float32(p0.X)*float32(Scale), float32(p0.Y)*float32(Scale))
		for _, p := range c.Points[1:] {
			r.LineTo(float32(p.X)*float32(Scale), float32(p.Y)*float32(Scale))
		}
		r.ClosePath()
		src := image.NewUniform(fillColor)
		r.Draw(out, out.Bounds(), src, image.Point{})
	}
	return out, nil
}
