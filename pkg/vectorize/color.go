package vectorize

import "math"

// rgbComponents splits a packed 0x00RRGGBB color into its channels.
func rgbComponents(rgb uint32) (r, g, b int) {
	r = int((rgb >> 16) & 0xFF)
	g = int((rgb >> 8) & 0xFF)
	b = int(rgb & 0xFF)
	return
}

// RGBToYUV converts a packed 24-bit RGB color to packed YUV using the
// BT.601 transform (spec §4.1). Components are stored unclamped: the
// caller's palette is assumed well-formed sRGB, matching
// original_source/main.cpp's rgb2yuv. Rounding truncates toward zero
// (math.Floor, since these results are always non-negative for in-gamut
// RGB input) rather than rounding half-up, matching the C++ prototype's
// implicit float-to-unsigned-int narrowing.
func RGBToYUV(rgb uint32) YUV {
	r, g, b := rgbComponents(rgb)
	fr, fg, fb := float64(r), float64(g), float64(b)

	y := math.Floor(0.257*fr + 0.504*fg + 0.098*fb + 16)
	u := math.Floor(-0.148*fr - 0.291*fg + 0.439*fb + 128)
	v := math.Floor(0.439*fr - 0.368*fg - 0.071*fb + 128)

	return YUV((uint32(int(y))&0xFF)<<16 | (uint32(int(u))&0xFF)<<8 | (uint32(int(v)) & 0xFF))
}

// YUVToRGB is the inverse BT.601 transform, a direct port of
// original_source/main.cpp's yuv2rgb. It is not used by the core
// pipeline (which only ever needs RGBToYUV) but is exposed for
// pkg/render, which may need to recover a representative fill color from
// an Image adapter that only carries YUV-space data.
func YUVToRGB(c YUV) uint32 {
	y, u, v := float64(c.Y()), float64(c.U()), float64(c.V())

	r := math.Floor(1.164*(y-16) + 1.596*(v-128))
	g := math.Floor(1.164*(y-16) - 0.813*(v-128) - 0.391*(u-128))
	b := math.Floor(1.164*(y-16) + 2.018*(u-128))

	return clamp8(r)<<16 | clamp8(g)<<8 | clamp8(b)
}

func clamp8(f float64) uint32 {
	switch {
	case f < 0:
		return 0
	case f > 255:
		return 255
	default:
		return uint32(f)
	}
}

// BuildYUVGrid runs S1 over the full image, converting every pixel's RGB
// value to YUV.
func BuildYUVGrid(img Image) *YUVGrid {
	w, h := img.Size()
	g := &YUVGrid{W: w, H: h, Pix: make([]YUV, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Pix[y*w+x] = RGBToYUV(img.RGBAt(x, y))
		}
	}
	return g
}
