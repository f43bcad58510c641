package preprocess

import "image"

// AutoOrient applies EXIF orientation to an image.Image and returns a new
// image.Image. orientation follows the EXIF spec (1..8); 1 or anything
// outside that range is treated as "already upright" and returned as-is.
func AutoOrient(img image.Image, orientation int) image.Image {
	if img == nil {
		return nil
	}
	if orientation <= 1 || orientation > 8 {
		return img
	}
	src := ToNRGBA(img)
	b := src.Bounds()
	outW, outH, srcCoord := orientationRemap(orientation, b.Dx(), b.Dy())
	if srcCoord == nil {
		return img
	}
	out := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			sx, sy := srcCoord(x, y)
			si := src.PixOffset(sx, sy)
			di := out.PixOffset(x, y)
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out
}

// orientationRemap returns the output dimensions and a function mapping an
// output pixel to its source pixel for the given EXIF orientation code,
// collapsing the flip/flop/rotate cases the teacher split into five
// separate NRGBA-to-NRGBA passes into one coordinate transform plus a
// single shared copy loop.
func orientationRemap(orientation, w, h int) (outW, outH int, srcCoord func(x, y int) (int, int)) {
	switch orientation {
	case 2: // flop: mirror horizontally
		return w, h, func(x, y int) (int, int) { return w - 1 - x, y }
	case 3: // rotate 180
		return w, h, func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case 4: // flip: mirror vertically
		return w, h, func(x, y int) (int, int) { return x, h - 1 - y }
	case 5: // transpose: rotate 90 CW then mirror horizontally
		return h, w, func(x, y int) (int, int) { return y, x }
	case 6: // rotate 90 CW
		return h, w, func(x, y int) (int, int) { return y, h - 1 - x }
	case 7: // transverse: rotate 90 CCW then mirror horizontally
		return h, w, func(x, y int) (int, int) { return w - 1 - y, h - 1 - x }
	case 8: // rotate 90 CCW
		return h, w, func(x, y int) (int, int) { return w - 1 - y, x }
	default:
		return w, h, nil
	}
}
