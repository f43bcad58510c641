package vectorize

// fakeImage is a minimal in-memory Image, built the way the teacher's
// *_test.go files hand-construct image.NRGBA fixtures and poke Pix
// directly, rather than decoding a file.
type fakeImage struct {
	w, h int
	pix  []uint32
}

func newFakeImage(w, h int, pix []uint32) *fakeImage {
	if len(pix) != w*h {
		panic("fakeImage: pix length does not match w*h")
	}
	return &fakeImage{w: w, h: h, pix: pix}
}

func (f *fakeImage) Size() (int, int)        { return f.w, f.h }
func (f *fakeImage) RGBAt(x, y int) uint32   { return f.pix[y*f.w+x] }

const (
	colorRed   = 0xFF0000
	colorGreen = 0x00FF00
	colorBlue  = 0x0000FF
	colorWhite = 0xFFFFFF
	colorBlack = 0x000000
)
