package contour

// Pixel is one RGB sample, 8 bits per channel.
type Pixel struct {
	R, G, B uint8
}

// Image is a W x H pixel buffer in a flat row-major slice.
type Image struct {
	W, H int
	Pix  []Pixel // flat: y*W + x
}

// NewImage allocates a zero (black) image. Dimensions must be positive.
func NewImage(w, h int) *Image {
	if w <= 0 || h <= 0 {
		panic("image dimensions must be positive")
	}
	return &Image{W: w, H: h, Pix: make([]Pixel, w*h)}
}

func (im *Image) At(x, y int) Pixel     { return im.Pix[y*im.W+x] }
func (im *Image) Set(x, y int, p Pixel) { im.Pix[y*im.W+x] = p }

// Luminance returns the integer mean of the three channels at (x, y).
func (im *Image) Luminance(x, y int) int {
	p := im.Pix[y*im.W+x]
	return (int(p.R) + int(p.G) + int(p.B)) / 3
}
