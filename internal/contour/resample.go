package contour

import "math"

// Resampler produces the pixel at normalized coordinates (u, v) in [0, 1] of
// a resampled view of src. It must be pure and deterministic: the rescale
// stage calls it concurrently and the output must not depend on how the
// pixel range was partitioned.
type Resampler func(src *Image, u, v float64) Pixel

// SampleBicubic interpolates src at (u, v) with a Catmull-Rom kernel over
// the 4x4 neighborhood, clamping taps at the image edge. At exact source
// pixel coordinates it reproduces the source pixel.
func SampleBicubic(src *Image, u, v float64) Pixel {
	fx := u * float64(src.W-1)
	fy := v * float64(src.H-1)
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	// Horizontal pass per tap row, then a vertical pass per channel.
	var rows [4][3]float64
	for m := 0; m < 4; m++ {
		y := clampi(y0-1+m, src.H-1)
		var taps [4]Pixel
		for n := 0; n < 4; n++ {
			taps[n] = src.At(clampi(x0-1+n, src.W-1), y)
		}
		rows[m][0] = catmullRom(float64(taps[0].R), float64(taps[1].R), float64(taps[2].R), float64(taps[3].R), tx)
		rows[m][1] = catmullRom(float64(taps[0].G), float64(taps[1].G), float64(taps[2].G), float64(taps[3].G), tx)
		rows[m][2] = catmullRom(float64(taps[0].B), float64(taps[1].B), float64(taps[2].B), float64(taps[3].B), tx)
	}
	return Pixel{
		R: clampByte(catmullRom(rows[0][0], rows[1][0], rows[2][0], rows[3][0], ty)),
		G: clampByte(catmullRom(rows[0][1], rows[1][1], rows[2][1], rows[3][1], ty)),
		B: clampByte(catmullRom(rows[0][2], rows[1][2], rows[2][2], rows[3][2], ty)),
	}
}

// catmullRom evaluates the cubic through p1 (t=0) and p2 (t=1) with p0 and
// p3 as outer tangent taps.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(p2-p0)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(3*p1-3*p2+p3-p0)*t3)
}

func clampi(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

func clampByte(v float64) uint8 {
	x := math.Round(v)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
