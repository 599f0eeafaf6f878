package colorstring

import "math"

// rgbToHSL converts 8 bit RGB channels to hue in degrees and saturation
// and lightness as percentages.
//
// The hue is not normalized into [0, 360): a red dominated color with
// more blue than green yields a negative hue.
func rgbToHSL(r, g, b uint8) (h, s, l float64) {
	rprim := float64(r) / 255
	gprim := float64(g) / 255
	bprim := float64(b) / 255
	cmax := math.Max(rprim, math.Max(gprim, bprim))
	cmin := math.Min(rprim, math.Min(gprim, bprim))
	delta := cmax - cmin
	l = (cmax + cmin) / 2

	if delta == 0 {
		return 0, 0, l * 100
	}

	s = delta / (1 - math.Abs(2*l-1))

	// Exact comparisons; red wins ties, then green.
	switch cmax {
	case rprim:
		h = math.Mod((gprim-bprim)/delta, 6)
	case gprim:
		h = (bprim-rprim)/delta + 2
	default:
		h = (rprim-gprim)/delta + 4
	}

	return h * 60, s * 100, l * 100
}

// hslToRGB converts hue in degrees and saturation and lightness as
// percentages to RGB channels in [0, 255]. The result is not rounded.
// Hues outside [0, 360) wrap around.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	if h = math.Mod(h, 360); h < 0 {
		h += 360
	}
	hprim := h / 60
	sprim := s / 100
	lprim := l / 100
	c := (1 - math.Abs(2*lprim-1)) * sprim
	x := c * (1 - math.Abs(math.Mod(hprim, 2)-1))
	m := lprim - c/2

	var rprim, gprim, bprim float64
	switch {
	case hprim < 1:
		rprim, gprim, bprim = c, x, 0
	case hprim < 2:
		rprim, gprim, bprim = x, c, 0
	case hprim < 3:
		rprim, gprim, bprim = 0, c, x
	case hprim < 4:
		rprim, gprim, bprim = 0, x, c
	case hprim < 5:
		rprim, gprim, bprim = x, 0, c
	default:
		rprim, gprim, bprim = c, 0, x
	}

	return (rprim + m) * 255, (gprim + m) * 255, (bprim + m) * 255
}
