package imaging

import "image"

// FitSize scales src to the largest size inside bounds that keeps the aspect
// ratio. The bound axis is matched exactly; the other one is rounded.
func FitSize(src, bounds image.Point) image.Point {
	if src.X <= 0 || src.Y <= 0 || bounds.X <= 0 || bounds.Y <= 0 {
		return image.Point{}
	}

	sw, sh := int64(src.X), int64(src.Y)
	bw, bh := int64(bounds.X), int64(bounds.Y)

	if sw*bh <= bw*sh {
		// height-bound
		w := (2*sw*bh + sh) / (2 * sh)
		return image.Pt(max(int(min(w, bw)), 1), bounds.Y)
	}
	h := (2*sh*bw + sw) / (2 * sw)
	return image.Pt(bounds.X, max(int(min(h, bh)), 1))
}
