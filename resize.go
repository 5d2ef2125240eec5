package rembg

// resizePlane resamples a single-channel float32 raster from
// (srcW, srcH) to (dstW, dstH) with bilinear interpolation. Output
// pixel (x, y) samples the source at
// (x*(srcW-1)/(dstW-1), y*(srcH-1)/(dstH-1)), clamped to the source
// bounds. The same routine serves both resize directions of the
// pipeline so the coordinate mapping stays consistent.
//
// A destination dimension of 0 yields an empty plane. A source or
// destination dimension of 1 pins the corresponding coordinate to 0
// (nearest-neighbor fallback), avoiding a division by zero.
func resizePlane(src []float32, srcW, srcH, dstW, dstH int) []float32 {
	if dstW <= 0 || dstH <= 0 {
		return nil
	}
	if srcW == dstW && srcH == dstH {
		out := make([]float32, len(src))
		copy(out, src)
		return out
	}

	scaleX := planeScale(srcW, dstW)
	scaleY := planeScale(srcH, dstH)

	out := make([]float32, dstW*dstH)
	for y := 0; y < dstH; y++ {
		sy := float64(y) * scaleY
		y0 := int(sy)
		if y0 > srcH-1 {
			y0 = srcH - 1
		}
		y1 := y0 + 1
		if y1 > srcH-1 {
			y1 = srcH - 1
		}
		fy := float32(sy - float64(y0))

		row0 := y0 * srcW
		row1 := y1 * srcW
		for x := 0; x < dstW; x++ {
			sx := float64(x) * scaleX
			x0 := int(sx)
			if x0 > srcW-1 {
				x0 = srcW - 1
			}
			x1 := x0 + 1
			if x1 > srcW-1 {
				x1 = srcW - 1
			}
			fx := float32(sx - float64(x0))

			top := src[row0+x0] + (src[row0+x1]-src[row0+x0])*fx
			bottom := src[row1+x0] + (src[row1+x1]-src[row1+x0])*fx
			out[y*dstW+x] = top + (bottom-top)*fy
		}
	}
	return out
}

func planeScale(srcDim, dstDim int) float64 {
	if dstDim <= 1 || srcDim <= 1 {
		return 0
	}
	return float64(srcDim-1) / float64(dstDim-1)
}
