package render

// fitMargin is the horizontal slack kept free inside a region.
const fitMargin = 4

// FitFont picks the largest size in [minSize, startSize] at which text fits in
// maxWidth minus a small margin, shrinking one pixel at a time. The canvas is left with
// the chosen font set. If nothing fits, minSize is used; if startSize is below minSize,
// startSize is used.
func FitFont(c Canvas, text string, maxWidth, startSize, minSize float64, bold bool, family FontFamily) float64 {
	if startSize < minSize {
		minSize = startSize
	}

	size := startSize
	for size > minSize {
		c.SetFont(Font{Family: family, Size: size, Bold: bold})

		if c.MeasureText(text).Width <= maxWidth-fitMargin {
			break
		}

		size = max(size-1, minSize)
	}

	c.SetFont(Font{Family: family, Size: size, Bold: bold})

	return size
}
