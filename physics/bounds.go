package physics

// Canvas is the current virtual canvas size in pixels
type Canvas struct {
	Width, Height float64
}

// Bounds is the horizontal confinement column
type Bounds struct {
	Left, Right, Width float64
}

// WaterfallBounds centres a column of the configured width on the canvas
// Recomputed on every use so resizes take effect immediately
func WaterfallBounds(canvasWidth, columnWidth float64) Bounds {
	left := (canvasWidth - columnWidth) / 2
	return Bounds{Left: left, Right: left + columnWidth, Width: columnWidth}
}
