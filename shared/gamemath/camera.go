package gamemath

import "math"

// FollowX returns the new horizontal camera centre. The camera tracks targetX
// only while it is more than half a view from both level edges; otherwise it
// stays where it is.
func FollowX(cameraX, targetX, viewWidth, levelWidth float64) float64 {
	half := viewWidth / 2
	if targetX > half && targetX < levelWidth-half {
		return targetX
	}
	return cameraX
}

// ClampCameraX keeps the view inside the level. Levels narrower than the view
// are pinned to the left edge.
func ClampCameraX(cameraX, viewWidth, levelWidth float64) float64 {
	half := viewWidth / 2
	if levelWidth <= viewWidth {
		return half
	}
	return ClampFloat(cameraX, half, levelWidth-half)
}

// ScreenX converts a world x to a screen x for a camera centred on cameraX.
func ScreenX(worldX, cameraX, viewWidth float64) float64 {
	return worldX - (cameraX - viewWidth/2)
}

// ScreenY converts the bottom edge of something height tall from y-up world
// space to the y-down top edge on screen. The camera never moves vertically,
// so world y 0 is the bottom of the view.
func ScreenY(worldY, height, viewHeight float64) float64 {
	return viewHeight - worldY - height
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
