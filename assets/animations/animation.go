package animations

import "math"

// Animation picks frames of a horizontal sprite sheet from an elapsed time in
// seconds, the way Pete's controller accumulates StateTime.
type Animation struct {
	Frames        []int   // sheet indices, played in order
	FrameDuration float64 // seconds per frame
	Loop          bool
}

func NewAnimation(frameDuration float64, loop bool, frames ...int) *Animation {
	return &Animation{
		Frames:        frames,
		FrameDuration: frameDuration,
		Loop:          loop,
	}
}

// Frame returns the sheet index shown stateTime seconds into the animation.
// Non-looping animations hold their last frame.
func (a *Animation) Frame(stateTime float64) int {
	if len(a.Frames) == 0 {
		return 0
	}
	if a.FrameDuration <= 0 || stateTime <= 0 {
		return a.Frames[0]
	}
	n := int(math.Floor(stateTime / a.FrameDuration))
	if a.Loop {
		return a.Frames[n%len(a.Frames)]
	}
	if n >= len(a.Frames) {
		n = len(a.Frames) - 1
	}
	return a.Frames[n]
}

// Finished reports whether a non-looping animation has reached its last frame.
func (a *Animation) Finished(stateTime float64) bool {
	if a.Loop || a.FrameDuration <= 0 {
		return false
	}
	return stateTime >= a.FrameDuration*float64(len(a.Frames))
}
