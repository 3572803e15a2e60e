package ducks

import (
	"math"

	"github.com/vovakirdan/duck-tower/internal/config"
	"github.com/vovakirdan/duck-tower/internal/core"
)

// cameraSnap is the distance under which the camera jumps to its target.
const cameraSnap = 0.01

// Camera follows the top of the tower. Y is the design-space offset of the
// top of the screen; it goes negative as the tower grows.
type Camera struct {
	Y       float64
	TargetY float64

	followRatio float64
	lerp        float64
}

// NewCamera creates a camera at rest.
func NewCamera(cfg config.CameraConfig) Camera {
	return Camera{followRatio: cfg.FollowRatio, lerp: cfg.Lerp}
}

// Follow retargets the camera so topY sits at followRatio of the screen.
// The camera never scrolls below the ground.
func (c *Camera) Follow(topY, height float64) {
	c.TargetY = min(0, topY-height*c.followRatio)
}

// Update moves the camera one tick toward its target.
func (c *Camera) Update() {
	if math.Abs(c.TargetY-c.Y) < cameraSnap {
		c.Y = c.TargetY
		return
	}
	c.Y = core.Lerp(c.Y, c.TargetY, c.lerp)
}

// Reset puts the camera back on the ground.
func (c *Camera) Reset() {
	c.Y = 0
	c.TargetY = 0
}
