package core

// Viewport maps between screen pixels and the resolution-independent design
// space. The design width is the viewport width clamped to a fixed range;
// the scale stretches it back to the real viewport.
type Viewport struct {
	DesignW float64 // Design-space width
	DesignH float64 // Design-space height
	Scale   float64 // Screen pixels per design pixel
	OffsetX float64 // Horizontal screen offset of design x=0
	OffsetY float64 // Vertical screen offset of design y=0
}

// NewViewport derives the design space for a viewport of screenW x screenH
// pixels, with design width clamped to [minDesignW, maxDesignW].
func NewViewport(screenW, screenH, minDesignW, maxDesignW float64) Viewport {
	if screenW <= 0 {
		screenW = minDesignW
	}
	if screenH <= 0 {
		screenH = screenW
	}

	designW := ClampF(screenW, minDesignW, maxDesignW)
	scale := screenW / designW

	return Viewport{
		DesignW: designW,
		DesignH: screenH / scale,
		Scale:   scale,
	}
}

// ToScreen converts a design-space point to screen pixels.
// cameraY is subtracted so the camera scrolls the world, not the HUD.
func (v Viewport) ToScreen(x, y, cameraY float64) (float64, float64) {
	return x*v.Scale + v.OffsetX, (y-cameraY)*v.Scale + v.OffsetY
}

// ToDesign converts a screen point to design space (world coordinates).
func (v Viewport) ToDesign(sx, sy, cameraY float64) (float64, float64) {
	if v.Scale == 0 {
		return sx, sy + cameraY
	}
	return (sx - v.OffsetX) / v.Scale, (sy-v.OffsetY)/v.Scale + cameraY
}

// Fit keeps the design space and rescales it into a new screen size,
// letter-boxing whichever axis has room to spare.
func (v Viewport) Fit(screenW, screenH float64) Viewport {
	if v.DesignW <= 0 || v.DesignH <= 0 || screenW <= 0 || screenH <= 0 {
		return v
	}

	scale := min(screenW/v.DesignW, screenH/v.DesignH)
	return Viewport{
		DesignW: v.DesignW,
		DesignH: v.DesignH,
		Scale:   scale,
		OffsetX: (screenW - v.DesignW*scale) / 2,
		OffsetY: (screenH - v.DesignH*scale) / 2,
	}
}
