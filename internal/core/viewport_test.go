package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewportClampsDesignWidth(t *testing.T) {
	tests := []struct {
		name            string
		screenW         float64
		expectedDesignW float64
		expectedScale   float64
	}{
		{"phone", 412, 412, 1},
		{"narrow phone", 360, 412, 360.0 / 412.0},
		{"tablet", 768, 768, 1},
		{"desktop", 1600, 800, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewport(tc.screenW, 900, 412, 800)
			assert.Equal(t, tc.expectedDesignW, v.DesignW)
			assert.InDelta(t, tc.expectedScale, v.Scale, 1e-12)
			assert.InDelta(t, 900, v.DesignH*v.Scale, 1e-9)
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(1600, 1000, 412, 800)
	v.OffsetX = 12

	sx, sy := v.ToScreen(200, 100, -50)
	assert.Equal(t, 200.0*2+12, sx)
	assert.Equal(t, 150.0*2, sy)

	x, y := v.ToDesign(sx, sy, -50)
	assert.Equal(t, 200.0, x)
	assert.Equal(t, 100.0, y)
}

func TestNewViewportDegenerate(t *testing.T) {
	v := NewViewport(0, 0, 412, 800)
	assert.Equal(t, 412.0, v.DesignW, "zero viewport should fall back to min design width")
	assert.Equal(t, 1.0, v.Scale)
}

func TestViewportFitLetterboxes(t *testing.T) {
	v := NewViewport(412, 915, 412, 800)

	wide := v.Fit(1000, 915)
	require.Equal(t, 412.0, wide.DesignW, "Fit() must keep the design space")
	require.Equal(t, 915.0, wide.DesignH, "Fit() must keep the design space")
	assert.Equal(t, 1.0, wide.Scale, "height bound")
	assert.Equal(t, (1000-412)/2.0, wide.OffsetX)
	assert.Zero(t, wide.OffsetY)

	assert.Equal(t, v, v.Fit(0, 0), "Fit() with an empty screen should leave the viewport unchanged")
}
