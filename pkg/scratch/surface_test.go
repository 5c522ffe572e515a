package scratch

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGradient = Gradient{
	{R: 0xA9, G: 0x7C, B: 0xF8, A: 0xff},
	{R: 0xF3, G: 0x8C, B: 0xB8, A: 0xff},
	{R: 0xFD, G: 0xCC, B: 0x92, A: 0xff},
}

// sweep drags the pointer across the whole surface in rows.
func sweep(s *Surface, ox, oy float64) {
	s.PointerDown(ox, oy)
	for y := 0.0; y <= float64(s.Height()); y += 10 {
		for x := 0.0; x <= float64(s.Width()); x += 10 {
			s.PointerMove(ox+x, oy+y)
		}
	}
}

func newTestSurface(minPct float64, calls *int) *Surface {
	return NewSurface(SurfaceOptions{
		Width:                100,
		Height:               100,
		Gradient:             testGradient,
		MinScratchPercentage: minPct,
		OnComplete:           func() { *calls++ },
	})
}

func TestSurface_completesOnceAboveThreshold(t *testing.T) {
	calls := 0
	s := newTestSurface(70, &calls)

	sweep(s, 0, 0)
	assert.Equal(t, 0, calls, "completion is only checked when the scratch ends")
	assert.GreaterOrEqual(t, s.ClearedFraction(), 0.7)

	s.PointerUp()
	assert.Equal(t, 1, calls)
	assert.True(t, s.Completed())
	assert.True(t, s.Disabled())
	assert.Equal(t, 1.0, s.ClearedFraction())

	sweep(s, 0, 0)
	s.PointerUp()
	s.TouchEnd()
	assert.False(t, s.CompletionCheck())
	assert.Equal(t, 1, calls)
	assert.False(t, s.Active())
}

func TestSurface_belowThreshold(t *testing.T) {
	calls := 0
	s := newTestSurface(70, &calls)

	s.PointerDown(50, 50)
	s.PointerUp()
	assert.InDelta(t, 0.28, s.ClearedFraction(), 0.02)
	assert.Equal(t, 0, calls)
	assert.False(t, s.Completed())
	assert.False(t, s.Disabled())
}

func TestSurface_defaultThreshold(t *testing.T) {
	calls := 0
	s := newTestSurface(0, &calls)

	s.PointerDown(25, 25)
	s.PointerMove(75, 25)
	s.PointerMove(25, 75)
	s.PointerMove(75, 75)
	s.PointerLeave()
	require.GreaterOrEqual(t, s.ClearedFraction(), 0.5)
	assert.Equal(t, 1, calls)
}

func TestSurface_moveWithoutPress(t *testing.T) {
	calls := 0
	s := newTestSurface(70, &calls)

	s.PointerMove(50, 50)
	assert.Equal(t, 0.0, s.ClearedFraction())

	s.PointerDown(10, 10)
	before := s.ClearedFraction()
	s.PointerUp()
	s.PointerMove(90, 90)
	assert.Equal(t, before, s.ClearedFraction())
}

func TestSurface_touch(t *testing.T) {
	calls := 0
	s := newTestSurface(70, &calls)

	s.TouchStart(0, 0)
	for y := 0.0; y <= 100; y += 10 {
		for x := 0.0; x <= 100; x += 10 {
			s.TouchMove(x, y)
		}
	}
	s.TouchEnd()
	assert.Equal(t, 1, calls)
}

func TestSurface_origin(t *testing.T) {
	calls := 0
	s := newTestSurface(70, &calls)
	s.SetOrigin(200, 300)

	assert.True(t, s.Contains(200, 300))
	assert.True(t, s.Contains(299, 399))
	assert.False(t, s.Contains(199, 300))
	assert.False(t, s.Contains(300, 300))

	s.PointerDown(50, 50)
	assert.Equal(t, 0.0, s.ClearedFraction(), "event outside the surface")
	s.PointerUp()

	sweep(s, 200, 300)
	s.PointerUp()
	assert.Equal(t, 1, calls)
}

func TestSurface_reinitialize(t *testing.T) {
	calls := 0
	s := newTestSurface(70, &calls)
	sweep(s, 0, 0)
	s.PointerUp()
	require.True(t, s.Completed())

	s.Resize(100, 100)
	assert.True(t, s.Completed(), "same size keeps state")

	s.Resize(120, 80)
	assert.False(t, s.Completed())
	assert.False(t, s.Disabled())
	assert.Equal(t, 0.0, s.ClearedFraction())
	assert.Equal(t, 120, s.Width())
	assert.Equal(t, 80, s.Height())

	sweep(s, 0, 0)
	s.PointerUp()
	assert.Equal(t, 2, calls)

	s.SetGradient(testGradient)
	assert.True(t, s.Completed(), "same gradient keeps state")

	other := testGradient
	other[1] = color.RGBA{R: 1, G: 2, B: 3, A: 0xff}
	s.SetGradient(other)
	assert.False(t, s.Completed())

	sweep(s, 0, 0)
	s.PointerUp()
	assert.Equal(t, 3, calls)

	s.Reset()
	assert.False(t, s.Completed())
}

func TestSurface_pixels(t *testing.T) {
	s := NewSurface(SurfaceOptions{Width: 100, Height: 50, Gradient: testGradient})

	px, dirty := s.Pixels()
	require.Len(t, px, 100*50*4)
	assert.True(t, dirty)
	corner := testGradient.At(0, 0, 100, 50)
	assert.Equal(t, []uint8{corner.R, corner.G, corner.B, 0xff}, px[0:4])
	last := testGradient.At(99, 49, 100, 50)
	assert.Equal(t, []uint8{last.R, last.G, last.B, 0xff}, px[len(px)-4:])

	_, dirty = s.Pixels()
	assert.False(t, dirty)

	s.PointerDown(50, 25)
	px, dirty = s.Pixels()
	assert.True(t, dirty)
	assert.Equal(t, uint8(0), px[(25*100+50)*4+3])
	assert.Equal(t, uint8(0xff), px[3])
}

func TestSurface_ackAnimation(t *testing.T) {
	calls := 0
	s := newTestSurface(70, &calls)

	scale, rot := s.AckTransform()
	assert.Equal(t, 1.0, scale)
	assert.Equal(t, 0.0, rot)
	assert.False(t, s.Animating())

	sweep(s, 0, 0)
	s.PointerUp()
	require.True(t, s.Animating())

	s.Tick(AckDuration / 2)
	scale, _ = s.AckTransform()
	assert.InDelta(t, 1.5, scale, 1e-9)

	s.Tick(AckDuration / 10)
	_, rot = s.AckTransform()
	assert.NotEqual(t, 0.0, rot)

	s.Tick(time.Second)
	assert.False(t, s.Animating())
	scale, rot = s.AckTransform()
	assert.Equal(t, 1.0, scale)
	assert.Equal(t, 0.0, rot)
}

func TestParseGradient(t *testing.T) {
	g, err := ParseGradient([3]string{"#A97CF8", "#F38CB8", "#FDCC92"})
	require.NoError(t, err)
	assert.Equal(t, testGradient, g)

	c, err := ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, err = ParseGradient([3]string{"#A97CF8", "nope", "#FDCC92"})
	assert.Error(t, err)
	_, err = ParseHexColor("#12345")
	assert.Error(t, err)
	_, err = ParseHexColor("#GGGGGG")
	assert.Error(t, err)
}

func TestGradient_At(t *testing.T) {
	start := testGradient.At(0, 0, 1000, 1000)
	assert.InDelta(t, float64(testGradient[0].R), float64(start.R), 2)
	assert.InDelta(t, float64(testGradient[0].B), float64(start.B), 2)
	mid := testGradient.At(499, 499, 1000, 1000)
	assert.InDelta(t, float64(testGradient[1].G), float64(mid.G), 2)
	end := testGradient.At(999, 999, 1000, 1000)
	assert.InDelta(t, float64(testGradient[2].R), float64(end.R), 2)
	assert.InDelta(t, float64(testGradient[2].B), float64(end.B), 2)
}
