package scratch

import (
	"math"
	"time"

	"github.com/cbodonnell/flagmaster/pkg/game/constants"
)

// AckDuration is the length of the completion acknowledgment animation.
const AckDuration = 500 * time.Millisecond

var (
	ackScaleFrames  = []float64{1, 1.5, 1}
	ackRotateFrames = []float64{0, 10, -10, 10, -10, 0}
)

// Surface is an erasable overlay that reports when enough of it has been scratched away.
type Surface struct {
	width      int
	height     int
	gradient   Gradient
	minPercent float64
	radius     float64
	onComplete func()

	originX float64
	originY float64

	mask      *Mask
	active    bool
	completed bool
	disabled  bool
	ack       time.Duration

	pixels []byte
	dirty  bool
}

type SurfaceOptions struct {
	Width    int
	Height   int
	Gradient Gradient
	// MinScratchPercentage is the cleared percentage (0-100) that completes the surface.
	// Defaults to 50.
	MinScratchPercentage float64
	// Radius of the erase disc in pixels. Defaults to 30.
	Radius float64
	// OnComplete is called once, synchronously, when the threshold is first reached.
	OnComplete func()
}

func NewSurface(opts SurfaceOptions) *Surface {
	s := &Surface{
		width:      opts.Width,
		height:     opts.Height,
		gradient:   opts.Gradient,
		minPercent: opts.MinScratchPercentage,
		radius:     opts.Radius,
		onComplete: opts.OnComplete,
	}
	if s.minPercent <= 0 {
		s.minPercent = constants.DefaultMinScratchPercentage
	}
	if s.radius <= 0 {
		s.radius = constants.ScratchRadius
	}
	s.reset()
	return s
}

// reset re-renders the overlay from scratch and clears the completion latch.
func (s *Surface) reset() {
	s.mask = NewMask(s.width, s.height, s.radius)
	s.active = false
	s.completed = false
	s.disabled = false
	s.ack = 0
	s.pixels = make([]byte, s.mask.Width()*s.mask.Height()*4)
	for y := 0; y < s.mask.Height(); y++ {
		for x := 0; x < s.mask.Width(); x++ {
			c := s.gradient.At(x, y, s.mask.Width(), s.mask.Height())
			i := (y*s.mask.Width() + x) * 4
			s.pixels[i] = c.R
			s.pixels[i+1] = c.G
			s.pixels[i+2] = c.B
			s.pixels[i+3] = c.A
		}
	}
	s.dirty = true
}

// Reset starts over with a fully covered overlay.
func (s *Surface) Reset() {
	s.reset()
}

// Resize changes the overlay dimensions. Any change starts over.
func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.reset()
}

// SetGradient changes the overlay colours. Any change starts over.
func (s *Surface) SetGradient(g Gradient) {
	if g == s.gradient {
		return
	}
	s.gradient = g
	s.reset()
}

// SetOrigin sets the surface's top-left corner in event coordinates.
func (s *Surface) SetOrigin(x, y float64) {
	s.originX = x
	s.originY = y
}

// Contains reports whether an event position is inside the surface.
func (s *Surface) Contains(x, y float64) bool {
	lx, ly := x-s.originX, y-s.originY
	return lx >= 0 && ly >= 0 && lx < float64(s.width) && ly < float64(s.height)
}

func (s *Surface) erase(x, y float64) {
	s.mask.EraseFunc(x-s.originX, y-s.originY, func(i int) {
		s.pixels[i*4+3] = 0
		s.pixels[i*4] = 0
		s.pixels[i*4+1] = 0
		s.pixels[i*4+2] = 0
		s.dirty = true
	})
}

// PointerDown starts a scratch and erases once at the press position.
func (s *Surface) PointerDown(x, y float64) {
	if s.disabled {
		return
	}
	s.active = true
	s.erase(x, y)
}

// PointerMove erases along the pointer path while a scratch is active.
func (s *Surface) PointerMove(x, y float64) {
	if s.disabled || !s.active {
		return
	}
	s.erase(x, y)
}

// PointerUp ends a scratch and checks for completion.
func (s *Surface) PointerUp() {
	if !s.active {
		return
	}
	s.active = false
	s.CompletionCheck()
}

// PointerLeave behaves like PointerUp.
func (s *Surface) PointerLeave() {
	s.PointerUp()
}

// TouchStart behaves like PointerDown.
func (s *Surface) TouchStart(x, y float64) {
	s.PointerDown(x, y)
}

// TouchMove behaves like PointerMove.
func (s *Surface) TouchMove(x, y float64) {
	s.PointerMove(x, y)
}

// TouchEnd behaves like PointerUp.
func (s *Surface) TouchEnd() {
	s.PointerUp()
}

// CompletionCheck measures the cleared fraction and latches completion once
// the threshold is reached. On completion the whole overlay is cleared, the
// acknowledgment animation starts and input is disabled.
func (s *Surface) CompletionCheck() bool {
	if s.completed {
		return false
	}
	if s.mask.Measure()*100 < s.minPercent {
		return false
	}
	s.completed = true
	s.disabled = true
	s.active = false
	s.mask.ClearAll()
	for i := range s.pixels {
		s.pixels[i] = 0
	}
	s.dirty = true
	if s.onComplete != nil {
		s.onComplete()
	}
	return true
}

// Tick advances the acknowledgment animation.
func (s *Surface) Tick(dt time.Duration) {
	if !s.completed || s.ack >= AckDuration {
		return
	}
	s.ack += dt
	if s.ack > AckDuration {
		s.ack = AckDuration
	}
}

// Animating reports whether the acknowledgment animation is running.
func (s *Surface) Animating() bool {
	return s.completed && s.ack < AckDuration
}

// AckTransform returns the current acknowledgment scale and rotation in degrees.
func (s *Surface) AckTransform() (scale float64, rotateDeg float64) {
	if !s.completed {
		return 1, 0
	}
	p := float64(s.ack) / float64(AckDuration)
	return keyframe(ackScaleFrames, p), keyframe(ackRotateFrames, p)
}

func keyframe(frames []float64, p float64) float64 {
	if p <= 0 {
		return frames[0]
	}
	if p >= 1 {
		return frames[len(frames)-1]
	}
	pos := p * float64(len(frames)-1)
	i := int(math.Floor(pos))
	t := pos - float64(i)
	return frames[i] + (frames[i+1]-frames[i])*t
}

// Pixels returns the RGBA overlay and whether it changed since the last call.
func (s *Surface) Pixels() ([]byte, bool) {
	dirty := s.dirty
	s.dirty = false
	return s.pixels, dirty
}

func (s *Surface) Width() int {
	return s.width
}

func (s *Surface) Height() int {
	return s.height
}

func (s *Surface) Active() bool {
	return s.active
}

func (s *Surface) Completed() bool {
	return s.completed
}

func (s *Surface) Disabled() bool {
	return s.disabled
}

func (s *Surface) ClearedFraction() float64 {
	return s.mask.ClearedFraction()
}
