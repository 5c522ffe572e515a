package scratch

// Mask is a coverage grid over the overlay. A pixel is either covered or
// cleared; cleared pixels never become covered again until the mask is replaced.
type Mask struct {
	width   int
	height  int
	radius  float64
	cleared []bool
	count   int
}

func NewMask(width, height int, radius float64) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:   width,
		height:  height,
		radius:  radius,
		cleared: make([]bool, width*height),
	}
}

func (m *Mask) Width() int {
	return m.width
}

func (m *Mask) Height() int {
	return m.height
}

// Erase clears the disc of the mask's radius centred on (cx, cy) in overlay
// coordinates and returns how many pixels were newly cleared. A pixel belongs
// to the disc when its centre does.
func (m *Mask) Erase(cx, cy float64) int {
	return m.EraseFunc(cx, cy, nil)
}

// EraseFunc is Erase with a callback invoked with the index of each newly cleared pixel.
func (m *Mask) EraseFunc(cx, cy float64, onClear func(i int)) int {
	r := m.radius
	minX := clampInt(int(cx-r)-1, 0, m.width)
	maxX := clampInt(int(cx+r)+1, 0, m.width)
	minY := clampInt(int(cy-r)-1, 0, m.height)
	maxY := clampInt(int(cy+r)+1, 0, m.height)

	n := 0
	r2 := r * r
	for y := minY; y < maxY; y++ {
		dy := float64(y) + 0.5 - cy
		for x := minX; x < maxX; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy > r2 {
				continue
			}
			i := y*m.width + x
			if m.cleared[i] {
				continue
			}
			m.cleared[i] = true
			n++
			if onClear != nil {
				onClear(i)
			}
		}
	}
	m.count += n
	return n
}

// ClearAll clears every pixel.
func (m *Mask) ClearAll() {
	for i := range m.cleared {
		m.cleared[i] = true
	}
	m.count = len(m.cleared)
}

func (m *Mask) Cleared(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.cleared[y*m.width+x]
}

// ClearedFraction is cleared pixels over total pixels, zero for an empty mask.
func (m *Mask) ClearedFraction() float64 {
	if len(m.cleared) == 0 {
		return 0
	}
	return float64(m.count) / float64(len(m.cleared))
}

// Measure recounts cleared pixels with a full scan. It always agrees with ClearedFraction.
func (m *Mask) Measure() float64 {
	if len(m.cleared) == 0 {
		return 0
	}
	n := 0
	for _, c := range m.cleared {
		if c {
			n++
		}
	}
	return float64(n) / float64(len(m.cleared))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
