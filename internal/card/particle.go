package card

// Heart is one celebration particle. Created by a burst, mutated only by
// HeartSystem.Update, gone the tick its opacity reaches zero.
type Heart struct {
	X, Y   float64
	VX, VY float64

	Rotation float64
	RotSpeed float64

	Opacity float64 // unit interval, strictly decreasing
	Fade    float64
	Size    float64
	Col     RGB
}

// HeartSystem owns the active particle set. Nothing else appends to or
// removes from P.
type HeartSystem struct {
	Max     int
	P       []Heart
	palette [5]RGB
	seed    uint64
	rng     *Rand
	ovrIdx  int // circular overwrite index when full
}

func NewHeartSystem(maxHearts int, seed uint64, palette [5]RGB) *HeartSystem {
	if maxHearts <= 0 {
		maxHearts = MaxHearts
	}
	if seed == 0 {
		seed = 1
	}
	return &HeartSystem{
		Max:     maxHearts,
		P:       make([]Heart, 0, maxHearts),
		palette: palette,
		seed:    seed,
		rng:     NewRand(seed),
	}
}

func (hs *HeartSystem) Count() int { return len(hs.P) }

func (hs *HeartSystem) Clear() {
	hs.P = hs.P[:0]
	hs.ovrIdx = 0
}

func (hs *HeartSystem) Add(p Heart) {
	if len(hs.P) < hs.Max {
		hs.P = append(hs.P, p)
		return
	}
	// Circular overwrite.
	if hs.ovrIdx >= hs.Max {
		hs.ovrIdx = 0
	}
	hs.P[hs.ovrIdx] = p
	hs.ovrIdx++
}

// RenderData appends surviving hearts as point-sprite records.
// Format: [x, y, size, r, g, b, a, rotation] * N. Reaped hearts never
// reach this buffer, so every record has positive alpha.
func (hs *HeartSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range hs.P {
		p := &hs.P[i]
		a := float32(clampF(p.Opacity, 0, 1))
		if a <= 0 {
			continue
		}
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Size),
			float32(p.Col.R)/255.0, float32(p.Col.G)/255.0, float32(p.Col.B)/255.0,
			a, float32(p.Rotation),
		)
	}
	return buf
}
