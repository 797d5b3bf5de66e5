package card

import (
	"math"
	"testing"
)

// TestSpawnBurstCount verifies the active set grows by exactly n before
// any tick runs.
func TestSpawnBurstCount(t *testing.T) {
	hs := NewHeartSystem(1000, 42, DefaultHearts)
	hs.SpawnBurst(100, 100, 50)
	if hs.Count() != 50 {
		t.Errorf("expected 50 hearts immediately after burst, got %d", hs.Count())
	}
	hs.SpawnBurst(200, 50, 7)
	if hs.Count() != 57 {
		t.Errorf("expected 57 hearts after second burst, got %d", hs.Count())
	}
}

// TestSpawnBurstRanges verifies every creation parameter lands in its
// documented interval.
func TestSpawnBurstRanges(t *testing.T) {
	hs := NewHeartSystem(MaxHearts, 7, DefaultHearts)
	hs.SpawnBurst(320, 240, 500)

	for i := range hs.P {
		p := &hs.P[i]
		if p.Size < HeartSizeMin || p.Size >= HeartSizeMax {
			t.Fatalf("heart %d: size %g outside [%g,%g)", i, p.Size, HeartSizeMin, HeartSizeMax)
		}
		if p.VX < -HeartSpeedX || p.VX >= HeartSpeedX {
			t.Fatalf("heart %d: vx %g outside [-%g,%g)", i, p.VX, HeartSpeedX, HeartSpeedX)
		}
		if p.VY < -HeartRiseMax || p.VY >= -HeartRiseMin {
			t.Fatalf("heart %d: vy %g outside [-%g,-%g)", i, p.VY, HeartRiseMax, HeartRiseMin)
		}
		if p.Rotation < 0 || p.Rotation >= 2*math.Pi {
			t.Fatalf("heart %d: rotation %g outside [0,2pi)", i, p.Rotation)
		}
		if p.RotSpeed < -HeartSpinMax || p.RotSpeed >= HeartSpinMax {
			t.Fatalf("heart %d: rotation speed %g outside [-%g,%g)", i, p.RotSpeed, HeartSpinMax, HeartSpinMax)
		}
		if p.Opacity != 1 {
			t.Fatalf("heart %d: opacity starts at %g, want 1", i, p.Opacity)
		}
		if p.Fade < HeartFadeMin || p.Fade >= HeartFadeMax {
			t.Fatalf("heart %d: fade %g outside [%g,%g)", i, p.Fade, HeartFadeMin, HeartFadeMax)
		}
		found := false
		for _, col := range DefaultHearts {
			if col == p.Col {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("heart %d: colour %+v not in the palette", i, p.Col)
		}
	}
}

// TestOpacityFadeAndReap verifies the exact fade arithmetic and that a
// heart leaves the set on the very tick its opacity reaches zero.
func TestOpacityFadeAndReap(t *testing.T) {
	hs := NewHeartSystem(10, 1, DefaultHearts)
	hs.Add(Heart{X: 0, Y: 0, Opacity: 1, Fade: 0.01, Size: 12, Col: DefaultHearts[0]})

	for tick := 1; tick <= 99; tick++ {
		hs.Update()
		if hs.Count() != 1 {
			t.Fatalf("tick %d: heart reaped early (opacity should be %.2f)", tick, 1-0.01*float64(tick))
		}
		want := 1 - 0.01*float64(tick)
		if math.Abs(hs.P[0].Opacity-want) > 1e-9 {
			t.Fatalf("tick %d: opacity %g, want %g", tick, hs.P[0].Opacity, want)
		}
	}

	// Tick 100 computes opacity 0 and must reap within the same tick.
	hs.Update()
	if hs.Count() != 0 {
		t.Errorf("heart still present on the tick its opacity reached zero")
	}
}

// TestBurstFadesOut runs the documented scenario: 50 hearts fade to an
// empty set within 1/fadeMin ticks and the set stays empty.
func TestBurstFadesOut(t *testing.T) {
	hs := NewHeartSystem(1000, 9, DefaultHearts)
	hs.SpawnBurst(100, 100, 50)

	firstEmpty := 0
	for tick := 1; tick <= 300; tick++ {
		hs.Update()
		if hs.Count() == 0 && firstEmpty == 0 {
			firstEmpty = tick
		}
		if firstEmpty > 0 && hs.Count() != 0 {
			t.Fatalf("tick %d: set refilled after emptying at tick %d", tick, firstEmpty)
		}
	}
	if firstEmpty == 0 {
		t.Fatal("set never emptied in 300 ticks")
	}
	// Slowest possible fade is HeartFadeMin per tick.
	maxTicks := int(math.Ceil(1/HeartFadeMin)) + 1
	if firstEmpty > maxTicks {
		t.Errorf("set emptied at tick %d, want <= %d", firstEmpty, maxTicks)
	}
}

// TestHeartCapOverwrites verifies the circular cap bounds the set.
func TestHeartCapOverwrites(t *testing.T) {
	hs := NewHeartSystem(10, 3, DefaultHearts)
	hs.SpawnBurst(0, 0, 25)
	if hs.Count() != 10 {
		t.Errorf("capped system holds %d hearts, want 10", hs.Count())
	}
}

// TestRenderDataFormat verifies the 8-float record shape and that only
// visible hearts are emitted.
func TestRenderDataFormat(t *testing.T) {
	hs := NewHeartSystem(10, 4, DefaultHearts)
	hs.SpawnBurst(50, 60, 3)

	buf := hs.RenderData(nil)
	if len(buf) != 3*8 {
		t.Fatalf("render buffer has %d floats, want %d", len(buf), 3*8)
	}
	for i := 0; i < 3; i++ {
		a := buf[i*8+6]
		if a <= 0 || a > 1 {
			t.Errorf("record %d: alpha %g outside (0,1]", i, a)
		}
	}
}
