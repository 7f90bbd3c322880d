package particle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/olivierh59500/particle-playground/internal/config"
)

func still(x, y float64) Particle {
	return New(x, y, 2, Fallback)
}

func frame(w, h float64) Frame {
	return Frame{Width: w, Height: h, Mode: config.Attract}
}

func TestStepBoundaryContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w, h = 300.0, 200.0
	cfg := config.Config{Count: 200, Size: 2, Speed: 5, Scheme: config.Rainbow, Mode: config.Attract}
	ps := Seed(rng, Viewport{Width: w, Height: h}, cfg)
	for i := range ps {
		ps[i].VX *= 40
		ps[i].VY *= 40
	}
	f := frame(w, h)
	for step := 0; step < 500; step++ {
		f.Pointer = Pointer{X: rng.Float64() * w, Y: rng.Float64() * h, Active: step%3 == 0}
		Advance(ps, f)
		for i, p := range ps {
			if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
				t.Fatalf("step %d particle %d escaped: (%g,%g)", step, i, p.X, p.Y)
			}
		}
	}
}

func TestStepBounceReflectsVelocity(t *testing.T) {
	tests := []struct {
		name         string
		p            Particle
		wantX, wantY float64
		wantVX       float64
		wantVY       float64
	}{
		{"right wall", Particle{X: 95, Y: 50, VX: 10, VY: 0}, 100, 50, -10 * 0.9 * 0.99, 0},
		{"left wall", Particle{X: 2, Y: 50, VX: -5, VY: 1}, 0, 51, 5 * 0.9 * 0.99, 0.99},
		{"bottom wall", Particle{X: 50, Y: 99, VX: 0, VY: 4}, 50, 100, 0, -4 * 0.9 * 0.99},
		{"top wall", Particle{X: 50, Y: 1, VX: 0, VY: -3}, 50, 0, 0, 3 * 0.9 * 0.99},
		{"corner", Particle{X: 99, Y: 99, VX: 3, VY: 3}, 100, 100, -3 * 0.9 * 0.99, -3 * 0.9 * 0.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			Step(&p, frame(100, 100))
			if !near(p.X, tt.wantX) || !near(p.Y, tt.wantY) {
				t.Fatalf("position (%g,%g), want (%g,%g)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if !near(p.VX, tt.wantVX) || !near(p.VY, tt.wantVY) {
				t.Fatalf("velocity (%g,%g), want (%g,%g)", p.VX, p.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestFrictionMonotonic(t *testing.T) {
	p := Particle{X: 5000, Y: 5000, VX: 3, VY: -4}
	f := frame(1e6, 1e6)
	prev := math.Hypot(p.VX, p.VY)
	for i := 0; i < 2000; i++ {
		Step(&p, f)
		speed := math.Hypot(p.VX, p.VY)
		if speed > prev {
			t.Fatalf("step %d: speed rose from %g to %g", i, prev, speed)
		}
		prev = speed
	}
	if prev > 5*1e-8 {
		t.Fatalf("speed did not converge: %g", prev)
	}
}

func TestPointerForceDirection(t *testing.T) {
	tests := []struct {
		name   string
		mode   config.InteractionMode
		sign   float64
		px, py float64
	}{
		{"attract right", config.Attract, 1, 150, 100},
		{"repel right", config.Repel, -1, 150, 100},
		{"attract above", config.Attract, 1, 100, 20},
		{"repel below", config.Repel, -1, 100, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := still(100, 100)
			f := Frame{Width: 1000, Height: 1000, Mode: tt.mode, Pointer: Pointer{X: tt.px, Y: tt.py, Active: true}}
			applyPointer(&p, f.Pointer, f.Mode)
			dx, dy := tt.px-100, tt.py-100
			if dx != 0 && math.Signbit(p.VX) != math.Signbit(tt.sign*dx) {
				t.Fatalf("vx %g has wrong sign for dx %g", p.VX, dx)
			}
			if dy != 0 && math.Signbit(p.VY) != math.Signbit(tt.sign*dy) {
				t.Fatalf("vy %g has wrong sign for dy %g", p.VY, dy)
			}
			dist := math.Hypot(dx, dy)
			want := PointerForce(dist) * config.ForceScale
			if got := math.Hypot(p.VX, p.VY); !near(got, want) {
				t.Fatalf("|dv| = %g, want %g", got, want)
			}
		})
	}
}

func TestPointerForceFalloff(t *testing.T) {
	if PointerForce(200) != 0 || PointerForce(250) != 0 || PointerForce(0) != 0 {
		t.Fatal("force outside (0,200) must be zero")
	}
	prev := math.Inf(1)
	for d := 1.0; d < 200; d += 1 {
		f := PointerForce(d)
		if f <= 0 || f >= prev {
			t.Fatalf("force at %g = %g, previous %g", d, f, prev)
		}
		prev = f
	}
	if !near(PointerForce(100), 0.5) {
		t.Fatalf("midpoint force %g", PointerForce(100))
	}
}

func TestInactivePointerIgnored(t *testing.T) {
	p := still(100, 100)
	f := frame(500, 500)
	f.Pointer = Pointer{X: 120, Y: 100}
	Step(&p, f)
	if p.VX != 0 || p.VY != 0 {
		t.Fatalf("inactive pointer moved particle: (%g,%g)", p.VX, p.VY)
	}
}

func TestZeroDistanceIsSafe(t *testing.T) {
	for _, mode := range []config.InteractionMode{config.Attract, config.Repel} {
		p := still(250, 250)
		f := Frame{Width: 500, Height: 500, Mode: mode, Pointer: Pointer{X: 250, Y: 250, Active: true}}
		Step(&p, f)
		for _, v := range []float64{p.X, p.Y, p.VX, p.VY} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%s: non-finite state %+v", mode, p)
			}
		}
		if p.VX != 0 || p.VY != 0 {
			t.Fatalf("%s: particle under pointer got velocity (%g,%g)", mode, p.VX, p.VY)
		}
	}
}

func TestPointerAtInteractionRadius(t *testing.T) {
	p := still(250, 250)
	f := Frame{Width: 500, Height: 500, Mode: config.Attract, Pointer: Pointer{X: 250, Y: 50, Active: true}}
	Step(&p, f)
	if p.VX != 0 || p.VY != 0 || p.X != 250 || p.Y != 250 {
		t.Fatalf("particle at radius boundary changed: %+v", p)
	}
}

func TestZeroSpeedTickLeavesPositions(t *testing.T) {
	cfg := config.Config{Count: 10, Size: 3, Speed: 0, Scheme: config.Rainbow, Mode: config.Attract}
	ps := Seed(newRand(), Viewport{Width: 500, Height: 500}, cfg)
	before := make([]Particle, len(ps))
	copy(before, ps)
	Advance(ps, frame(500, 500))
	for i := range ps {
		if ps[i].X != before[i].X || ps[i].Y != before[i].Y {
			t.Fatalf("particle %d moved", i)
		}
		if ps[i].VX != 0 || ps[i].VY != 0 {
			t.Fatalf("particle %d velocity (%g,%g)", i, ps[i].VX, ps[i].VY)
		}
	}
}

func TestStepKeepsAppearance(t *testing.T) {
	p := New(10, 10, 3.5, Fallback)
	p.VX, p.VY = 50, 50
	Step(&p, Frame{Width: 20, Height: 20, Pointer: Pointer{X: 0, Y: 0, Active: true}, Mode: config.Repel})
	if p.Radius() != 3.5 || p.Color() != Fallback || p.Life != 1 {
		t.Fatalf("appearance changed: %+v", p)
	}
}

func TestFlowFieldBounded(t *testing.T) {
	if NewFlowField(0, 1) != nil {
		t.Fatal("zero strength should disable the field")
	}
	ff := NewFlowField(0.3, 1)
	for x := 0.0; x < 1000; x += 37 {
		for y := 0.0; y < 1000; y += 41 {
			nx, ny := ff.Nudge(x, y)
			if m := math.Hypot(nx, ny); !near(m, 0.3) {
				t.Fatalf("nudge magnitude %g at (%g,%g)", m, x, y)
			}
		}
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
