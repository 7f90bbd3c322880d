// Package loop drives the particle simulation one frame at a time.
//
// A Loop owns the particle collection, the viewport and the pointer. It never
// runs a tick on its own: each tick schedules the next one through a Scheduler,
// and the host decides when frames happen. Everything runs on the host's
// frame goroutine, so the Loop does no locking.
package loop

import (
	"errors"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/olivierh59500/particle-playground/internal/config"
	"github.com/olivierh59500/particle-playground/internal/particle"
)

var (
	ErrNoRenderTarget = errors.New("loop: no render target")
	ErrStopped        = errors.New("loop: stopped")
)

// State of the loop lifecycle.
type State int

const (
	Idle    State = iota // no usable viewport or render target yet
	Running              // ticking every frame
	Stopped              // torn down, terminal
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Options configures a Loop. Zero values pick defaults.
type Options struct {
	Scheduler Scheduler
	Rand      *rand.Rand
	Logger    *log.Logger
}

// Stats summarizes the most recent ticks.
type Stats struct {
	Frames    uint64
	Links     int
	Particles int
}

type Loop struct {
	sched Scheduler
	rng   *rand.Rand
	log   *log.Logger

	cfg      config.Config
	viewport particle.Viewport
	canvas   particle.Canvas
	pointer  particle.Pointer
	flow     *particle.FlowField

	particles []particle.Particle
	renderer  particle.Renderer

	state State
	gen   uint64 // bumped on every restart; stale tick callbacks compare against it
	stats Stats
}

func New(cfg config.Config, opts Options) *Loop {
	l := &Loop{
		sched: opts.Scheduler,
		rng:   opts.Rand,
		log:   opts.Logger,
		cfg:   cfg,
	}
	if l.sched == nil {
		l.sched = NewFrameScheduler()
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if l.log == nil {
		l.log = log.New(io.Discard, "", 0)
	}
	return l
}

// Start attaches the render target and begins ticking once the viewport has
// area. A nil canvas fails without scheduling anything.
func (l *Loop) Start(c particle.Canvas, width, height int) error {
	if l.state == Stopped {
		return ErrStopped
	}
	if c == nil {
		return ErrNoRenderTarget
	}
	l.canvas = c
	l.viewport = particle.Viewport{Width: width, Height: height}
	l.restart()
	return nil
}

// Restart applies a new configuration: the pending tick is cancelled, the
// store is re-seeded and ticking resumes.
func (l *Loop) Restart(cfg config.Config) error {
	if l.state == Stopped {
		return ErrStopped
	}
	l.cfg = cfg
	l.restart()
	return nil
}

// Resize records a new viewport and restarts. A zero-area viewport parks the
// loop in Idle until a usable size arrives.
func (l *Loop) Resize(width, height int) error {
	if l.state == Stopped {
		return ErrStopped
	}
	vp := particle.Viewport{Width: width, Height: height}
	if vp == l.viewport && l.state == Running {
		return nil
	}
	l.viewport = vp
	l.restart()
	return nil
}

// Reset re-seeds the store with the current configuration without touching
// the schedule. It is a no-op unless the loop is running.
func (l *Loop) Reset() error {
	switch l.state {
	case Stopped:
		return ErrStopped
	case Idle:
		return nil
	}
	l.seed()
	l.log.Printf("reset: %d particles", len(l.particles))
	return nil
}

// Teardown stops scheduling, drops the store and detaches input. No callback
// scheduled before Teardown will run afterwards.
func (l *Loop) Teardown() {
	if l.state == Stopped {
		return
	}
	l.sched.Cancel()
	l.gen++
	l.state = Stopped
	l.canvas = nil
	l.particles = nil
	l.pointer = particle.Pointer{}
	l.log.Printf("stopped after %d frames", l.stats.Frames)
}

// MovePointer and SetPointerActive are the input listeners. They only touch
// pointer state and are ignored once the loop is stopped.
func (l *Loop) MovePointer(x, y float64) {
	if l.state == Stopped {
		return
	}
	l.pointer.X, l.pointer.Y = x, y
}

func (l *Loop) SetPointerActive(active bool) {
	if l.state == Stopped {
		return
	}
	l.pointer.Active = active
}

func (l *Loop) State() State                { return l.state }
func (l *Loop) Config() config.Config       { return l.cfg }
func (l *Loop) Viewport() particle.Viewport { return l.viewport }
func (l *Loop) Pointer() particle.Pointer   { return l.pointer }

// Particles exposes the live store. Callers must not modify it.
func (l *Loop) Particles() []particle.Particle {
	return l.particles
}

func (l *Loop) Stats() Stats {
	s := l.stats
	s.Particles = len(l.particles)
	return s
}

func (l *Loop) restart() {
	l.sched.Cancel()
	l.gen++
	l.flow = particle.NewFlowField(l.cfg.Flow, l.rng.Int63())

	if l.canvas == nil || l.viewport.Empty() {
		l.particles = nil
		if l.state != Idle {
			l.log.Printf("idle: viewport %dx%d", l.viewport.Width, l.viewport.Height)
		}
		l.state = Idle
		return
	}

	l.seed()
	l.state = Running
	l.log.Printf("running: %dx%d %s", l.viewport.Width, l.viewport.Height, l.cfg)
	l.schedule()
}

func (l *Loop) seed() {
	l.particles = particle.Seed(l.rng, l.viewport, l.cfg)
}

func (l *Loop) schedule() {
	gen := l.gen
	l.sched.ScheduleNextTick(func() { l.tick(gen) })
}

// tick runs one update and render pass, then schedules the next one.
func (l *Loop) tick(gen uint64) {
	if gen != l.gen || l.state != Running {
		return
	}
	f := l.frame()
	particle.Advance(l.particles, f)
	l.stats.Links = l.renderer.Render(l.canvas, l.particles, f.Width, f.Height)
	l.stats.Frames++
	l.schedule()
}

// frame snapshots everything a tick reads.
func (l *Loop) frame() particle.Frame {
	return particle.Frame{
		Width:   float64(l.viewport.Width),
		Height:  float64(l.viewport.Height),
		Pointer: l.pointer,
		Mode:    l.cfg.Mode,
		Flow:    l.flow,
	}
}
