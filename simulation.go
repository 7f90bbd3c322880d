package main

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particle-playground/internal/config"
	"github.com/olivierh59500/particle-playground/internal/loop"
)

// Simulation is the ebiten Game. It forwards input and viewport changes to
// the loop and fires one loop tick per Draw.
type Simulation struct {
	loop   *loop.Loop
	sched  *loop.FrameScheduler
	canvas *screenCanvas
	log    *log.Logger

	cfg           config.Config
	width, height int
	started       bool
	showHUD       bool
	err           error
}

// NewSimulation creates a simulation that starts on the first Layout call.
func NewSimulation(cfg config.Config, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	sched := loop.NewFrameScheduler()
	return &Simulation{
		loop:    loop.New(cfg, loop.Options{Scheduler: sched, Logger: logger}),
		sched:   sched,
		canvas:  &screenCanvas{},
		log:     logger,
		cfg:     cfg,
		showHUD: true,
	}
}

// Update is called each tick by Ebitengine. It only handles input; the
// simulation itself advances in Draw.
func (s *Simulation) Update() error {
	if s.err != nil {
		return s.err
	}
	return s.handleInput()
}

// Draw runs the pending loop tick against the screen. The screen is not
// cleared between frames so the fade rectangle leaves trails.
func (s *Simulation) Draw(screen *ebiten.Image) {
	s.canvas.target = screen
	s.sched.RunFrame()
	s.canvas.target = nil

	if s.showHUD {
		ebitenutil.DebugPrintAt(screen, s.status(), 12, 12)
	}
}

// Layout tracks the window size. The first usable size starts the loop; later
// changes re-seed it.
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !s.started || outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		s.resize()
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// Close tears the loop down once RunGame returns.
func (s *Simulation) Close() {
	s.loop.Teardown()
}

func (s *Simulation) resize() {
	var err error
	if !s.started {
		err = s.loop.Start(s.canvas, s.width, s.height)
		s.started = err == nil
	} else {
		err = s.loop.Resize(s.width, s.height)
	}
	if err != nil {
		s.err = fmt.Errorf("viewport %dx%d: %w", s.width, s.height, err)
	}
}

// handleInput processes keyboard and mouse input
func (s *Simulation) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	s.loop.MovePointer(float64(mx), float64(my))
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.loop.SetPointerActive(true)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		s.loop.SetPointerActive(false)
	}
	if mx < 0 || my < 0 || mx >= s.width || my >= s.height {
		s.loop.SetPointerActive(false)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.showHUD = !s.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return s.loop.Reset()
	}

	next := s.cfg
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		next.Count += config.CountStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		next.Count -= config.CountStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		next.Size += config.SizeStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		next.Size -= config.SizeStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		next.Speed += config.SpeedStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		next.Speed -= config.SpeedStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		next.Scheme = next.Scheme.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		next.Mode = next.Mode.Toggle()
	}
	return s.apply(next.Clamp())
}

// apply restarts the loop when any tunable parameter changed.
func (s *Simulation) apply(next config.Config) error {
	if next == s.cfg {
		return nil
	}
	s.cfg = next
	s.log.Printf("config: %s", next)
	return s.loop.Restart(next)
}

func (s *Simulation) status() string {
	st := s.loop.Stats()
	return fmt.Sprintf("%s  links=%d  fps=%.0f\n=/- count  ]/[ size  ./, speed  C scheme  M mode  R reset  H hud  Esc quit",
		s.cfg, st.Links, ebiten.ActualFPS())
}
