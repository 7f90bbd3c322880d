package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// Window defaults
const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Particle Playground"
)

// Simulation constants
const (
	InteractionRadius = 200.0
	ForceScale        = 0.5
	Restitution       = 0.9
	Friction          = 0.99
	LinkDistance      = 100.0
	LinkAlpha         = 0.2
	LinkWidth         = 1.0
	FadeAlpha         = 0.1
)

// Parameter ranges
const (
	MinCount = 10
	MaxCount = 300
	MinSize  = 1.0
	MaxSize  = 8.0
	MinSpeed = 0.5
	MaxSpeed = 5.0
	MaxFlow  = 1.0

	CountStep = 10
	SizeStep  = 1.0
	SpeedStep = 0.5
)

var (
	ErrOutOfRange    = errors.New("value out of range")
	ErrUnknownScheme = errors.New("unknown color scheme")
	ErrUnknownMode   = errors.New("unknown interaction mode")
)

// ColorScheme selects how particle colors are generated at seed time.
type ColorScheme string

const (
	Rainbow ColorScheme = "rainbow"
	Fire    ColorScheme = "fire"
	Ocean   ColorScheme = "ocean"
	Purple  ColorScheme = "purple"
)

var schemes = []ColorScheme{Rainbow, Fire, Ocean, Purple}

// ParseColorScheme is case-insensitive.
func ParseColorScheme(s string) (ColorScheme, error) {
	cs := ColorScheme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range schemes {
		if cs == known {
			return cs, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScheme, s)
}

// Next cycles rainbow -> fire -> ocean -> purple -> rainbow.
// Unknown schemes cycle back to rainbow.
func (c ColorScheme) Next() ColorScheme {
	for i, known := range schemes {
		if c == known {
			return schemes[(i+1)%len(schemes)]
		}
	}
	return Rainbow
}

// InteractionMode decides the sign of the pointer force.
type InteractionMode string

const (
	Attract InteractionMode = "attract"
	Repel   InteractionMode = "repel"
)

func ParseInteractionMode(s string) (InteractionMode, error) {
	switch m := InteractionMode(strings.ToLower(strings.TrimSpace(s))); m {
	case Attract, Repel:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m InteractionMode) Toggle() InteractionMode {
	if m == Attract {
		return Repel
	}
	return Attract
}

// Sign is +1 for attract and -1 for repel.
func (m InteractionMode) Sign() float64 {
	if m == Repel {
		return -1
	}
	return 1
}

// Config holds the live-tunable parameters. It is passed by value so a tick
// always sees one consistent snapshot.
type Config struct {
	Count  int
	Size   float64
	Speed  float64
	Scheme ColorScheme
	Mode   InteractionMode

	// Flow is the maximum per-frame nudge from the noise flow field. 0 disables it.
	Flow float64
}

// Default mirrors the playground's initial slider positions.
func Default() Config {
	return Config{
		Count:  100,
		Size:   3,
		Speed:  2,
		Scheme: Rainbow,
		Mode:   Attract,
	}
}

// Validate reports the first field outside its allowed range.
func (c Config) Validate() error {
	if c.Count < MinCount || c.Count > MaxCount {
		return fmt.Errorf("particle count %d: %w [%d,%d]", c.Count, ErrOutOfRange, MinCount, MaxCount)
	}
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("particle size %g: %w [%g,%g]", c.Size, ErrOutOfRange, MinSize, MaxSize)
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("speed %g: %w [%g,%g]", c.Speed, ErrOutOfRange, MinSpeed, MaxSpeed)
	}
	if c.Flow < 0 || c.Flow > MaxFlow {
		return fmt.Errorf("flow %g: %w [0,%g]", c.Flow, ErrOutOfRange, MaxFlow)
	}
	if _, err := ParseColorScheme(string(c.Scheme)); err != nil {
		return err
	}
	if _, err := ParseInteractionMode(string(c.Mode)); err != nil {
		return err
	}
	return nil
}

// Clamp pulls numeric fields back into range. Used by live key edits, which
// step past the limits instead of failing.
func (c Config) Clamp() Config {
	c.Count = min(max(c.Count, MinCount), MaxCount)
	c.Size = min(max(c.Size, MinSize), MaxSize)
	c.Speed = min(max(c.Speed, MinSpeed), MaxSpeed)
	c.Flow = min(max(c.Flow, 0), MaxFlow)
	return c
}

func (c Config) String() string {
	return fmt.Sprintf("count=%d size=%g speed=%g scheme=%s mode=%s", c.Count, c.Size, c.Speed, c.Scheme, c.Mode)
}

// Options are the process-level settings that never trigger a re-seed.
type Options struct {
	Width, Height int
	Verbose       bool
	Dialogs       bool
}

// BindFlags registers the command line flags on fs. Call Finish after
// fs.Parse to resolve the string-valued enums.
func BindFlags(fs *flag.FlagSet, c *Config, o *Options) *Flags {
	f := &Flags{cfg: c}
	fs.IntVar(&c.Count, "count", c.Count, "number of particles [10,300]")
	fs.Float64Var(&c.Size, "size", c.Size, "base particle radius [1,8]")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "initial velocity scale [0.5,5]")
	fs.Float64Var(&c.Flow, "flow", c.Flow, "noise flow field strength [0,1], 0 = off")
	fs.StringVar(&f.scheme, "scheme", string(c.Scheme), "color scheme (rainbow, fire, ocean, purple)")
	fs.StringVar(&f.mode, "mode", string(c.Mode), "pointer interaction (attract, repel)")
	fs.IntVar(&o.Width, "width", WindowWidth, "initial window width")
	fs.IntVar(&o.Height, "height", WindowHeight, "initial window height")
	fs.BoolVar(&o.Verbose, "verbose", false, "log loop lifecycle events")
	fs.BoolVar(&o.Dialogs, "dialogs", true, "show a native dialog on fatal errors")
	return f
}

// Flags carries the raw enum strings between BindFlags and Finish.
type Flags struct {
	cfg    *Config
	scheme string
	mode   string
}

// Finish parses the enum flags into the bound Config and validates it.
func (f *Flags) Finish() error {
	scheme, err := ParseColorScheme(f.scheme)
	if err != nil {
		return fmt.Errorf("-scheme: %w", err)
	}
	mode, err := ParseInteractionMode(f.mode)
	if err != nil {
		return fmt.Errorf("-mode: %w", err)
	}
	f.cfg.Scheme = scheme
	f.cfg.Mode = mode
	return f.cfg.Validate()
}
