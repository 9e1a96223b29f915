package tactile

import (
	"errors"
	"iter"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// Defaults used by Run when RunConfig leaves a field zero. 480x272 is a
// common panel resolution for small embedded displays.
const (
	defaultRunWidth  = 480
	defaultRunHeight = 272
	defaultRunTPS    = 60
)

// RunConfig configures Run.
type RunConfig struct {
	Title          string
	Width, Height  int
	TicksPerSecond int

	// Background is painted behind the canvas every frame.
	Background Color

	// ShowFPS prints FPS/TPS in the top-left corner.
	ShowFPS bool
	// Debug prints the live traces and enables tree sanity warnings.
	Debug bool
	// MouseAsTouch treats the held left mouse button as a touch.
	MouseAsTouch bool

	// Candidates yields drag targets in priority order each tick. When nil,
	// every element of the tree is a candidate, topmost first.
	Candidates func() iter.Seq[Element]

	// Script, when set, injects scripted touches. ExitWhenDone ends the game
	// loop once the script has finished.
	Script       *TestRunner
	ExitWhenDone bool

	ScreenshotDir string
	Logger        *slog.Logger

	// Options are passed to NewManipulator.
	Options []Option
}

// Run opens a window, draws root into a persistent canvas, and drives a
// Manipulator from ebiten's touch input until the window is closed.
func Run(root Element, cfg RunConfig) error {
	g := newGame(root, cfg)

	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetTPS(g.cfg.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// game implements ebiten.Game around a Manipulator.
type game struct {
	cfg      RunConfig
	root     Element
	canvas   *Canvas
	manip    *Manipulator
	touches  TouchSource
	injected *InjectedTouches
	logger   *slog.Logger

	tick  uint64
	buf   []Point
	drawn bool
}

func newGame(root Element, cfg RunConfig) *game {
	if cfg.Width <= 0 {
		cfg.Width = defaultRunWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultRunHeight
	}
	if cfg.TicksPerSecond <= 0 {
		cfg.TicksPerSecond = defaultRunTPS
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Candidates == nil {
		cfg.Candidates = func() iter.Seq[Element] { return TopmostFirst(root) }
	}
	SetDebugMode(cfg.Debug, cfg.Logger)

	canvas := NewCanvas(cfg.Width, cfg.Height)
	canvas.logger = cfg.Logger
	if cfg.ScreenshotDir != "" {
		canvas.ScreenshotDir = cfg.ScreenshotDir
	}
	if rs, ok := root.(rendererSetter); ok {
		rs.SetRenderer(canvas)
	}
	if c, ok := root.(Constrainable); ok {
		if _, has := c.OuterBox(); !has {
			screen := canvas.Bounds()
			c.SetOuterBox(&screen)
		}
	}

	injected := &InjectedTouches{}
	opts := append([]Option{WithLogger(cfg.Logger)}, cfg.Options...)
	g := &game{
		cfg:      cfg,
		root:     root,
		canvas:   canvas,
		manip:    NewManipulator(cfg.Candidates, opts...),
		touches:  MergeSources(injected, &EbitenTouches{MouseAsTouch: cfg.MouseAsTouch}),
		injected: injected,
		logger:   cfg.Logger,
	}

	st := CheckTree(root)
	g.logger.Info("element tree ready",
		"elements", st.Elements, "movable", st.Movable, "depth", st.MaxDepth,
		"width", cfg.Width, "height", cfg.Height)
	return g
}

// Update advances one tick.
func (g *game) Update() error {
	if !g.drawn {
		g.root.Draw()
		g.drawn = true
	}
	if g.cfg.Script != nil {
		g.cfg.Script.Step(g.injected, g.canvas)
		if g.cfg.ExitWhenDone && g.cfg.Script.Done() {
			g.logger.Info("test script finished", "tick", g.tick)
			return ebiten.Termination
		}
	}

	g.tick++
	g.buf = g.touches.AppendTouches(g.buf[:0])
	g.manip.Tick(g.tick, g.buf)
	UpdateTree(g.root, 1)
	return nil
}

// Draw blits the canvas and overlays.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.RGBA())
	screen.DrawImage(g.canvas.Image(), nil)

	var traces string
	if g.cfg.Debug {
		traces = FormatTraces(g.manip.Traces())
	}
	drawOverlay(screen, g.cfg.ShowFPS, traces)
	g.canvas.flushScreenshots()
}

// Layout keeps the logical screen at the configured display size.
func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
