package flappy

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// StepResult is returned after each tick.
type StepResult struct {
	Mode   Mode
	Score  int
	Best   int
	Passed int            // Obstacles cleared during this tick
	Cause  CollisionCause // Set on the tick that ended the run
}

// Ended reports whether this tick ended the run.
func (r StepResult) Ended() bool {
	return r.Cause != CauseNone
}

// Engine is one game session: it owns the actor, the obstacles, the score
// and the mode, and is the only writer of any of them. It is not safe for
// concurrent use; the platform calls it from a single goroutine.
type Engine struct {
	cfg       config.FlappyConfig
	actor     Actor
	obstacles *ObstacleManager
	mode      Mode
	score     int
	best      int
	ticks     int
	store     ScoreStore
	logger    *log.Logger
	seed      int64
}

// Option customizes an Engine.
type Option func(*Engine)

// WithStore sets the best-score store. Without it the best score lives only
// as long as the engine.
func WithStore(s ScoreStore) Option {
	return func(e *Engine) {
		if s != nil {
			e.store = s
		}
	}
}

// WithLogger sets the logger. Without it nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed fixes the RNG seed for reproducible obstacle layouts.
// A zero seed means time-based.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// NewEngine creates a session in ModeNotStarted and reads the best score
// from the store once.
func NewEngine(cfg config.FlappyConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		store:  nopStore{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.seed == 0 {
		e.seed = time.Now().UnixNano()
	}

	e.actor = NewActor(cfg)
	e.obstacles = NewObstacleManager(cfg.Obstacles, rand.New(rand.NewSource(e.seed)))
	e.best = e.loadBest()
	return e
}

// loadBest reads the persisted best score, falling back to 0.
func (e *Engine) loadBest() int {
	best, err := e.store.Load()
	if err != nil {
		e.logger.Warn("could not load best score", "err", err)
		return 0
	}
	if best < 0 {
		e.logger.Warn("ignoring negative best score", "best", best)
		return 0
	}
	return best
}

// Handle applies a command if it is valid in the current mode and reports
// whether it was applied. Invalid commands are ignored.
func (e *Engine) Handle(cmd Command) bool {
	switch {
	case cmd == CommandStart && e.mode == ModeNotStarted,
		cmd == CommandRestart && e.mode == ModeOver:
		e.reset()
		e.setMode(ModeRunning, cmd.String())
		return true
	case cmd == CommandFlap && e.mode == ModeRunning:
		e.actor.ApplyImpulse()
		return true
	}

	e.logger.Debug("ignored command", "command", cmd, "mode", e.mode)
	return false
}

// Step applies the actions queued since the previous tick, in order, then
// advances the simulation by one tick.
func (e *Engine) Step(in core.InputFrame) StepResult {
	for _, a := range in.Actions() {
		if cmd, ok := e.commandFor(a); ok {
			e.Handle(cmd)
		}
	}
	return e.Tick()
}

// commandFor translates a platform action. The primary action is resolved
// against the mode at the time it is applied.
func (e *Engine) commandFor(a core.Action) (Command, bool) {
	switch a {
	case core.ActionPrimary:
		return PrimaryCommand(e.mode), true
	case core.ActionStart:
		return CommandStart, true
	case core.ActionRestart:
		return CommandRestart, true
	default:
		return 0, false
	}
}

// Tick advances the simulation by one fixed step. Outside ModeRunning it
// changes nothing.
func (e *Engine) Tick() StepResult {
	if e.mode != ModeRunning {
		return e.result(Evaluation{})
	}

	e.ticks++
	e.actor.Integrate(e.cfg.Surface.Height)
	e.obstacles.Tick(e.ticks, e.cfg.Surface.Width, e.cfg.Surface.Height)
	return e.result(e.evaluate())
}

// evaluate runs collision and scoring and applies the outcome.
func (e *Engine) evaluate() Evaluation {
	ev := Evaluate(e.actor.Box(), e.obstacles.Obstacles(), Rules{
		ObstacleWidth: e.obstacles.Width(),
		GapHeight:     e.obstacles.GapHeight(),
		SurfaceHeight: e.cfg.Surface.Height,
	})

	e.score += ev.Passed
	if e.score > e.best {
		e.best = e.score
		if err := e.store.Save(e.best); err != nil {
			e.logger.Warn("could not save best score", "best", e.best, "err", err)
		}
	}

	if ev.Collided() {
		e.logger.Debug("collision", "cause", ev.Cause, "tick", e.ticks, "score", e.score)
		e.setMode(ModeOver, ev.Cause.String())
	}
	return ev
}

// reset restores the session data for a new run. The best score survives.
func (e *Engine) reset() {
	e.score = 0
	e.ticks = 0
	e.obstacles.Reset()
	e.actor.Reset(e.cfg.Surface.Height)
}

func (e *Engine) setMode(m Mode, reason string) {
	e.logger.Debug("mode change", "from", e.mode, "to", m, "reason", reason)
	e.mode = m
}

func (e *Engine) result(ev Evaluation) StepResult {
	return StepResult{
		Mode:   e.mode,
		Score:  e.score,
		Best:   e.best,
		Passed: ev.Passed,
		Cause:  ev.Cause,
	}
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Score returns the score of the current run.
func (e *Engine) Score() int {
	return e.score
}

// Best returns the best score seen by this engine, including the value
// loaded from the store.
func (e *Engine) Best() int {
	return e.best
}

// Ticks returns the number of ticks simulated in the current run.
func (e *Engine) Ticks() int {
	return e.ticks
}

// Seed returns the seed the obstacle RNG was created with.
func (e *Engine) Seed() int64 {
	return e.seed
}
