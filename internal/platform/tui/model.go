package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// GameID is the key finished runs are recorded under in the score history.
const GameID = "flappy"

// Options configures a game model.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig

	// Best persists the best score. Nil keeps it in memory.
	Best flappy.ScoreStore
	// History records finished runs. Nil disables history.
	History *storage.Store
	// Logger receives engine and platform events. Nil discards them.
	Logger *log.Logger
	// ScreenshotDir is where Ctrl+S writes screen dumps.
	// Empty means ~/.arcade/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one Flappy Bird session.
type Model struct {
	engine        *flappy.Engine
	screen        *core.Screen
	canvas        *ScreenCanvas
	history       *storage.Store
	logger        *log.Logger
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	pending       core.InputFrame
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model. The engine is created here so
// the best score is read once per session.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	best := opts.Best
	if best == nil {
		best = flappy.NewMemoryStore(0)
	}

	engine := flappy.NewEngine(opts.Game,
		flappy.WithStore(best),
		flappy.WithLogger(logger),
		flappy.WithSeed(opts.Runtime.Seed),
	)

	// Last row is reserved for the help bar
	screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH-1)
	canvas := NewScreenCanvas(screen, opts.Game.Surface.Width, opts.Game.Surface.Height)
	canvas.RegisterSprite(flappy.ActorSprite, core.Cell{Rune: '●', Color: core.ColorBrightYellow})

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		engine:        engine,
		screen:        screen,
		canvas:        canvas,
		history:       opts.History,
		logger:        logger,
		config:        opts.Runtime,
		keys:          DefaultKeyMap(),
		help:          h,
		pending:       core.NewInputFrame(),
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions until the next tick. Quit and screenshot
// are handled immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	default:
		m.pending.Push(action)
	}
	return m, nil
}

// handleResize only rescales the canvas; the simulation keeps its own
// world size, so a resize never disturbs a run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies queued input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.engine.Step(m.pending)
	m.pending.Clear()

	if res.Ended() {
		m.logger.Info("game over", "score", res.Score, "best", res.Best, "cause", res.Cause)
		m.recordRun(res.Score)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun adds a finished run to the history. Empty runs are skipped.
func (m Model) recordRun(score int) {
	if m.history == nil || score <= 0 {
		return
	}
	runID, err := m.history.SaveScore(GameID, score)
	if err != nil {
		m.logger.Warn("could not record run", "score", score, "err", err)
		return
	}
	m.logger.Debug("run recorded", "run", runID, "score", score)
}

// saveScreenshot writes the current frame as plain text and returns the
// file path.
func (m Model) saveScreenshot() (string, error) {
	flappy.Draw(m.canvas, m.engine.Snapshot())

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", GameID, timestamp))
	if err := os.WriteFile(path, []byte(screenText(m.screen)), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: cannot write %s: %w", path, err)
	}
	return path, nil
}

// screenText returns the screen as plain text without trailing blanks.
func screenText(s *core.Screen) string {
	var b strings.Builder
	for y := 0; y < s.Height(); y++ {
		b.WriteString(strings.TrimRight(s.Row(y), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// View renders the current frame followed by the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	flappy.Draw(m.canvas, m.engine.Snapshot())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Engine exposes the running session, mainly for tests.
func (m Model) Engine() *flappy.Engine {
	return m.engine
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
