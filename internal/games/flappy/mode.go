// Package flappy implements the Flappy Bird simulation: an actor falling
// under gravity that must fly through gaps in scrolling obstacles.
//
// The package is pure game logic. Drawing goes through the Canvas port,
// persistence through ScoreStore, and the platform delivers input as
// commands between ticks.
package flappy

// Mode is the authoritative game mode.
type Mode int

const (
	ModeNotStarted Mode = iota
	ModeRunning
	ModeOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNotStarted:
		return "not_started"
	case ModeRunning:
		return "running"
	case ModeOver:
		return "over"
	default:
		return "unknown"
	}
}

// Command is an external request to the state machine.
type Command int

const (
	CommandFlap Command = iota
	CommandStart
	CommandRestart
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandFlap:
		return "flap"
	case CommandStart:
		return "start"
	case CommandRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// PrimaryCommand maps the one-button control to the command that makes sense
// in the given mode: start from the title screen, flap while running,
// restart after game over.
func PrimaryCommand(m Mode) Command {
	switch m {
	case ModeNotStarted:
		return CommandStart
	case ModeOver:
		return CommandRestart
	default:
		return CommandFlap
	}
}
