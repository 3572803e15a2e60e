package ducks

// Mode is the top-level state of a game.
type Mode string

const (
	ModeMenu     Mode = "MENU"
	ModePlaying  Mode = "PLAYING"
	ModeLevelUp  Mode = "LEVELUP"
	ModeGameOver Mode = "GAMEOVER"
)

// CanStart reports whether StartGame is accepted.
func (m Mode) CanStart() bool { return m == ModeMenu }

// CanRetry reports whether RetryGame is accepted.
func (m Mode) CanRetry() bool { return m == ModeGameOver }

// CanContinue reports whether ContinueLevel is accepted.
func (m Mode) CanContinue() bool { return m == ModeLevelUp }

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeMenu, ModePlaying, ModeLevelUp, ModeGameOver:
		return true
	}
	return false
}
