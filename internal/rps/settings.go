package rps

// Settings lives for the lifetime of the engine and is mutated only through
// the settings menu.
type Settings struct {
	RequireNames  bool
	TwoPlayerMode bool
}

const defaultPlayerOneName = "Player 1"

// DefaultOpponentName - derives player 2's default label from both flags.
// The label is "Player 2" only when two-player mode is on and names are not
// required; every other combination labels the opponent "The Bot".
func DefaultOpponentName(requireNames, twoPlayerMode bool) string {
	if twoPlayerMode && !requireNames {
		return "Player 2"
	}

	return "The Bot"
}
