// Package tictactoe implements the 3x3 grid game: board state, move
// validation, win detection and the interactive session engine.
package tictactoe

import (
	"strconv"

	"github.com/arcadesuite/gamebox/internal/apperror"
)

const (
	MarkX = "X"
	MarkO = "O"

	ResultTie  = "-"
	ResultNone = ""
)

const boardSize = 9

// winLines is ordered rows, then columns, then diagonals. Evaluate checks
// them in this order, so the first complete line decides.
var winLines = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game holds the grid state. Each board cell carries its position label
// ("1".."9") while unoccupied, or the mark that took it.
type Game struct {
	Board     [boardSize]string
	Available []int
	Turn      string
}

func NewGame() *Game {
	game := &Game{}
	game.Reset()

	return game
}

// Reset - restores the labelled board, all nine positions and the X turn.
func (that *Game) Reset() {
	that.Available = make([]int, 0, boardSize)
	for position := 1; position <= boardSize; position++ {
		that.Board[position-1] = strconv.Itoa(position)
		that.Available = append(that.Available, position)
	}

	that.Turn = MarkX
}

// PositionToCell - maps a 1-based position label to its (row, col) cell.
// Precondition: 1 <= position <= 9.
func PositionToCell(position int) (int, int) {
	return (position - 1) / 3, (position - 1) % 3
}

// IsAvailable - reports whether the position has not been taken yet.
func (that *Game) IsAvailable(position int) bool {
	for _, available := range that.Available {
		if available == position {
			return true
		}
	}

	return false
}

// Place - writes the current player's mark at the given position and removes
// it from the available set. Invalid input leaves the state untouched.
func (that *Game) Place(position int) error {
	if position < 1 || position > boardSize {
		return apperror.ErrInvalidPosition
	}

	if !that.IsAvailable(position) {
		return apperror.ErrPositionTaken
	}

	row, col := PositionToCell(position)
	that.Board[row*3+col] = that.Turn

	for i, available := range that.Available {
		if available == position {
			that.Available = append(that.Available[:i], that.Available[i+1:]...)
			break
		}
	}

	return nil
}

// SwitchTurn - toggles the current player.
func (that *Game) SwitchTurn() {
	if that.Turn == MarkX {
		that.Turn = MarkO
	} else {
		that.Turn = MarkX
	}
}

// Evaluate - returns the winning mark if any line holds three identical
// marks, ResultTie when no positions remain, or ResultNone while the game is
// still open.
func (that *Game) Evaluate() string {
	for _, line := range winLines {
		a, b, c := that.Board[line[0]], that.Board[line[1]], that.Board[line[2]]
		if (a == MarkX || a == MarkO) && a == b && b == c {
			return a
		}
	}

	if len(that.Available) == 0 {
		return ResultTie
	}

	return ResultNone
}
