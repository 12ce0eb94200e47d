package tictactoe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadesuite/gamebox/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	game := NewGame()

	// Then: every cell carries its position label
	require.Equal(t, [9]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, game.Board)

	// Then: all nine positions are available and X starts
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, game.Available)
	require.Equal(t, MarkX, game.Turn)
}

func TestGame_Place(t *testing.T) {
	t.Run("Place at center", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: X takes position 5
		err := game.Place(5)
		require.NoError(t, err)

		// Then: the mark lands in the middle cell and 5 is gone
		require.Equal(t, MarkX, game.Board[4])
		require.Len(t, game.Available, 8)
		require.NotContains(t, game.Available, 5)

		// Then: the surrounding cells keep their labels
		require.Equal(t, "4", game.Board[3])
		require.Equal(t, "6", game.Board[5])
	})

	t.Run("Error on taken position", func(t *testing.T) {
		// Given: a game where 5 is already taken
		game := NewGame()
		require.NoError(t, game.Place(5))
		game.SwitchTurn()

		before := append([]int(nil), game.Available...)

		// When: the next player tries the same position
		err := game.Place(5)

		// Then: ErrPositionTaken and no state change
		require.ErrorIs(t, err, apperror.ErrPositionTaken)
		require.Equal(t, before, game.Available)
		require.Equal(t, MarkX, game.Board[4])
	})

	t.Run("Error on out of range position", func(t *testing.T) {
		game := NewGame()

		// When: positions outside 1..9 are used
		require.ErrorIs(t, game.Place(0), apperror.ErrInvalidPosition)
		require.ErrorIs(t, game.Place(10), apperror.ErrInvalidPosition)

		// Then: nothing changed
		assert.Len(t, game.Available, 9)
	})

	t.Run("Each valid placement removes exactly one position", func(t *testing.T) {
		game := NewGame()

		for i, position := range []int{1, 9, 5, 3, 7} {
			require.NoError(t, game.Place(position))
			require.Len(t, game.Available, 9-i-1)
			game.SwitchTurn()
		}
	})
}

func TestGame_Evaluate(t *testing.T) {
	t.Run("All eight winning lines", func(t *testing.T) {
		for _, line := range winLines {
			t.Run(fmt.Sprintf("line %v", line), func(t *testing.T) {
				// Given: a game where X fills the whole line
				game := NewGame()
				for _, index := range line {
					game.Board[index] = MarkX
				}

				// Then: X is declared the winner
				require.Equal(t, MarkX, game.Evaluate())
			})
		}
	})

	t.Run("Winner O on first row", func(t *testing.T) {
		game := NewGame()
		game.Board[0], game.Board[1], game.Board[2] = MarkO, MarkO, MarkO

		require.Equal(t, MarkO, game.Evaluate())
	})

	t.Run("Tie on full board without a line", func(t *testing.T) {
		// Given: a full board where no line holds three identical marks
		game := NewGame()
		game.Board = [9]string{MarkO, MarkX, MarkO, MarkO, MarkX, MarkX, MarkX, MarkO, MarkX}
		game.Available = nil

		// Then: the game is a tie
		require.Equal(t, ResultTie, game.Evaluate())
	})

	t.Run("Undecided while moves remain", func(t *testing.T) {
		game := NewGame()
		require.NoError(t, game.Place(1))

		assert.Equal(t, ResultNone, game.Evaluate())
	})

	t.Run("Labels never count as a line", func(t *testing.T) {
		// Given: a fresh board full of distinct labels
		game := NewGame()

		// Then: no winner is detected
		assert.Equal(t, ResultNone, game.Evaluate())
	})
}

func TestGame_SwitchTurn(t *testing.T) {
	game := NewGame()

	// When: the turn is toggled twice
	game.SwitchTurn()
	require.Equal(t, MarkO, game.Turn)
	game.SwitchTurn()

	// Then: the original player is back
	require.Equal(t, MarkX, game.Turn)
}

func TestGame_Reset(t *testing.T) {
	// Given: a game mid-session
	game := NewGame()
	require.NoError(t, game.Place(5))
	game.SwitchTurn()

	// When: the game is reset
	game.Reset()

	// Then: board, positions and turn are back to the initial state
	require.Equal(t, *NewGame(), *game)
}

func TestPositionToCell(t *testing.T) {
	tests := []struct {
		position int
		row, col int
	}{
		{1, 0, 0},
		{2, 0, 1},
		{3, 0, 2},
		{4, 1, 0},
		{5, 1, 1},
		{7, 2, 0},
		{9, 2, 2},
	}

	for _, tt := range tests {
		row, col := PositionToCell(tt.position)
		assert.Equal(t, tt.row, row, "position %d", tt.position)
		assert.Equal(t, tt.col, col, "position %d", tt.position)
	}
}
