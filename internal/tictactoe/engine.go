package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/arcadesuite/gamebox/internal/console"
)

// Engine runs interactive sessions of the grid game. The opponent mode
// (second human or random bot) is chosen once per session and stays fixed.
type Engine struct {
	logger  *slog.Logger
	console *console.Console
	rng     *rand.Rand
	game    *Game
}

func NewEngine(logger *slog.Logger, terminal *console.Console, rng *rand.Rand) *Engine {
	return &Engine{
		logger:  logger,
		console: terminal,
		rng:     rng,
		game:    NewGame(),
	}
}

func (that *Engine) Name() string {
	return "Tic-Tac-Toe"
}

// Play - runs the full session loop until the player declines a rematch.
func (that *Engine) Play(ctx context.Context) error {
	log := that.logger.With("component", "tictactoe")

	that.console.Clear()
	that.console.Title("Tic-Tac-Toe")

	botMode, err := that.console.YesNo("Do you want to play against the bot?")
	if err != nil {
		return err
	}

	if botMode {
		that.console.Println("Bot mode enabled!")
	}

	that.game.Reset()

	for {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		that.render()

		if err = that.humanTurn(); err != nil {
			return err
		}

		decided, rematch, err := that.concludeIfDecided(log)
		if err != nil {
			return err
		}

		if decided {
			if !rematch {
				return nil
			}
			continue
		}

		that.game.SwitchTurn()

		if !botMode || len(that.game.Available) == 0 {
			continue
		}

		that.botTurn(log)

		decided, rematch, err = that.concludeIfDecided(log)
		if err != nil {
			return err
		}

		if decided {
			if !rematch {
				return nil
			}
			continue
		}

		that.game.SwitchTurn()
	}
}

// humanTurn - prompts until an available position is given, then places the
// current mark there. Invalid input never consumes the turn.
func (that *Engine) humanTurn() error {
	for {
		that.console.Printf("Available moves: %v\n", that.game.Available)

		position, err := that.console.PromptInt(fmt.Sprintf("Player %s, enter your move: ", that.game.Turn))
		if err != nil {
			return err
		}

		if err = that.game.Place(position); err != nil {
			that.console.Println("Move isn't available. Please select from the available moves!")
			continue
		}

		return nil
	}
}

// botTurn - picks uniformly at random from the available positions.
func (that *Engine) botTurn(log *slog.Logger) {
	position := that.game.Available[that.rng.Intn(len(that.game.Available))]
	that.console.Printf("Bot's move: %d\n", position)

	if err := that.game.Place(position); err != nil {
		log.Error("bot produced an illegal move", "position", position, "error", err)
	}
}

// concludeIfDecided - checks for a winner or tie; on a decided game it
// announces the result and offers a rematch, resetting the board if accepted.
func (that *Engine) concludeIfDecided(log *slog.Logger) (decided, rematch bool, err error) {
	result := that.game.Evaluate()
	if result == ResultNone {
		return false, false, nil
	}

	that.console.Clear()
	that.render()

	if result == ResultTie {
		that.console.Success("It's a tie!")
	} else {
		that.console.Success(fmt.Sprintf("Player %s wins!", result))
	}

	log.Info("game finished", "result", result)

	rematch, err = that.console.YesNo("Would you like to play again?")
	if err != nil {
		return false, false, err
	}

	if rematch {
		that.game.Reset()
	}

	return true, rematch, nil
}

func (that *Engine) render() {
	for row := 0; row < 3; row++ {
		that.console.Println(strings.Join(that.game.Board[row*3:row*3+3], " | "))
		that.console.Println(strings.Repeat("-", 9))
	}
}
