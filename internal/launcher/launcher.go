// Package launcher presents the top-level menu and dispatches to whichever
// game the player picks. Each game owns its interaction loop until it
// returns.
package launcher

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/arcadesuite/gamebox/internal/apperror"
	"github.com/arcadesuite/gamebox/internal/console"
)

// Game is the sole contract a playable game has to satisfy.
type Game interface {
	Name() string
	Play(ctx context.Context) error
}

type Launcher struct {
	logger  *slog.Logger
	console *console.Console
	games   []Game
}

func New(logger *slog.Logger, terminal *console.Console, games ...Game) *Launcher {
	return &Launcher{
		logger:  logger,
		console: terminal,
		games:   games,
	}
}

// Run - loops over the suite menu until the player quits, the input stream
// closes or the context is canceled.
func (that *Launcher) Run(ctx context.Context) error {
	log := that.logger.With("component", "launcher")

	for {
		if ctx.Err() != nil {
			return nil
		}

		quitOption := len(that.games) + 1

		that.console.Clear()
		that.console.Title("Welcome to the All-In-One Game Suite!")
		that.console.Println("Please choose an option:")

		for i, game := range that.games {
			that.console.Printf("%d. %s\n", i+1, game.Name())
		}
		that.console.Printf("%d. Quit\n", quitOption)

		answer, err := that.console.ReadLine("\nEnter your choice: ")
		if err != nil {
			if errors.Is(err, apperror.ErrInputClosed) {
				return nil
			}
			return err
		}

		selection, convErr := strconv.Atoi(answer)
		if convErr != nil || selection < 1 || selection > quitOption {
			that.console.Println("Invalid option. Please try again.")
			if err = that.console.Pause(); err != nil {
				if errors.Is(err, apperror.ErrInputClosed) {
					return nil
				}
				return err
			}
			continue
		}

		if selection == quitOption {
			that.console.Clear()
			that.console.Println("Thank you for playing. Goodbye!")
			return nil
		}

		game := that.games[selection-1]
		sessionID := uuid.NewString()
		startedAt := time.Now()

		log.Info("game session started", "game", game.Name(), "session_id", sessionID)

		if err = game.Play(ctx); err != nil {
			if errors.Is(err, apperror.ErrInputClosed) {
				return nil
			}

			log.Error("game session failed", "game", game.Name(), "session_id", sessionID, "error", err)

			return err
		}

		log.Info("game session finished", "game", game.Name(), "session_id", sessionID, "duration", time.Since(startedAt).String())
	}
}
