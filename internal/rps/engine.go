package rps

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/arcadesuite/gamebox/internal/console"
	"github.com/arcadesuite/gamebox/internal/repository"
)

// state enumerates the menu machine. Navigation is a plain loop over these
// values rather than menus re-invoking themselves, so repeated invalid input
// never grows the stack.
type state int

const (
	stateMainMenu state = iota
	stateSettings
	stateNames
	stateRound
	statePostRound
	stateExit
)

// Engine holds everything that survives across rounds and menu visits:
// settings, acquired names and the scoreboard.
type Engine struct {
	logger  *slog.Logger
	console *console.Console
	rng     *rand.Rand
	scores  repository.Scoreboard

	defaults Settings
	settings Settings

	hasNames      bool
	playerOneName string
	playerTwoName string
}

func NewEngine(logger *slog.Logger, terminal *console.Console, rng *rand.Rand, scores repository.Scoreboard, defaults Settings) *Engine {
	engine := &Engine{
		logger:   logger,
		console:  terminal,
		rng:      rng,
		scores:   scores,
		defaults: defaults,
	}
	engine.resetSettings()

	return engine
}

func (that *Engine) Name() string {
	return "Rock-Paper-Scissors"
}

// resetSettings - restores the configured defaults, drops acquired names and
// zeroes the scoreboard.
func (that *Engine) resetSettings() {
	that.settings = that.defaults
	that.hasNames = false
	that.playerOneName = defaultPlayerOneName
	that.playerTwoName = DefaultOpponentName(that.settings.RequireNames, that.settings.TwoPlayerMode)
	that.scores.Reset()
}

// Play - drives the menu state machine until the player leaves the game.
func (that *Engine) Play(ctx context.Context) error {
	log := that.logger.With("component", "rps")

	current := stateMainMenu
	for current != stateExit {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		var err error

		switch current {
		case stateMainMenu:
			current, err = that.mainMenu()
		case stateSettings:
			current, err = that.settingsMenu()
		case stateNames:
			current, err = that.acquireNames()
		case stateRound:
			current, err = that.playRound(log)
		case statePostRound:
			current, err = that.postRoundMenu()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (that *Engine) mainMenu() (state, error) {
	that.console.Clear()
	that.console.Title("Rock, Paper, Scissors!")
	that.console.Println(`The game where Rock beats Scissors, Scissors beats Paper, and Paper beats Rock!
Pro tip 1: You can use the numbers to choose.
Pro tip 2: Type "menu" to return to the menu at any time.

Please choose an option:
1. New Game
2. Settings
3. Back to Main Menu`)
	that.console.Println()

	choice, err := that.console.ReadToken("Enter your choice: ")
	if err != nil {
		return stateExit, err
	}

	switch {
	case choice == "1" || choice == "new game" || choice == "n":
		if that.settings.RequireNames && !that.hasNames {
			return stateNames, nil
		}
		return stateRound, nil
	case choice == "2" || choice == "settings" || choice == "s":
		return stateSettings, nil
	case choice == "3" || choice == "back to main menu" || choice == "b" || IsEscapeToken(choice):
		return stateExit, nil
	default:
		that.console.Println("Invalid option. Please try again.")
		return stateMainMenu, nil
	}
}

// acquireNames - asks for player names per the current settings. An escape
// token aborts back to the menu without marking the names as acquired.
func (that *Engine) acquireNames() (state, error) {
	that.console.Clear()

	name, err := that.console.ReadLine("Player 1, enter your name: ")
	if err != nil {
		return stateExit, err
	}

	if IsEscapeToken(name) {
		return stateMainMenu, nil
	}

	that.playerOneName = name

	if that.settings.TwoPlayerMode {
		name, err = that.console.ReadLine("Player 2, enter your name: ")
		if err != nil {
			return stateExit, err
		}

		if IsEscapeToken(name) {
			return stateMainMenu, nil
		}

		that.playerTwoName = name
		that.console.Printf("Hello %s and %s!\n", that.playerOneName, that.playerTwoName)
	} else {
		that.console.Printf("Hello %s. You'll be playing against %s.\n", that.playerOneName, that.playerTwoName)
	}

	if err = that.console.Pause(); err != nil {
		return stateExit, err
	}

	that.hasNames = true

	return stateRound, nil
}

func (that *Engine) playRound(log *slog.Logger) (state, error) {
	that.console.Clear()

	first, escaped, err := that.playerChoice(that.playerOneName)
	if err != nil {
		return stateExit, err
	}
	if escaped {
		return stateMainMenu, nil
	}

	that.console.Clear()

	var second Choice
	if that.settings.TwoPlayerMode {
		second, escaped, err = that.playerChoice(that.playerTwoName)
		if err != nil {
			return stateExit, err
		}
		if escaped {
			return stateMainMenu, nil
		}
	} else {
		second = RandomChoice(that.rng)
	}

	that.console.Clear()
	that.console.Printf("%s chose %s\n", that.playerOneName, first)
	that.console.Printf("%s chose %s\n", that.playerTwoName, second)

	outcome := Resolve(first, second)
	switch outcome {
	case OutcomePlayerOne:
		that.console.Success(fmt.Sprintf("%s wins!", that.playerOneName))
		that.scores.Increment(repository.PlayerOne)
	case OutcomePlayerTwo:
		that.console.Success(fmt.Sprintf("%s wins!", that.playerTwoName))
		that.scores.Increment(repository.PlayerTwo)
	case OutcomeTie:
		that.console.Println("It's a tie!")
	}

	log.Info("round resolved", "player1", first, "player2", second, "outcome", outcome.String())

	that.printScores()

	if err = that.console.Pause(); err != nil {
		return stateExit, err
	}

	return statePostRound, nil
}

// playerChoice - reads one participant's choice through the alias table.
// Unrecognized tokens re-prompt; the escape token aborts the round.
func (that *Engine) playerChoice(name string) (Choice, bool, error) {
	prompt := fmt.Sprintf("%s, please choose:\n1. Rock\n2. Paper\n3. Scissors\n", name)

	for {
		raw, err := that.console.ReadToken(prompt)
		if err != nil {
			return "", false, err
		}

		if IsEscapeToken(raw) {
			return "", true, nil
		}

		choice, ok := ParseChoice(raw)
		if !ok {
			that.console.Println("Invalid choice. Please try again.")
			continue
		}

		return choice, false, nil
	}
}

func (that *Engine) postRoundMenu() (state, error) {
	that.console.Clear()
	that.printScores()
	that.console.Println(`
What would you like to do?
1. Play Again
2. Rock-Paper-Scissors Menu
3. Back to Main Menu`)
	that.console.Println()

	choice, err := that.console.ReadToken("Enter your choice: ")
	if err != nil {
		return stateExit, err
	}

	switch {
	case choice == "1" || choice == "play again" || choice == "p":
		return stateRound, nil
	case choice == "2" || choice == "rock-paper-scissors menu" || choice == "r":
		return stateMainMenu, nil
	case choice == "3" || choice == "back to main menu" || choice == "b" || IsEscapeToken(choice):
		return stateExit, nil
	default:
		that.console.Println("Invalid option. Please try again.")
		return statePostRound, nil
	}
}

func (that *Engine) settingsMenu() (state, error) {
	that.console.Clear()
	that.console.Printf(`Settings:
1. Require Names: %t
2. Two Player Mode: %t
3. Reset to Default Settings
4. Back to Rock-Paper-Scissors Menu

`, that.settings.RequireNames, that.settings.TwoPlayerMode)

	choice, err := that.console.ReadToken("Enter your choice: ")
	if err != nil {
		return stateExit, err
	}

	switch {
	case choice == "1" || choice == "require names" || choice == "n":
		that.settings.RequireNames = !that.settings.RequireNames
		that.hasNames = false
		return stateSettings, nil
	case choice == "2" || choice == "two player mode" || choice == "t":
		that.settings.TwoPlayerMode = !that.settings.TwoPlayerMode
		that.playerTwoName = DefaultOpponentName(that.settings.RequireNames, that.settings.TwoPlayerMode)
		return stateSettings, nil
	case choice == "3" || choice == "reset to default settings" || choice == "d":
		that.resetSettings()
		return stateSettings, nil
	case choice == "4" || choice == "back to rock-paper-scissors menu" || choice == "b":
		return stateMainMenu, nil
	case IsEscapeToken(choice):
		return stateMainMenu, nil
	default:
		that.console.Println("Invalid option. Please try again.")
		return stateSettings, nil
	}
}

func (that *Engine) printScores() {
	that.console.Printf("\n%s's score: %d\n", that.playerOneName, that.scores.Get(repository.PlayerOne))
	that.console.Printf("%s's score: %d\n", that.playerTwoName, that.scores.Get(repository.PlayerTwo))
}
