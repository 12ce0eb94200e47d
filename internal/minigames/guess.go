// Package minigames holds the thin single-cycle games of the suite: number
// guessing, coin flip, temperature converter, calculator and dice roller.
package minigames

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/arcadesuite/gamebox/internal/console"
)

type Guess struct {
	console *console.Console
	rng     *rand.Rand
}

func NewGuess(terminal *console.Console, rng *rand.Rand) *Guess {
	return &Guess{
		console: terminal,
		rng:     rng,
	}
}

func (that *Guess) Name() string {
	return "Number Guessing Game"
}

func (that *Guess) Play(ctx context.Context) error {
	that.console.Clear()
	that.console.Title("Number Guessing Game")

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		attempts, err := that.console.PromptIntAtLeast(
			"Enter the number of attempts you would like to have: ",
			1, "You must have at least 1 attempt.")
		if err != nil {
			return err
		}

		highest, err := that.console.PromptInt("Enter the highest number for the range: ")
		if err != nil {
			return err
		}

		lowest, err := that.console.PromptIntAtMost(
			"Enter the lowest number for the range: ",
			highest, fmt.Sprintf("The lowest number must be less than or equal to %d.", highest))
		if err != nil {
			return err
		}

		target := that.rng.Intn(highest-lowest+1) + lowest

		that.console.Printf("\nI'm thinking of a number between %d and %d.\n", lowest, highest)
		that.console.Printf("You have %d attempts to guess it.\n", attempts)

		var (
			guesses []int
			won     bool
			used    int
		)

		for attempt := 1; attempt <= attempts; attempt++ {
			used = attempt

			guess, err := that.console.PromptIntRange(
				fmt.Sprintf("\nAttempt %d: ", attempt),
				lowest, highest,
				fmt.Sprintf("Please enter a number between %d and %d.", lowest, highest))
			if err != nil {
				return err
			}

			guesses = append(guesses, guess)

			if guess == target {
				that.console.Printf("Correct! You guessed the number in %d attempts.\n", attempt)
				won = true
				break
			}

			if guess < target {
				that.console.Println("Too low!")
			} else {
				that.console.Println("Too high!")
			}

			if attempt == attempts {
				that.console.Println("\nYou've run out of attempts!")
				that.console.Printf("The number was %d.\n", target)
			}
		}

		that.printSummary(target, used, won, guesses)

		again, err := that.console.YesNo("\nDo you want to play again?")
		if err != nil {
			return err
		}

		if !again {
			return nil
		}
	}
}

func (that *Guess) printSummary(target, used int, won bool, guesses []int) {
	var odd, even []int
	for _, guess := range guesses {
		if guess%2 == 0 {
			even = append(even, guess)
		} else {
			odd = append(odd, guess)
		}
	}

	result := "You did not guess correctly!"
	if won {
		result = "You guessed correctly!"
	}

	that.console.Println("\nGame Summary")
	that.console.Printf("- Result: %s\n", result)
	that.console.Printf("- Target number: %d\n", target)
	that.console.Printf("- Number of attempts used: %d\n", used)
	that.console.Printf("- Your guesses: %v\n", guesses)
	that.console.Printf("- Even guesses: %v\n", even)
	that.console.Printf("- Odd guesses: %v\n", odd)
}
