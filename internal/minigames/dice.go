package minigames

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/arcadesuite/gamebox/internal/console"
)

const minDiceSides = 2

type Dice struct {
	console *console.Console
	rng     *rand.Rand
}

func NewDice(terminal *console.Console, rng *rand.Rand) *Dice {
	return &Dice{
		console: terminal,
		rng:     rng,
	}
}

func (that *Dice) Name() string {
	return "Dice Roller"
}

func (that *Dice) Play(ctx context.Context) error {
	that.console.Clear()
	that.console.Title("Dice Roller")

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		sides, err := that.console.PromptIntAtLeast(
			"Enter number of sides on the dice: ",
			minDiceSides, fmt.Sprintf("A dice must have at least %d sides.", minDiceSides))
		if err != nil {
			return err
		}

		roll := that.rng.Intn(sides) + 1
		that.console.Printf("You rolled a %d!\n", roll)

		again, err := that.console.YesNo("\nDo you want to roll again?")
		if err != nil {
			return err
		}

		if !again {
			return nil
		}
	}
}
