package minigames

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/arcadesuite/gamebox/internal/console"
)

const (
	headsResult = "Heads"
	tailsResult = "Tails"
)

type CoinFlip struct {
	console *console.Console
	rng     *rand.Rand
	delay   time.Duration
}

func NewCoinFlip(terminal *console.Console, rng *rand.Rand, delay time.Duration) *CoinFlip {
	return &CoinFlip{
		console: terminal,
		rng:     rng,
		delay:   delay,
	}
}

func (that *CoinFlip) Name() string {
	return "Coin Flip"
}

func (that *CoinFlip) Play(ctx context.Context) error {
	that.console.Clear()
	that.console.Title("Coin Flip")

	for {
		if _, err := that.console.ReadLine("\nPress Enter to flip a coin..."); err != nil {
			return err
		}

		that.console.Clear()
		that.console.Println("Flipping coin...")

		// presentation pacing only
		select {
		case <-time.After(that.delay):
		case <-ctx.Done():
			return fmt.Errorf("session interrupted: %w", ctx.Err())
		}

		result := headsResult
		if that.rng.Intn(2) == 1 {
			result = tailsResult
		}

		that.console.Printf("The coin landed on: %s!\n", result)

		again, err := that.console.YesNo("\nDo you want to flip again?")
		if err != nil {
			return err
		}

		if !again {
			return nil
		}
	}
}
