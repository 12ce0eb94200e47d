package minigames

import (
	"context"
	"errors"
	"fmt"

	"github.com/arcadesuite/gamebox/internal/console"
)

var (
	ErrDivideByZero     = errors.New("cannot divide by zero")
	ErrUnknownOperation = errors.New("unknown operation")
)

// Apply - performs one of the four basic operations.
func Apply(operation string, first, second float64) (float64, error) {
	switch operation {
	case "+":
		return first + second, nil
	case "-":
		return first - second, nil
	case "*":
		return first * second, nil
	case "/":
		if second == 0 {
			return 0, ErrDivideByZero
		}
		return first / second, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}
}

type Calculator struct {
	console *console.Console
}

func NewCalculator(terminal *console.Console) *Calculator {
	return &Calculator{console: terminal}
}

func (that *Calculator) Name() string {
	return "Simple Calculator"
}

func (that *Calculator) Play(ctx context.Context) error {
	that.console.Clear()
	that.console.Title("Simple Calculator")

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		first, err := that.console.PromptFloat("Enter first number: ")
		if err != nil {
			return err
		}

		var operation string
		for {
			operation, err = that.console.ReadLine("Enter operation (+, -, *, /): ")
			if err != nil {
				return err
			}

			if operation == "+" || operation == "-" || operation == "*" || operation == "/" {
				break
			}

			that.console.Println("Please enter a valid operation: +, -, *, or /")
		}

		second, err := that.console.PromptFloat("Enter second number: ")
		if err != nil {
			return err
		}

		result, err := Apply(operation, first, second)
		if err != nil {
			that.console.Printf("Error: %v\n", err)

			retry, err := that.console.YesNo("Do you want to try again?")
			if err != nil {
				return err
			}

			if !retry {
				return nil
			}
			continue
		}

		that.console.Printf("Result: %g\n", result)

		again, err := that.console.YesNo("\nDo you want to perform another calculation?")
		if err != nil {
			return err
		}

		if !again {
			return nil
		}
	}
}
