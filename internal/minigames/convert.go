package minigames

import (
	"context"
	"fmt"
	"strings"

	"github.com/arcadesuite/gamebox/internal/console"
)

// CelsiusToFahrenheit - converts degrees Celsius to Fahrenheit.
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// FahrenheitToCelsius - converts degrees Fahrenheit to Celsius.
func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

type Converter struct {
	console *console.Console
}

func NewConverter(terminal *console.Console) *Converter {
	return &Converter{console: terminal}
}

func (that *Converter) Name() string {
	return "Temperature Converter"
}

func (that *Converter) Play(ctx context.Context) error {
	that.console.Clear()
	that.console.Title("Temperature Converter")

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		temperature, err := that.console.PromptFloat("Enter temperature: ")
		if err != nil {
			return err
		}

		var unit string
		for {
			unit, err = that.console.ReadLine("Convert to (C/F): ")
			if err != nil {
				return err
			}

			unit = strings.ToUpper(unit)
			if unit == "C" || unit == "F" {
				break
			}

			that.console.Println("Please enter either 'C' for Celsius or 'F' for Fahrenheit.")
		}

		if unit == "C" {
			that.console.Printf("%g°F is %.2f°C\n", temperature, FahrenheitToCelsius(temperature))
		} else {
			that.console.Printf("%g°C is %.2f°F\n", temperature, CelsiusToFahrenheit(temperature))
		}

		again, err := that.console.YesNo("\nDo you want to convert another temperature?")
		if err != nil {
			return err
		}

		if !again {
			return nil
		}
	}
}
