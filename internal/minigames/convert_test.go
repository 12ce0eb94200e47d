package minigames

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureConversions(t *testing.T) {
	assert.InEpsilon(t, 212.0, CelsiusToFahrenheit(100), 1e-9)
	assert.InEpsilon(t, 100.0, FahrenheitToCelsius(212), 1e-9)
	assert.InDelta(t, 0.0, FahrenheitToCelsius(32), 1e-9)
	assert.InEpsilon(t, 32.0, CelsiusToFahrenheit(0), 1e-9)
}

func TestConverter_Play(t *testing.T) {
	t.Run("Fahrenheit to Celsius", func(t *testing.T) {
		terminal, out := newTestConsole("212\nC\nno\n")
		game := NewConverter(terminal)

		err := game.Play(context.Background())
		require.NoError(t, err)

		require.Contains(t, out.String(), "212°F is 100.00°C")
	})

	t.Run("Celsius to Fahrenheit with lowercase unit", func(t *testing.T) {
		terminal, out := newTestConsole("100\nf\nno\n")
		game := NewConverter(terminal)

		err := game.Play(context.Background())
		require.NoError(t, err)

		require.Contains(t, out.String(), "100°C is 212.00°F")
	})

	t.Run("Unknown unit re-prompts", func(t *testing.T) {
		terminal, out := newTestConsole("0\nK\nC\nno\n")
		game := NewConverter(terminal)

		err := game.Play(context.Background())
		require.NoError(t, err)

		require.Contains(t, out.String(), "Please enter either 'C' for Celsius or 'F' for Fahrenheit.")
	})
}
