package rps

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcadesuite/gamebox/internal/console"
	"github.com/arcadesuite/gamebox/internal/repository"
)

func newTestEngine(input string, defaults Settings) (*Engine, *bytes.Buffer) {
	var out bytes.Buffer

	terminal := console.New(strings.NewReader(input), &out)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rng := rand.New(rand.NewSource(1))

	return NewEngine(logger, terminal, rng, repository.NewMemoryScoreboard(), defaults), &out
}

func TestEngine_Play(t *testing.T) {
	t.Run("Escape during name acquisition keeps names unset", func(t *testing.T) {
		// Given: names are required and the player types the escape token
		engine, _ := newTestEngine("1\nmenu\n3\n", Settings{RequireNames: true})

		// When: the session runs (new game -> escape at the name prompt -> exit)
		err := engine.Play(context.Background())
		require.NoError(t, err)

		// Then: the engine went back to the menu without acquiring names
		require.False(t, engine.hasNames)
	})

	t.Run("Two player rounds resolve against the beats table", func(t *testing.T) {
		// Given: two-player mode without names; rock vs scissors, then paper vs paper
		input := "1\nrock\nscissors\n\n1\npaper\npaper\n\n3\n"
		engine, out := newTestEngine(input, Settings{RequireNames: false, TwoPlayerMode: true})

		// When: both rounds are played
		err := engine.Play(context.Background())
		require.NoError(t, err)

		// Then: player 1 won exactly once, the second round tied
		require.Equal(t, 1, engine.scores.Get(repository.PlayerOne))
		require.Equal(t, 0, engine.scores.Get(repository.PlayerTwo))
		require.Contains(t, out.String(), "Player 1 wins!")
		require.Contains(t, out.String(), "It's a tie!")
		require.Contains(t, out.String(), "Player 1 chose rock")
		require.Contains(t, out.String(), "Player 2 chose scissors")
	})

	t.Run("Bot round changes at most one score", func(t *testing.T) {
		// Given: single-player mode, one round against the bot
		engine, _ := newTestEngine("1\nrock\n\n3\n", Settings{})

		err := engine.Play(context.Background())
		require.NoError(t, err)

		// Then: the round produced a single win or a tie
		total := engine.scores.Get(repository.PlayerOne) + engine.scores.Get(repository.PlayerTwo)
		require.LessOrEqual(t, total, 1)
	})

	t.Run("Unrecognized choice re-prompts without consuming the turn", func(t *testing.T) {
		// Given: junk before a valid choice
		engine, out := newTestEngine("1\nlizard\nrock\n\n3\n", Settings{})

		err := engine.Play(context.Background())
		require.NoError(t, err)

		require.Contains(t, out.String(), "Invalid choice. Please try again.")
		total := engine.scores.Get(repository.PlayerOne) + engine.scores.Get(repository.PlayerTwo)
		require.LessOrEqual(t, total, 1)
	})

	t.Run("Escape during a round discards it", func(t *testing.T) {
		// Given: the round is abandoned at the choice prompt
		engine, _ := newTestEngine("1\nmenu\n3\n", Settings{})

		err := engine.Play(context.Background())
		require.NoError(t, err)

		// Then: no score was recorded
		require.Zero(t, engine.scores.Get(repository.PlayerOne))
		require.Zero(t, engine.scores.Get(repository.PlayerTwo))
	})

	t.Run("Invalid menu input re-displays the menu", func(t *testing.T) {
		engine, out := newTestEngine("bogus\n3\n", Settings{})

		err := engine.Play(context.Background())
		require.NoError(t, err)

		require.Contains(t, out.String(), "Invalid option. Please try again.")
	})

	t.Run("Closed input propagates", func(t *testing.T) {
		engine, _ := newTestEngine("", Settings{})

		err := engine.Play(context.Background())
		require.Error(t, err)
	})
}

func TestEngine_settings(t *testing.T) {
	t.Run("Toggling require names clears acquired names", func(t *testing.T) {
		// Given: names were already acquired
		engine, _ := newTestEngine("2\n1\n4\n3\n", Settings{RequireNames: true})
		engine.hasNames = true

		// When: the settings menu toggles the flag and the session exits
		err := engine.Play(context.Background())
		require.NoError(t, err)

		// Then: the flag flipped and the names were invalidated
		require.False(t, engine.settings.RequireNames)
		require.False(t, engine.hasNames)
	})

	t.Run("Toggling two player mode rederives the opponent label", func(t *testing.T) {
		// Given: names not required
		engine, _ := newTestEngine("2\n2\n4\n3\n", Settings{RequireNames: false, TwoPlayerMode: false})

		err := engine.Play(context.Background())
		require.NoError(t, err)

		// Then: the label follows the joint rule over both flags
		require.True(t, engine.settings.TwoPlayerMode)
		require.Equal(t, "Player 2", engine.playerTwoName)
	})

	t.Run("Reset restores defaults and zeroes scores", func(t *testing.T) {
		// Given: a drifted engine state with a non-zero score
		defaults := Settings{RequireNames: true, TwoPlayerMode: false}
		engine, _ := newTestEngine("2\n3\n4\n3\n", defaults)
		engine.settings.TwoPlayerMode = true
		engine.hasNames = true
		engine.playerOneName = "Ada"
		engine.scores.Increment(repository.PlayerOne)

		// When: the settings reset runs
		err := engine.Play(context.Background())
		require.NoError(t, err)

		// Then: everything is back at the configured defaults
		require.Equal(t, defaults, engine.settings)
		require.False(t, engine.hasNames)
		require.Equal(t, "Player 1", engine.playerOneName)
		require.Equal(t, "The Bot", engine.playerTwoName)
		require.Zero(t, engine.scores.Get(repository.PlayerOne))
	})

	t.Run("Escape token leaves the settings menu", func(t *testing.T) {
		engine, _ := newTestEngine("2\nmenu\n3\n", Settings{})

		err := engine.Play(context.Background())
		require.NoError(t, err)
	})
}

func TestEngine_acquireNames(t *testing.T) {
	t.Run("Single player greets against the bot", func(t *testing.T) {
		// Given: names required, single player
		engine, out := newTestEngine("1\nAda\n\nmenu\n3\n", Settings{RequireNames: true})

		// When: the name is acquired and the round is abandoned
		err := engine.Play(context.Background())
		require.NoError(t, err)

		// Then: the name stuck and the acquisition completed
		require.True(t, engine.hasNames)
		require.Equal(t, "Ada", engine.playerOneName)
		require.Contains(t, out.String(), "Hello Ada. You'll be playing against The Bot.")
	})

	t.Run("Two player mode asks both names", func(t *testing.T) {
		engine, out := newTestEngine("1\nAda\nGrace\n\nmenu\n3\n", Settings{RequireNames: true, TwoPlayerMode: true})

		err := engine.Play(context.Background())
		require.NoError(t, err)

		require.True(t, engine.hasNames)
		require.Equal(t, "Ada", engine.playerOneName)
		require.Equal(t, "Grace", engine.playerTwoName)
		require.Contains(t, out.String(), "Hello Ada and Grace!")
	})

	t.Run("Escape at the second name aborts acquisition", func(t *testing.T) {
		engine, _ := newTestEngine("1\nAda\nmenu\n3\n", Settings{RequireNames: true, TwoPlayerMode: true})

		err := engine.Play(context.Background())
		require.NoError(t, err)

		require.False(t, engine.hasNames)
	})
}
