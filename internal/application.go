package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arcadesuite/gamebox/internal/config"
	"github.com/arcadesuite/gamebox/internal/console"
	"github.com/arcadesuite/gamebox/internal/launcher"
	"github.com/arcadesuite/gamebox/internal/minigames"
	"github.com/arcadesuite/gamebox/internal/repository"
	"github.com/arcadesuite/gamebox/internal/rps"
	"github.com/arcadesuite/gamebox/internal/tictactoe"
)

// RunApp - wires the suite together and runs it until the player quits or
// the process receives an interrupt.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	terminal := console.New(os.Stdin, os.Stdout)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	scores := repository.NewMemoryScoreboard()

	games := []launcher.Game{
		tictactoe.NewEngine(logger, terminal, rng),
		rps.NewEngine(logger, terminal, rng, scores, rps.Settings{
			RequireNames:  conf.RPS.RequireNames,
			TwoPlayerMode: conf.RPS.TwoPlayerMode,
		}),
		minigames.NewGuess(terminal, rng),
		minigames.NewCoinFlip(terminal, rng, time.Duration(conf.CoinFlipDelayMS)*time.Millisecond),
		minigames.NewConverter(terminal),
		minigames.NewCalculator(terminal),
		minigames.NewDice(terminal, rng),
	}

	suite := launcher.New(logger, terminal, games...)

	errCh := make(chan error, 1)
	go func() {
		errCh <- suite.Run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("suite run failed: %w", err)
		}

		log.Info("Suite exited")

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
