package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/mitchelldurbincs/roguecore/internal/config"
	"github.com/mitchelldurbincs/roguecore/internal/game"
	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	"github.com/mitchelldurbincs/roguecore/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/roguecore/internal/game/input"
)

// Headless demo: a seeded random walker explores the dungeon and the board is
// printed as it goes.
func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "Dungeon seed (0 to use config default)")
	turns := flag.Int("turns", -1, "Turns to simulate (-1 to use config default)")
	every := flag.Int("print-every", 5, "Print the board every N turns")
	logEvents := flag.Bool("log-events", false, "Log every engine event")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if *seed != 0 {
		if err := config.Set("game.seed", *seed); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply seed")
		}
	}
	cfg := config.Get()
	if *turns == -1 {
		*turns = cfg.Demo.MaxTurns
	}

	logger := config.SetupLogging(cfg.Logging, os.Stderr)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Disable()
	}

	gameCfg, err := game.GameConfigFromConfig(cfg, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid game config")
	}

	engine, err := game.NewEngine(context.Background(), gameCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create engine")
	}

	if *logEvents {
		sub := subscribers.NewLoggerSubscriber("demo_logger", logger, zerolog.InfoLevel)
		sub.SetDevMode(cfg.Logging.Level == "debug")
		engine.EventBus().Subscribe(sub)
	}

	fmt.Printf("Session %s, seed %d\n", engine.SessionID(), engine.Seed())
	fmt.Print(engine.Board())

	rng := engine.Rng()
	for turn := 1; turn <= *turns; turn++ {
		dir := core.Direction(rng.Intn(8))
		engine.Step(input.MoveDir(dir))

		if *every > 0 && turn%*every == 0 {
			fmt.Printf("\nAfter turn %d (%s):\n", turn, dir)
			fmt.Print(engine.Board())
		}
	}

	revealed := 0
	for _, r := range engine.Map().Revealed {
		if r {
			revealed++
		}
	}
	log.Info().
		Int("turns", engine.Turn()).
		Int("revealed_tiles", revealed).
		Int("floor_tiles", engine.Map().FloorCount()).
		Int("entities", engine.World().EntityCount()).
		Msg("Demo finished")
}
