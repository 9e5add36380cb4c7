package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/roguecore/internal/config"
	"github.com/mitchelldurbincs/roguecore/internal/game"
	"github.com/mitchelldurbincs/roguecore/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "Dungeon seed (0 to use config default)")
	logFile := flag.String("log-file", "roguecore.log", "Where to write logs while the terminal is in use")
	mute := flag.Bool("mute", false, "Disable sound")
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

	out, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open log file")
	}
	defer out.Close()
	logger := config.SetupLogging(cfg.Logging, out)

	gameCfg, err := game.GameConfigFromConfig(cfg, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid game config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := game.NewEngine(ctx, gameCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create engine")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize screen")
	}
	defer screen.Fini()

	var sound *tui.Sound
	if !*mute {
		sound = tui.NewSound()
		if err := sound.Init(); err != nil {
			logger.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	app := tui.NewApp(screen, engine, sound, logger)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("Terminal client stopped")
	}
}
