package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/roguecore/internal/config"
	"github.com/mitchelldurbincs/roguecore/internal/game"
	"github.com/mitchelldurbincs/roguecore/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "Dungeon seed (0 to use config default)")
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

	logger := config.SetupLogging(cfg.Logging, os.Stderr)

	config.WatchConfig(func(err error) {
		if err != nil {
			logger.Warn().Err(err).Msg("Ignoring invalid config change")
			return
		}
		logger.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded")
	})

	gameCfg, err := game.GameConfigFromConfig(cfg, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid game config")
	}

	engine, err := game.NewEngine(context.Background(), gameCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create engine")
	}

	uiGame, err := ui.NewUIGame(engine, cfg.UI.Game)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create UI")
	}

	ebiten.SetWindowSize(uiGame.WindowSize())
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal().Err(err).Msg("UI exited with error")
	}
}
