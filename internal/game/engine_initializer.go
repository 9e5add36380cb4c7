package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	"github.com/mitchelldurbincs/roguecore/internal/game/ecs"
	"github.com/mitchelldurbincs/roguecore/internal/game/events"
	"github.com/mitchelldurbincs/roguecore/internal/game/mapgen"
	"github.com/mitchelldurbincs/roguecore/internal/game/states"
	"github.com/mitchelldurbincs/roguecore/internal/game/systems"
)

// EngineInitializer handles the setup of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// NewEngine is shorthand for NewEngineInitializer(cfg).Initialize(ctx)
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Initialize creates and initializes a new game engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before start")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	m, err := ei.generateMap()
	if err != nil {
		return nil, fmt.Errorf("map generation failed: %w", err)
	}

	engine := ei.createEngine(m)

	monsters, err := ei.populate(engine)
	if err != nil {
		return nil, fmt.Errorf("spawning failed: %w", err)
	}

	ei.performInitialSetup(engine)

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.sessionID,
		engine.seed,
		m.Width,
		m.Height,
		len(m.Rooms),
		monsters,
	))

	ei.logger.Info().
		Str("session_id", engine.sessionID).
		Int64("seed", engine.seed).
		Int("width", m.Width).
		Int("height", m.Height).
		Int("rooms", len(m.Rooms)).
		Int("monsters", monsters).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in the seed, RNG and session ID
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		if ei.config.Seed == 0 {
			ei.config.Seed = time.Now().UnixNano()
			ei.logger.Debug().Int64("seed", ei.config.Seed).Msg("No seed provided, using time-based seed")
		}
		ei.config.Rng = rand.New(rand.NewSource(ei.config.Seed))
	}

	if ei.config.SessionID == "" {
		ei.config.SessionID = uuid.New().String()
	}
}

func (ei *EngineInitializer) generateMap() (*core.Map, error) {
	generator := mapgen.NewGenerator(ei.config.Map, ei.config.Rng)
	return generator.GenerateMap()
}

// createEngine wires the world, systems, event bus and state machine
func (ei *EngineInitializer) createEngine(m *core.Map) *Engine {
	eventBus := events.NewEventBus()

	turnContext := states.NewTurnContext(ei.config.SessionID, ei.logger)
	stateMachine := states.NewStateMachine(turnContext, eventBus)

	return &Engine{
		m:            m,
		world:        ecs.NewWorld(),
		rng:          ei.config.Rng,
		seed:         ei.config.Seed,
		sessionID:    ei.config.SessionID,
		logger:       ei.logger,
		eventBus:     eventBus,
		stateMachine: stateMachine,
		visibility:   systems.NewVisibilitySystem(ei.logger),
		monsterAI:    systems.NewMonsterAISystem(ei.logger),
		palette:      ei.config.Palette,
		revealMap:    ei.config.RevealMap,
	}
}

func (ei *EngineInitializer) populate(engine *Engine) (int, error) {
	spawner := NewSpawner(engine.world, engine.rng, ei.config)
	player, monsters, err := spawner.Populate(engine.m)
	if err != nil {
		return 0, err
	}
	engine.player = player
	return monsters, nil
}

// performInitialSetup runs the systems once so the first frame already shows
// the player's field of view. The scheduler stays in AwaitingInput.
func (ei *EngineInitializer) performInitialSetup(engine *Engine) {
	viewsheds, monsters, committed := engine.runSystems()
	ei.logger.Debug().
		Int("viewsheds", viewsheds).
		Int("monsters", monsters).
		Int("committed", committed).
		Msg("Initial systems pass complete")
}
