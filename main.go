package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oakmund/tilerpg/audio"
	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/config"
	"github.com/oakmund/tilerpg/content"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
	"github.com/oakmund/tilerpg/gamemap"
	"github.com/oakmund/tilerpg/player"
	"github.com/oakmund/tilerpg/render"
	"github.com/oakmund/tilerpg/systems"
)

const (
	stoneItemID = component.ItemID(2)
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.toml", "path to the game config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Content lookup failures here are data-authoring bugs; abort loudly.
	db, err := content.Load("raws/beings.toml", "raws/items.toml")
	if err != nil {
		return fmt.Errorf("load content tables: %w", err)
	}

	world, err := buildWorld(cfg, db, logger)
	if err != nil {
		return fmt.Errorf("construct world: %w", err)
	}

	snd, err := audio.NewService()
	if err != nil {
		// Non-fatal, the game runs silent.
		logger.Warn("audio unavailable", zap.Error(err))
	}
	defer snd.Close()
	engine.AddResource(world.Resources, snd)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	controller := player.NewController()

	scheduler := engine.NewScheduler(world, controller, cfg.Timing.ResponseThreshold, logger)
	scheduler.AddContinuous(systems.IndexSystems(world)...)
	scheduler.AddContinuous(
		systems.NewSetupFishingActionsSystem(world),
		systems.NewWaitingForFishSystem(world, cfg.Fishing, rng),
		systems.NewCatchFishSystem(world, db),
		systems.NewMoveSystem(world),
		systems.NewPickupSystem(world, db),
		systems.NewTileDestructionSystem(world),
		systems.NewAttackSystem(world),
		systems.NewDamageSystem(world),
		systems.NewRemoveDeadSystem(world, db),
		systems.NewTileAnimationSpawner(world),
		systems.NewDeleteConditionSystem(world),
	)
	scheduler.AddResponse(
		systems.NewRandomWalkerSystem(world, rng),
		systems.NewGoalMoverSystem(world),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	renderer := render.New(screen, cfg.Display.UIRows)
	logger.Info("game started",
		zap.Int("width", cfg.Display.Width),
		zap.Int("height", cfg.Display.Height))

	return hostLoop(screen, scheduler, renderer, world, controller, cfg.Display.FrameRate)
}

// hostLoop drives the simulation: key events feed the controller, the
// ticker triggers one scheduler tick and one frame per interval. All
// I/O lives out here; the core only ever sees buffered intents.
func hostLoop(screen tcell.Screen, scheduler *engine.Scheduler, renderer *render.Renderer,
	world *engine.World, controller *player.Controller, frameRate int) error {

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
					return nil
				}
				controller.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			scheduler.Tick(time.Now())
			renderer.Draw(world)
		}
	}
}

// buildWorld assembles the demo scene: a grass map with a fishing pond,
// the player, a wandering sheep from the being table, and a field of
// breakable rocks.
func buildWorld(cfg *config.Config, db *content.EntityDB, logger *zap.Logger) (*engine.World, error) {
	world := engine.NewWorld()
	cs := &world.Components

	mapHeight := cfg.Display.Height - cfg.Display.UIRows
	m := gamemap.New(cfg.Display.Width, mapHeight)

	engine.AddResource(world.Resources, m)
	engine.AddResource(world.Resources, engine.NewTileIndex(m.Width, m.Height))
	engine.AddResource(world.Resources, &engine.TimeResource{Now: time.Now()})
	engine.AddResource(world.Resources, &engine.AppStateResource{State: engine.InGameState()})
	engine.AddResource(world.Resources, engine.NewMessageLog())
	engine.AddResource(world.Resources, systems.NewTileAnimationBuilder())
	engine.AddResource(world.Resources, engine.NewLogResource(logger))

	// Pond tile: fishable, blocking water.
	pond := component.NewPosition(10, 15)
	m.SetTile(pond, gamemap.WaterTile())
	water := world.CreateEntity()
	cs.Position.Set(water, pond)
	cs.Fishable.Set(water, component.Fishable{})
	cs.Blocking.Set(water, component.Blocking{})
	cs.Water.Set(water, component.Water{})

	// The player is built by hand; beings come from the content table.
	p := world.CreateEntity()
	cs.Position.Set(p, component.NewPosition(17, 20))
	cs.Name.Set(p, component.NewName("Adventurer"))
	cs.Renderable.Set(p, component.NewRenderable('@', core.White, content.BeingZ))
	cs.Blocking.Set(p, component.Blocking{})
	cs.Strength.Set(p, component.Strength{Amount: 1})
	cs.Health.Set(p, component.NewHealthStats(10, 1))
	cs.Tool.Set(p, component.Tool{Kind: component.ToolPickaxe})
	cs.Backpack.Set(p, component.NewBackpack())
	engine.AddResource(world.Resources, &engine.PlayerResource{Entity: p})

	if _, err := content.SpawnBeing(world, db, "Bahhhby", component.NewPosition(5, 15)); err != nil {
		return nil, err
	}

	spawnRocks(world, m)
	return world, nil
}

// spawnRocks scatters breakable boulders that drop stone when mined.
func spawnRocks(world *engine.World, m *gamemap.Map) {
	cs := &world.Components
	for _, at := range [][2]int{{12, 10}, {13, 10}, {14, 11}, {25, 18}, {26, 18}} {
		pos := component.NewPosition(at[0], at[1])
		if !m.InBounds(pos) {
			continue
		}
		rock := world.CreateEntity()
		cs.Position.Set(rock, pos)
		cs.Name.Set(rock, component.NewName("Rock"))
		cs.Renderable.Set(rock, component.NewRenderable('^', core.StoneGray, content.TerrainZ))
		cs.Blocking.Set(rock, component.Blocking{})
		cs.Breakable.Set(rock, component.Breakable{By: component.ToolPickaxe})
		cs.Health.Set(rock, component.NewHealthStats(2, 0))
		cs.DeathDrop.Set(rock, component.DeathDrop{ItemID: stoneItemID})
	}
}

func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	// The terminal belongs to tcell; diagnostics go to a file.
	zc.OutputPaths = []string{"tilerpg.log"}
	zc.ErrorOutputPaths = []string{"tilerpg.log"}
	return zc.Build()
}
