// internal/app/game.go
package app

import (
	"log"

	"tower-of-derp/internal/component"
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/entity"
	"tower-of-derp/internal/event"
	"tower-of-derp/internal/system"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"

	"github.com/google/uuid"
)

// Game holds the simulation state of one session.
type Game struct {
	Board              *entity.Board
	Player             *component.Player
	Stats              *component.GameStats
	EventDispatcher    *event.Dispatcher
	SpawnerSystem      *system.SpawnerSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	PlayerSystem       *system.PlayerSystem
	VisualEffectSystem *system.VisualEffectSystem

	id     string
	cfg    *config.Config
	rng    system.Rand
	logger *log.Logger
	debug  bool
	phase  component.GamePhase
}

// Option configures a Game.
type Option func(*Game)

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRand replaces the seeded random source used by the strong attack.
func WithRand(r system.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithDispatcher lets the host subscribe listeners before the first event.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// WithDebug logs the phases of every tick.
func WithDebug(on bool) Option {
	return func(g *Game) { g.debug = on }
}

// NewGame initializes a new session. A nil cfg means config.Default().
func NewGame(cfg *config.Config, opts ...Option) *Game {
	if cfg == nil {
		cfg = config.Default()
	}

	g := &Game{
		Board: entity.NewBoard(cfg.Path, cfg.Base),
		Player: &component.Player{
			Health: cfg.StartingHealth,
			Gold:   cfg.StartingGold,
		},
		Stats:           &component.GameStats{},
		EventDispatcher: event.NewDispatcher(),
		id:              uuid.New().String(),
		cfg:             cfg,
		logger:          log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = utils.NewPRNGService(cfg.Seed)
	}

	g.SpawnerSystem = system.NewSpawnerSystem(g.Board, g.EventDispatcher, cfg.Monster, cfg.Spawner.Interval, cfg.Spawner.InitialCountdown())
	g.MovementSystem = system.NewMovementSystem(g.Board, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g.Board, g.rng, g.EventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(g.Stats, g.EventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.EventDispatcher)

	if g.debug {
		g.EventDispatcher.Observe(func(e event.Event) {
			g.logger.Printf("event %s %+v", e.Type, e.Data)
		})
	}

	if p, ok := g.rng.(*utils.PRNGService); ok {
		g.logger.Printf("game %s started, seed %d", g.id, p.Seed())
	} else {
		g.logger.Printf("game %s started", g.id)
	}
	return g
}

// Tick advances the simulation by elapsed seconds: spawner, monsters, dead
// removal, then towers. After the base falls it does nothing.
func (g *Game) Tick(elapsed float64) {
	if g.Over() {
		return
	}
	if elapsed < 0 {
		elapsed = 0
	}
	g.Stats.ElapsedSeconds += elapsed

	g.SpawnerSystem.Update(elapsed)
	g.Stats.BaseDamage += g.MovementSystem.Update(elapsed, g.Player)

	before := len(g.Board.Monsters)
	removed := g.Board.RemoveDeadMonsters()
	if g.debug {
		g.logger.Printf("tick %.3fs: monsters before removal %d, after %d", elapsed, before, before-removed)
	}

	g.CombatSystem.Update(elapsed)
	g.VisualEffectSystem.Update(elapsed)

	if !g.Player.Alive() {
		g.phase = component.PhaseOver
		g.logger.Printf("game %s over: base destroyed after %.1fs, %d kills", g.id, g.Stats.ElapsedSeconds, g.Stats.Kills)
		g.EventDispatcher.Dispatch(event.Event{Type: event.BaseDestroyed})
	}
}

// --- Read-only accessors ---

func (g *Game) ID() string                       { return g.id }
func (g *Game) Config() *config.Config           { return g.cfg }
func (g *Game) Over() bool                       { return g.phase == component.PhaseOver }
func (g *Game) Monsters() []*component.Monster   { return g.Board.Monsters }
func (g *Game) Towers() []*component.Tower       { return g.Board.Towers }
func (g *Game) GoldPiles() []*component.GoldPile { return g.Board.GoldPiles }
func (g *Game) Path() []grid.Cell                { return g.Board.Path }
func (g *Game) Base() component.Base             { return g.Board.Base }
func (g *Game) Lasers() []*component.Laser       { return g.VisualEffectSystem.Lasers() }
func (g *Game) Beams() []system.Beam             { return system.Beams(g.Board) }
func (g *Game) PlayerState() component.Player    { return *g.Player }
func (g *Game) Statistics() component.GameStats  { return *g.Stats }
