package omega

import (
	"math"
	"sync"
	"time"

	"github.com/vovakirdan/omega-arcade/internal/config"
	"github.com/vovakirdan/omega-arcade/internal/core"
	"github.com/vovakirdan/omega-arcade/internal/registry"
)

// GameID is the registry and storage identifier of the game.
const GameID = "omega"

var (
	cfgMu     sync.RWMutex
	sharedCfg = config.DefaultOmegaConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.OmegaConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	sharedCfg = cfg
}

func currentConfig() config.OmegaConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return sharedCfg
}

// Game adapts the Omega world and schedule to registry.Game.
type Game struct {
	params   Params
	world    *World
	schedule *Schedule
	paused   bool
}

// New creates a game using the configuration set with SetConfig.
func New() *Game {
	return NewWithConfig(currentConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.OmegaConfig) *Game {
	p := ParamsFromConfig(cfg)
	return &Game{
		params:   p,
		world:    NewWorld(p, 0),
		schedule: NewSchedule(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Omega"
}

// Reset starts a new session. The high score is seeded from cfg.BestScore.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	best := uint32(min(max(int64(cfg.BestScore), 0), math.MaxUint32))
	g.world = NewWorld(g.params, best)
	g.paused = false
}

// Apply swaps in a new configuration without ending the session.
// Score and high score are kept; the player is pulled inside the new bounds.
func (g *Game) Apply(cfg config.OmegaConfig) {
	g.params = ParamsFromConfig(cfg)
	g.world.Params = g.params
	g.world.Player.Size = core.V2(g.params.Size, g.params.Size)
	g.world.Player.Pos = g.params.Move.Bounds.Clamp(g.world.Player.Pos)
}

// Step handles the pause toggle and runs one frame of the schedule.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if !g.paused {
		g.schedule.Tick(g.world, Frame{Input: in, DT: dt.Seconds()})
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     int(g.world.State.Score),
		HighScore: int(g.world.State.HighScore),
		Lives:     int(g.world.State.Lives),
		Frames:    g.world.Frames,
		Paused:    g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
