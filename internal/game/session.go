package game

import (
	"fmt"
	"time"

	"github.com/apetrov-dev/flappy-tui/internal/config"
	"github.com/apetrov-dev/flappy-tui/internal/core"
)

// Mode is the session's state-machine state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnded
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Session coordinates the player, the active obstacle collection, the
// score, and the obstacle generator through the Menu/Playing/Ended state
// machine. One live instance exists per play loop; the platform layer
// calls Update once per rendered frame with the elapsed real time and at
// most one input event.
type Session struct {
	cfg       config.Config
	mode      Mode
	player    *Player
	obstacles []Obstacle // ordered, monotonically increasing in X
	frameTime float64    // ms accumulated toward the next physics tick
	score     int
	gen       *Generator
	best      *BestScore
	quitting  bool
	reseed    func() int64 // seed source for restarts
}

// NewSession creates a session in Menu mode. The best-score store is shared
// by reference and survives restarts. The seed drives the first generator;
// restarts draw fresh seeds from the clock.
func NewSession(cfg config.Config, best *BestScore, seed int64) *Session {
	s := &Session{
		cfg:    cfg,
		mode:   ModeMenu,
		player: NewPlayer(cfg.Player.StartX, cfg.Player.StartY, cfg.Physics),
		best:   best,
		reseed: func() int64 { return time.Now().UnixNano() },
	}
	s.startGenerator(seed)
	return s
}

// Update advances the session by one frame. elapsed is the real time since
// the previous frame in milliseconds; in is the single input event for this
// frame (or ActionNone).
func (s *Session) Update(elapsed float64, in core.Action) {
	switch s.mode {
	case ModeMenu:
		s.updateMenu(in)
	case ModePlaying:
		s.updatePlaying(elapsed, in)
	case ModeEnded:
		s.updateEnded(in)
	}
}

func (s *Session) updateMenu(in core.Action) {
	switch in {
	case core.ActionStart:
		s.restart()
	case core.ActionQuit:
		s.quitting = true
	}
}

func (s *Session) updateEnded(in core.Action) {
	switch in {
	case core.ActionStart:
		s.restart()
	case core.ActionQuit:
		s.quitting = true
	}
}

// updatePlaying is the per-tick bookkeeping for a live run. The step order
// (physics, flap, cull, score, drain, collision) is load-bearing:
// reordering changes which frame an obstacle disappears on.
func (s *Session) updatePlaying(elapsed float64, in core.Action) {
	blocked := false

	s.frameTime += elapsed
	if s.frameTime > s.cfg.Physics.FrameDurationMs {
		s.frameTime = 0
		if err := s.player.Advance(); err != nil {
			blocked = true
		}
	}

	// Flap input is applied immediately, not gated by the physics
	// accumulator. Flap errors (dead, falling too fast) are expected
	// and ignored.
	if in == core.ActionFlap {
		_ = s.player.Flap()
	}

	px, py := s.player.Position()

	// Cull obstacles that have scrolled far enough behind the player.
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X-px > -s.cfg.Obstacles.CullMargin {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	// Score: the front of the ordered collection is the next obstacle to
	// pass. At most one is passed per tick since the player moves one
	// column per physics tick.
	if len(s.obstacles) > 0 && px > s.obstacles[0].X {
		s.score++
		s.obstacles = s.obstacles[1:]
	}

	// Drain all pending generator output, preserving arrival order.
	s.drainObstacles()

	// Death: fell off the bottom, or hit an obstacle wall.
	dead := py > s.cfg.Screen.Height
	for _, o := range s.obstacles {
		if o.Hits(s.player) {
			dead = true
			break
		}
	}
	if dead {
		s.player.Kill()
	}

	if blocked || dead {
		s.end()
	}
}

func (s *Session) drainObstacles() {
	for {
		select {
		case o := <-s.gen.Obstacles():
			s.obstacles = append(s.obstacles, o)
		default:
			return
		}
	}
}

// end transitions to Ended and reconciles the run's score with the shared
// best-score store. This is the only place the store is written.
func (s *Session) end() {
	s.mode = ModeEnded
	s.best.Record(s.score)
}

// restart fully reinitializes the run: fresh player, cleared score and
// accumulator, new initial obstacles, and a new generator. The old
// generator is cancelled; the best-score store is left untouched.
func (s *Session) restart() {
	s.player = NewPlayer(s.cfg.Player.StartX, s.cfg.Player.StartY, s.cfg.Physics)
	s.frameTime = 0
	s.score = 0
	s.mode = ModePlaying

	s.gen.Stop()
	s.startGenerator(s.reseed())
}

// startGenerator replaces the obstacle stream: a synchronous initial batch
// plus a freshly started background producer continuing from the batch's
// last position.
func (s *Session) startGenerator(seed int64) {
	s.gen = NewGenerator(s.cfg.Obstacles, s.cfg.Screen.Width, seed)
	s.obstacles = s.gen.InitialBatch()
	s.gen.Start()
}

// Close stops the background generator. Call when tearing the session down.
func (s *Session) Close() {
	s.gen.Stop()
}

// Mode returns the current state-machine state.
func (s *Session) Mode() Mode {
	return s.mode
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.score
}

// Best returns the shared best score.
func (s *Session) Best() int {
	return s.best.Best()
}

// Quitting reports whether the user asked to leave the game.
func (s *Session) Quitting() bool {
	return s.quitting
}

// Render draws the current mode into the screen buffer.
func (s *Session) Render(dst *core.Screen) {
	switch s.mode {
	case ModeMenu:
		s.renderMenu(dst)
	case ModePlaying:
		s.renderPlaying(dst)
	case ModeEnded:
		s.renderEnded(dst)
	}
}

func (s *Session) renderMenu(dst *core.Screen) {
	dst.SetBackground(core.ColorDefault)
	dst.Clear()
	dst.DrawTextCentered(15, "■ WELCOME TO FLAPPY BIRD! ■")
	dst.DrawTextCentered(20, "(P) Play Game")
	dst.DrawTextCentered(22, "(Q) Quit Game")
	dst.DrawTextCentered(40, "Avoid obstacles and press SPACE to flap your wings")
}

func (s *Session) renderPlaying(dst *core.Screen) {
	dst.SetBackground(core.ColorSky)
	dst.Clear()

	px, py := s.player.Position()
	if s.player.IsAlive() {
		dst.SetCell(0, py, '@', core.ColorYellow)
	}
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d", s.score))

	for _, o := range s.obstacles {
		sx := o.ScreenX(px)
		dst.DrawVLine(sx, 0, o.GapTop(), '|', core.ColorRed)
		dst.DrawVLine(sx, o.GapBottom(), dst.Height()-o.GapBottom(), '|', core.ColorRed)
	}
}

func (s *Session) renderEnded(dst *core.Screen) {
	dst.SetBackground(core.ColorDefault)
	dst.Clear()
	dst.DrawTextCentered(15, "You're dead! >.<")
	dst.DrawTextCentered(20, fmt.Sprintf("You earned %d points! (Highest: %d)", s.score, s.Best()))
	dst.DrawTextCentered(25, "(P) Play Again")
	dst.DrawTextCentered(27, "(Q) Quit Game")
}
