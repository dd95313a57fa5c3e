package game

import (
	"testing"
	"time"

	"github.com/apetrov-dev/flappy-tui/internal/config"
	"github.com/apetrov-dev/flappy-tui/internal/core"
)

// newTestSession builds a session with a quiet generator (long spawn
// interval) and a fixed restart seed so tests stay deterministic.
func newTestSession(t *testing.T, best *BestScore) *Session {
	t.Helper()

	cfg := config.Default()
	cfg.Obstacles.SpawnIntervalMs = 60_000

	if best == nil {
		best = NewBestScore()
	}
	s := NewSession(cfg, best, 1)
	s.reseed = func() int64 { return 42 }
	t.Cleanup(s.Close)
	return s
}

func TestSessionStartsInMenu(t *testing.T) {
	s := newTestSession(t, nil)

	if s.Mode() != ModeMenu {
		t.Errorf("initial mode = %v, expected Menu", s.Mode())
	}
	if s.Quitting() {
		t.Error("fresh session should not be quitting")
	}
}

func TestSessionMenuTransitions(t *testing.T) {
	s := newTestSession(t, nil)

	s.Update(16, core.ActionStart)
	if s.Mode() != ModePlaying {
		t.Fatalf("mode after start = %v, expected Playing", s.Mode())
	}
	if s.Score() != 0 {
		t.Errorf("score after start = %d, expected 0", s.Score())
	}

	// Initial obstacles at screen-edge positions spaced half a screen.
	if len(s.obstacles) < 3 {
		t.Fatalf("expected at least 3 initial obstacles, got %d", len(s.obstacles))
	}
	wantX := []int{80, 120, 160}
	for i, want := range wantX {
		if s.obstacles[i].X != want {
			t.Errorf("obstacle %d at x=%d, expected %d", i, s.obstacles[i].X, want)
		}
	}
}

func TestSessionMenuQuit(t *testing.T) {
	s := newTestSession(t, nil)

	s.Update(16, core.ActionQuit)
	if !s.Quitting() {
		t.Error("quit from menu should set the quitting flag")
	}
}

func TestSessionPhysicsAccumulator(t *testing.T) {
	s := newTestSession(t, nil)
	s.Update(16, core.ActionStart)

	x0, _ := s.player.Position()

	// 50 ms does not reach the 75 ms threshold: no physics tick.
	s.Update(50, core.ActionNone)
	if x, _ := s.player.Position(); x != x0 {
		t.Errorf("player advanced after %v ms accumulated", s.frameTime)
	}

	// 30 more ms crosses it: exactly one tick, accumulator resets.
	s.Update(30, core.ActionNone)
	if x, _ := s.player.Position(); x != x0+1 {
		t.Errorf("player x = %d, expected %d after one physics tick", x, x0+1)
	}
	if s.frameTime != 0 {
		t.Errorf("accumulator = %v, expected 0 after a physics tick", s.frameTime)
	}
}

func TestSessionFlapNotGatedByAccumulator(t *testing.T) {
	s := newTestSession(t, nil)
	s.Update(16, core.ActionStart)

	// 1 ms elapsed: no physics tick, but the flap applies immediately.
	s.Update(1, core.ActionFlap)
	if s.player.Velocity() != -2.0 {
		t.Errorf("velocity = %v, expected -2.0 right after flap", s.player.Velocity())
	}
}

func TestSessionScoringIsIdempotent(t *testing.T) {
	s := newTestSession(t, nil)
	s.Update(16, core.ActionStart)

	s.player = NewPlayer(100, 25, s.cfg.Physics)
	s.obstacles = []Obstacle{
		{X: 90, GapY: 25, Size: 10},
		{X: 130, GapY: 25, Size: 10},
	}

	s.Update(0, core.ActionNone) // no physics tick at 0 ms elapsed
	if s.Score() != 1 {
		t.Fatalf("score = %d, expected 1 after passing the front obstacle", s.Score())
	}
	if s.obstacles[0].X != 130 {
		t.Errorf("front obstacle x = %d, expected 130 after scoring pop", s.obstacles[0].X)
	}

	// Re-running the tick without movement must not double-score.
	s.Update(0, core.ActionNone)
	if s.Score() != 1 {
		t.Errorf("score = %d, expected still 1 without movement", s.Score())
	}
}

func TestSessionCullingBoundary(t *testing.T) {
	s := newTestSession(t, nil)
	s.Update(16, core.ActionStart)

	s.player = NewPlayer(100, 25, s.cfg.Physics)
	s.obstacles = []Obstacle{
		{X: 79, GapY: 25, Size: 10},  // 21 behind: culled
		{X: 81, GapY: 25, Size: 10},  // 19 behind: retained, then scored
		{X: 150, GapY: 25, Size: 10}, // ahead: retained
	}

	s.Update(0, core.ActionNone)

	// 79 was culled without scoring; 81 was scored; 150 survives.
	if s.Score() != 1 {
		t.Errorf("score = %d, expected 1 (culling must not score)", s.Score())
	}
	if len(s.obstacles) == 0 || s.obstacles[0].X != 150 {
		t.Errorf("front obstacle = %+v, expected x=150", s.obstacles)
	}
}

func TestSessionDrainPreservesOrder(t *testing.T) {
	s := newTestSession(t, nil)
	s.Update(16, core.ActionStart)

	// The producer sends one obstacle immediately and then sleeps for the
	// whole test; absorb it so the injected ones are alone on the channel.
	select {
	case <-s.gen.Obstacles():
	case <-time.After(time.Second):
		t.Fatal("producer never sent its first obstacle")
	}

	s.obstacles = nil
	s.gen.ch <- Obstacle{X: 500, GapY: 25, Size: 10}
	s.gen.ch <- Obstacle{X: 540, GapY: 25, Size: 10}

	s.Update(0, core.ActionNone)

	if len(s.obstacles) < 2 {
		t.Fatalf("expected drained obstacles, got %d", len(s.obstacles))
	}
	if s.obstacles[0].X != 500 || s.obstacles[1].X != 540 {
		t.Errorf("drain order broken: %+v", s.obstacles[:2])
	}
}

func TestSessionCollisionEndsRun(t *testing.T) {
	s := newTestSession(t, nil)
	s.Update(16, core.ActionStart)

	// One physics tick moves the player onto the wall column, above the gap.
	s.player = NewPlayer(129, 5, s.cfg.Physics)
	s.obstacles = []Obstacle{{X: 130, GapY: 25, Size: 10}}

	s.Update(100, core.ActionNone)

	if s.Mode() != ModeEnded {
		t.Fatalf("mode = %v, expected Ended after collision", s.Mode())
	}
	if s.player.IsAlive() {
		t.Error("player should be dead after collision")
	}
}

func TestSessionTopBoundaryEndsRunAndRecordsBest(t *testing.T) {
	best := NewBestScore()
	s := newTestSession(t, best)
	s.Update(16, core.ActionStart)

	s.player.y = 1
	s.player.velocity = -3.0
	s.score = 4

	s.Update(100, core.ActionNone)

	if s.Mode() != ModeEnded {
		t.Fatalf("mode = %v, expected Ended after top-boundary death", s.Mode())
	}
	if best.Best() != 4 {
		t.Errorf("best = %d, expected 4 recorded on the Ended transition", best.Best())
	}
}

func TestSessionFallOffBottomEndsRun(t *testing.T) {
	s := newTestSession(t, nil)
	s.Update(16, core.ActionStart)

	s.player = NewPlayer(5, 49, s.cfg.Physics)
	s.player.velocity = 2.0
	s.obstacles = nil

	s.Update(100, core.ActionNone)

	if s.Mode() != ModeEnded {
		t.Errorf("mode = %v, expected Ended after falling off the bottom", s.Mode())
	}
}

func TestSessionBestScoreAcrossRestarts(t *testing.T) {
	best := NewBestScore()
	best.Record(3)

	s := newTestSession(t, best)
	s.Update(16, core.ActionStart)

	// End a run worth 7 points.
	s.score = 7
	s.player.y = 1
	s.player.velocity = -3.0
	s.Update(100, core.ActionNone)

	if s.Mode() != ModeEnded {
		t.Fatalf("mode = %v, expected Ended", s.Mode())
	}
	if best.Best() != 7 {
		t.Fatalf("best = %d, expected 7", best.Best())
	}

	// Restart resets the run but not the shared best.
	s.Update(16, core.ActionStart)
	if s.Mode() != ModePlaying {
		t.Fatalf("mode = %v, expected Playing after restart", s.Mode())
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0 after restart", s.Score())
	}
	if best.Best() != 7 {
		t.Errorf("best = %d, expected 7 to survive restart", best.Best())
	}

	// A worse follow-up run never lowers the best.
	s.score = 2
	s.player.y = 1
	s.player.velocity = -3.0
	s.Update(100, core.ActionNone)
	if best.Best() != 7 {
		t.Errorf("best = %d, expected 7 after a worse run", best.Best())
	}
}

func TestSessionRestartReplacesGenerator(t *testing.T) {
	s := newTestSession(t, nil)
	s.Update(16, core.ActionStart)

	oldGen := s.gen
	s.score = 1
	s.player.y = 1
	s.player.velocity = -3.0
	s.Update(100, core.ActionNone) // end the run

	s.Update(16, core.ActionStart) // restart

	if s.gen == oldGen {
		t.Error("restart should build a fresh generator")
	}
	if len(s.obstacles) < 3 || s.obstacles[0].X != 80 {
		t.Errorf("restart should rebuild the initial obstacles, got %+v", s.obstacles)
	}
	if s.frameTime != 0 {
		t.Errorf("restart should reset the accumulator, got %v", s.frameTime)
	}
	if !s.player.IsAlive() {
		t.Error("restart should produce a live player")
	}
}

func TestSessionRenderModes(t *testing.T) {
	s := newTestSession(t, nil)
	screen := core.NewScreen(80, 50)

	s.Render(screen)
	if row := screen.Row(20); !containsText(row, "(P) Play Game") {
		t.Errorf("menu should offer play, row 20 = %q", row)
	}

	s.Update(16, core.ActionStart)
	s.Render(screen)

	_, py := s.player.Position()
	cell := screen.GetCell(0, py)
	if cell.Rune != '@' || cell.Fg != core.ColorYellow {
		t.Errorf("player glyph = %+v, expected yellow '@' at column 0", cell)
	}
	if cell.Bg != core.ColorSky {
		t.Errorf("play field background = %d, expected sky", cell.Bg)
	}
	if row := screen.Row(1); !containsText(row, "Score: 0") {
		t.Errorf("score line missing, row 1 = %q", row)
	}

	// Obstacle walls render red at world-relative columns.
	o := s.obstacles[0]
	sx := o.ScreenX(s.player.x)
	wall := screen.GetCell(sx, 0)
	if wall.Rune != '|' || wall.Fg != core.ColorRed {
		t.Errorf("obstacle wall = %+v, expected red '|'", wall)
	}
	if gap := screen.Get(sx, o.GapY); gap != ' ' {
		t.Errorf("gap center should be empty, got %q", gap)
	}

	// End the run and check the death screen.
	s.player.y = 1
	s.player.velocity = -3.0
	s.Update(100, core.ActionNone)
	s.Render(screen)
	if row := screen.Row(15); !containsText(row, "You're dead!") {
		t.Errorf("death screen missing, row 15 = %q", row)
	}
}

func containsText(row, want string) bool {
	for i := 0; i+len(want) <= len(row); i++ {
		if row[i:i+len(want)] == want {
			return true
		}
	}
	return false
}
