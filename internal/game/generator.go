package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/apetrov-dev/flappy-tui/internal/config"
)

// Generator produces an unbounded, rate-limited stream of obstacles on a
// background goroutine, decoupled from the render cadence. Each obstacle is
// placed half a screen width beyond the previous one. The session drains
// the channel with non-blocking receives once per tick; since there is a
// single producer, world-position ordering is preserved without sorting.
//
// Shutdown is explicit: the session owns the generator and calls Stop,
// which cancels the producer's context. Both the send and the sleep select
// on cancellation, so an abandoned producer exits promptly.
type Generator struct {
	cfg      config.ObstaclesConfig
	ch       chan Obstacle
	cancel   context.CancelFunc
	rng      *rand.Rand
	nextX    int
	spacing  int
	interval time.Duration
}

// NewGenerator creates a generator whose first obstacle will be placed at
// the right screen edge. It does not start producing until Start is called.
func NewGenerator(cfg config.ObstaclesConfig, screenW int, seed int64) *Generator {
	return &Generator{
		cfg: cfg,
		// Small buffer tolerates bursts while the consumer drains
		// once per tick.
		ch:       make(chan Obstacle, 8),
		rng:      rand.New(rand.NewSource(seed)),
		nextX:    screenW,
		spacing:  screenW / 2,
		interval: time.Duration(cfg.SpawnIntervalMs) * time.Millisecond,
	}
}

// next constructs the next obstacle and advances the spawn position.
// Only one goroutine uses the RNG at a time: the caller before Start,
// the producer after.
func (g *Generator) next() Obstacle {
	o := Obstacle{
		X:    g.nextX,
		GapY: g.cfg.GapMin + g.rng.Intn(g.cfg.GapMax-g.cfg.GapMin),
		Size: g.cfg.SizeMin + g.rng.Intn(g.cfg.SizeMax-g.cfg.SizeMin),
	}
	g.nextX += g.spacing
	return o
}

// InitialBatch synchronously produces the initial obstacles so the player
// has visible content before the asynchronous stream catches up. Must be
// called before Start.
func (g *Generator) InitialBatch() []Obstacle {
	batch := make([]Obstacle, 0, g.cfg.InitialCount)
	for range g.cfg.InitialCount {
		batch = append(batch, g.next())
	}
	return batch
}

// Start launches the background producer. It continues from wherever the
// initial batch left off.
func (g *Generator) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	go g.run(ctx)
}

// Stop cancels the background producer. Safe to call multiple times;
// a generator that was never started needs no Stop.
func (g *Generator) Stop() {
	if g.cancel != nil {
		g.cancel()
	}
}

// Obstacles returns the receiving endpoint of the obstacle stream.
func (g *Generator) Obstacles() <-chan Obstacle {
	return g.ch
}

func (g *Generator) run(ctx context.Context) {
	timer := time.NewTimer(g.interval)
	defer timer.Stop()

	for {
		select {
		case g.ch <- g.next():
		case <-ctx.Done():
			return
		}

		select {
		case <-timer.C:
			timer.Reset(g.interval)
		case <-ctx.Done():
			return
		}
	}
}
