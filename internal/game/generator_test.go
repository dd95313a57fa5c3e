package game

import (
	"testing"
	"time"

	"github.com/apetrov-dev/flappy-tui/internal/config"
)

func testObstaclesConfig() config.ObstaclesConfig {
	return config.Default().Obstacles
}

func TestGeneratorInitialBatch(t *testing.T) {
	gen := NewGenerator(testObstaclesConfig(), 80, 1)
	batch := gen.InitialBatch()

	if len(batch) != 3 {
		t.Fatalf("initial batch size = %d, expected 3", len(batch))
	}

	wantX := []int{80, 120, 160}
	for i, o := range batch {
		if o.X != wantX[i] {
			t.Errorf("obstacle %d at x=%d, expected %d", i, o.X, wantX[i])
		}
		if o.GapY < 10 || o.GapY >= 40 {
			t.Errorf("obstacle %d gap_y=%d outside [10, 40)", i, o.GapY)
		}
		if o.Size < 10 || o.Size >= 20 {
			t.Errorf("obstacle %d size=%d outside [10, 20)", i, o.Size)
		}
	}
}

func TestGeneratorDeterministicForSeed(t *testing.T) {
	a := NewGenerator(testObstaclesConfig(), 80, 12345)
	b := NewGenerator(testObstaclesConfig(), 80, 12345)

	batchA := a.InitialBatch()
	batchB := b.InitialBatch()

	for i := range batchA {
		if batchA[i] != batchB[i] {
			t.Errorf("obstacle %d differs for same seed: %+v vs %+v", i, batchA[i], batchB[i])
		}
	}
}

func TestGeneratorContinuesAfterInitialBatch(t *testing.T) {
	cfg := testObstaclesConfig()
	cfg.SpawnIntervalMs = 1 // keep the test fast

	gen := NewGenerator(cfg, 80, 1)
	gen.InitialBatch() // consumes positions 80, 120, 160
	gen.Start()
	defer gen.Stop()

	wantX := []int{200, 240, 280}
	for _, want := range wantX {
		select {
		case o := <-gen.Obstacles():
			if o.X != want {
				t.Fatalf("background obstacle at x=%d, expected %d", o.X, want)
			}
			if o.GapY < 10 || o.GapY >= 40 {
				t.Errorf("gap_y=%d outside [10, 40)", o.GapY)
			}
			if o.Size < 10 || o.Size >= 20 {
				t.Errorf("size=%d outside [10, 20)", o.Size)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for background obstacle")
		}
	}
}

func TestGeneratorStop(t *testing.T) {
	cfg := testObstaclesConfig()
	cfg.SpawnIntervalMs = 1

	gen := NewGenerator(cfg, 80, 1)
	gen.Start()

	// Wait for the producer to be alive, then cancel it.
	select {
	case <-gen.Obstacles():
	case <-time.After(time.Second):
		t.Fatal("producer never sent an obstacle")
	}
	gen.Stop()

	// Let the producer observe cancellation, then drain leftovers.
	time.Sleep(20 * time.Millisecond)
	for {
		select {
		case <-gen.Obstacles():
			continue
		default:
		}
		break
	}

	// Nothing new may arrive after the drain.
	time.Sleep(20 * time.Millisecond)
	select {
	case o := <-gen.Obstacles():
		t.Errorf("received obstacle %+v after Stop", o)
	default:
	}
}

func TestGeneratorStopIsIdempotent(t *testing.T) {
	gen := NewGenerator(testObstaclesConfig(), 80, 1)
	gen.Start()
	gen.Stop()
	gen.Stop() // must not panic
}
