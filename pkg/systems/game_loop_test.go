package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
)

func TestNewGameLoopRejectsInvalidConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := NewGameLoop(nil, rng, Hooks{}); err == nil {
		t.Error("expected error for nil config")
	}

	cfg := config.DefaultGameplayConfig()
	cfg.Obstacle.Interspace = 10
	if _, err := NewGameLoop(cfg, rng, Hooks{}); err == nil {
		t.Error("expected error for interspace smaller than the cube")
	}

	if _, err := NewGameLoop(config.DefaultGameplayConfig(), nil, Hooks{}); err == nil {
		t.Error("expected error for nil random source")
	}
}

// TestGameLoopNilHooksAndInput 没有任何协作者时也能完整运行
func TestGameLoopNilHooksAndInput(t *testing.T) {
	loop, err := NewGameLoop(config.DefaultGameplayConfig(), rand.New(rand.NewSource(7)), Hooks{})
	if err != nil {
		t.Fatalf("NewGameLoop() error: %v", err)
	}

	loop.Tick(0.016, nil)
	if loop.Phase() != components.PhaseWaitingToStart {
		t.Errorf("nil input started the game")
	}
	loop.Tick(0.016, FixedInput(true))
	for i := 0; i < 1000; i++ {
		loop.Tick(0.016, nil)
	}
	if loop.Phase() == components.PhasePlaying {
		t.Errorf("cube should have fallen to the floor, phase = %s", loop.Phase())
	}
}

// TestGameLoopClampsDeltaTime 超长帧间隔截断到 MaxDeltaTime
func TestGameLoopClampsDeltaTime(t *testing.T) {
	loop, _ := newTestLoop(t)
	loop.enterPlaying(t)
	loop.clearObstacles()
	loop.testCubeVel().VY = 0

	loop.Tick(10, FixedInput(false))

	// MaxDeltaTime = 0.25：ceil(600*0.25²/2) = 19
	if y := loop.testCubePos().Y; y != -19 {
		t.Errorf("y = %f, want -19", y)
	}
}

// TestGameLoopZeroDeltaTime dt<=0 的帧不产生任何运动
func TestGameLoopZeroDeltaTime(t *testing.T) {
	loop, _ := newTestLoop(t)
	loop.enterPlaying(t)

	before := loop.Snapshot()
	loop.Tick(0, FixedInput(false))
	loop.Tick(-1, FixedInput(false))
	after := loop.Snapshot()

	if before.Cube != after.Cube {
		t.Errorf("cube moved: %+v -> %+v", before.Cube, after.Cube)
	}
	for i := range before.Obstacles {
		if before.Obstacles[i] != after.Obstacles[i] {
			t.Errorf("obstacle %d moved", i)
		}
	}
}

func TestGameLoopSnapshot(t *testing.T) {
	loop, _ := newTestLoop(t)
	cfg := loop.Config()

	frame := loop.Snapshot()

	if frame.Phase != components.PhaseWaitingToStart || frame.Score != 0 {
		t.Errorf("frame = %+v", frame)
	}
	if frame.Message != cfg.Messages.Start {
		t.Errorf("message = %q, want %q", frame.Message, cfg.Messages.Start)
	}
	if frame.Cube.X != cfg.Cube.X || frame.Cube.Y != 0 || frame.Cube.Size != cfg.Cube.Size {
		t.Errorf("cube = %+v", frame.Cube)
	}
	if frame.Cube.Tint != components.CubeTintAlive {
		t.Errorf("tint = %s, want alive", frame.Cube.Tint)
	}
	if len(frame.Obstacles) != cfg.PoolSize() {
		t.Fatalf("obstacles = %d, want %d", len(frame.Obstacles), cfg.PoolSize())
	}

	ob := frame.Obstacles[1]
	if ob.X != cfg.Obstacle.Distance || ob.Width != cfg.Obstacle.Width || ob.Interspace != cfg.Obstacle.Interspace {
		t.Errorf("obstacle = %+v", ob)
	}
	wantUpper := ob.GapY + cfg.Obstacle.Interspace/2 + cfg.Obstacle.ColumnHeight/2
	wantLower := ob.GapY - cfg.Obstacle.Interspace/2 - cfg.Obstacle.ColumnHeight/2
	if ob.UpperColumnY != wantUpper || ob.LowerColumnY != wantLower {
		t.Errorf("columns = (%f, %f), want (%f, %f)", ob.UpperColumnY, ob.LowerColumnY, wantUpper, wantLower)
	}
}

// TestGameLoopDeterministicSeed 相同种子产生相同的障碍物布局
func TestGameLoopDeterministicSeed(t *testing.T) {
	a, err := NewGameLoop(config.DefaultGameplayConfig(), rand.New(rand.NewSource(11)), Hooks{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGameLoop(config.DefaultGameplayConfig(), rand.New(rand.NewSource(11)), Hooks{})
	if err != nil {
		t.Fatal(err)
	}

	fa, fb := a.Snapshot(), b.Snapshot()
	for i := range fa.Obstacles {
		if fa.Obstacles[i] != fb.Obstacles[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, fa.Obstacles[i], fb.Obstacles[i])
		}
	}
}
