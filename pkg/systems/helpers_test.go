package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/ecs"
)

// recordingHooks 记录显示、音效和成绩回调，测试共享使用
type recordingHooks struct {
	scores   []int
	messages []string
	sounds   []SoundEffect
	recorded []int
}

func (r *recordingHooks) ShowScore(score int)          { r.scores = append(r.scores, score) }
func (r *recordingHooks) ShowMessage(message string)   { r.messages = append(r.messages, message) }
func (r *recordingHooks) PlaySound(effect SoundEffect) { r.sounds = append(r.sounds, effect) }
func (r *recordingHooks) RecordScore(score int)        { r.recorded = append(r.recorded, score) }

func (r *recordingHooks) hooks() Hooks {
	return Hooks{Display: r, Sound: r, Recorder: r}
}

func (r *recordingHooks) lastMessage() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func (r *recordingHooks) countSound(effect SoundEffect) int {
	n := 0
	for _, s := range r.sounds {
		if s == effect {
			n++
		}
	}
	return n
}

// newTestLoop 创建使用默认配置和固定随机种子的游戏循环
func newTestLoop(t *testing.T) (*GameLoop, *recordingHooks) {
	t.Helper()
	rec := &recordingHooks{}
	loop, err := NewGameLoop(config.DefaultGameplayConfig(), rand.New(rand.NewSource(42)), rec.hooks())
	if err != nil {
		t.Fatalf("NewGameLoop() error: %v", err)
	}
	return loop, rec
}

func (l *GameLoop) testState() *components.GameStateComponent {
	return ecs.MustGetComponent[*components.GameStateComponent](l.em, l.gameEntity)
}

func (l *GameLoop) testCubePos() *components.PositionComponent {
	return ecs.MustGetComponent[*components.PositionComponent](l.em, l.cubeEntity)
}

func (l *GameLoop) testCubeVel() *components.VelocityComponent {
	return ecs.MustGetComponent[*components.VelocityComponent](l.em, l.cubeEntity)
}

func (l *GameLoop) testCube() *components.CubeComponent {
	return ecs.MustGetComponent[*components.CubeComponent](l.em, l.cubeEntity)
}

func (l *GameLoop) testObstaclePos(slot int) *components.PositionComponent {
	return ecs.MustGetComponent[*components.PositionComponent](l.em, l.pool.Obstacles()[slot])
}

// clearObstacles 把所有障碍物移到场地右侧外，保证不会与方块相互作用
func (l *GameLoop) clearObstacles() {
	for i := range l.pool.Obstacles() {
		pos := l.testObstaclePos(i)
		pos.X = 2000 + float64(i)*l.cfg.Obstacle.Distance
		pos.Y = 0
	}
}

// enterPlaying 按一次飞行键并松开，进入 Playing
func (l *GameLoop) enterPlaying(t *testing.T) {
	t.Helper()
	l.Tick(0.016, FixedInput(true))
	l.Tick(0, FixedInput(false))
	if l.Phase() != components.PhasePlaying {
		t.Fatalf("expected playing phase, got %s", l.Phase())
	}
}

func almostEqual(a, b float64) bool {
	const epsilon = 1e-9
	d := a - b
	return d < epsilon && d > -epsilon
}
