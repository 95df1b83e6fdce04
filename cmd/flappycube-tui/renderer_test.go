package main

import (
	"strings"
	"testing"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return screen
}

func styleAt(screen tcell.Screen, x, y int) tcell.Style {
	_, _, style, _ := screen.GetContent(x, y)
	return style
}

func rowText(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

// testFrame 方块在默认位置，障碍物位于 X=0，间隙中心 Y=0
func testFrame(phase components.GamePhase, tint components.CubeTint) systems.Frame {
	return systems.Frame{
		Phase: phase,
		Cube:  systems.CubeView{X: -333.3333333333333, Y: 0, Size: 40, Tint: tint},
		Obstacles: []systems.ObstacleView{
			{X: 0, GapY: 0, Width: 100, ColumnHeight: 500, Interspace: 140},
		},
	}
}

// TestRendererDraw 100x26 终端：每列 10 像素，每行 20 像素，最后一行是 HUD
func TestRendererDraw(t *testing.T) {
	screen := newTestScreen(t, 100, 26)
	r := newRenderer(config.DefaultGameplayConfig(), func() int { return 12 })
	r.ShowScore(3)

	r.Draw(screen, testFrame(components.PhasePlaying, components.CubeTintAlive))

	tests := []struct {
		name string
		x, y int
		want tcell.Style
	}{
		{"方块中心", 16, 12, cubeStyle(components.CubeTintAlive)},
		{"上柱", 50, 0, columnStyle},
		{"下柱", 50, 24, columnStyle},
		{"间隙", 50, 12, skyStyle},
		{"柱子左侧的天空", 30, 0, skyStyle},
		{"方块上方的天空", 16, 5, skyStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := styleAt(screen, tt.x, tt.y); got != tt.want {
				t.Errorf("cell (%d, %d) style = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	hud := rowText(screen, 25)
	if !strings.Contains(hud, "Score 3") {
		t.Errorf("HUD = %q, want score", hud)
	}
	if !strings.Contains(hud, "Best 12") {
		t.Errorf("HUD = %q, want best score", hud)
	}
	if !strings.Contains(hud, hintText(components.PhasePlaying)) {
		t.Errorf("HUD = %q, want playing hint", hud)
	}
}

// TestRendererCubeTint 方块颜色随状态变化
func TestRendererCubeTint(t *testing.T) {
	for _, tint := range []components.CubeTint{
		components.CubeTintAlive,
		components.CubeTintDead,
		components.CubeTintGameOver,
	} {
		screen := newTestScreen(t, 100, 26)
		r := newRenderer(config.DefaultGameplayConfig(), nil)
		r.Draw(screen, testFrame(components.PhaseDying, tint))

		if got := styleAt(screen, 16, 12); got != cubeStyle(tint) {
			t.Errorf("tint %v: cube style = %v, want %v", tint, got, cubeStyle(tint))
		}
	}

	if cubeStyle(components.CubeTintAlive) == cubeStyle(components.CubeTintDead) {
		t.Error("alive and dead cube should use different colors")
	}
}

// TestRendererMessage 提示文本居中显示在场地上方
func TestRendererMessage(t *testing.T) {
	screen := newTestScreen(t, 100, 26)
	r := newRenderer(config.DefaultGameplayConfig(), nil)
	r.ShowMessage("Game Over")

	r.Draw(screen, testFrame(components.PhaseWaitingToRestart, components.CubeTintGameOver))

	row := rowText(screen, 25/4)
	if !strings.Contains(row, "Game Over") {
		t.Errorf("row %d = %q, want message", 25/4, row)
	}
	if idx := strings.Index(row, "Game Over"); idx != (100-len("Game Over"))/2 {
		t.Errorf("message starts at %d, want centered", idx)
	}

	hud := rowText(screen, 25)
	if strings.Contains(hud, "Best") {
		t.Errorf("HUD = %q, best score should be hidden without records", hud)
	}
	if !strings.Contains(hud, "restart") {
		t.Errorf("HUD = %q, want restart hint", hud)
	}
}

// TestRendererTinyScreen 屏幕太小时不画也不崩溃
func TestRendererTinyScreen(t *testing.T) {
	screen := newTestScreen(t, 10, 1)
	r := newRenderer(config.DefaultGameplayConfig(), nil)
	r.Draw(screen, testFrame(components.PhasePlaying, components.CubeTintAlive))
}

func TestHintText(t *testing.T) {
	if hintText(components.PhaseDying) != "" {
		t.Error("dying phase should have no hint")
	}
	for _, phase := range []components.GamePhase{
		components.PhaseWaitingToStart,
		components.PhasePlaying,
		components.PhaseWaitingToRestart,
	} {
		if hintText(phase) == "" {
			t.Errorf("phase %v should have a hint", phase)
		}
	}
}
