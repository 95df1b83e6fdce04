package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// cellScreen 渲染器需要的终端屏幕能力，tcell.Screen 满足该接口
type cellScreen interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// 终端配色，与桌面端保持一致
var (
	skyStyle      = tcell.StyleDefault.Background(rgb(config.SkyColor))
	columnStyle   = tcell.StyleDefault.Background(rgb(config.ColumnColor))
	messageStyle  = skyStyle.Foreground(rgb(config.HUDTextColor)).Bold(true)
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	hudScoreStyle = hudStyle.Bold(true)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func cubeStyle(tint components.CubeTint) tcell.Style {
	switch tint {
	case components.CubeTintDead:
		return tcell.StyleDefault.Background(rgb(config.CubeDeadColor))
	case components.CubeTintGameOver:
		return tcell.StyleDefault.Background(rgb(config.CubeGameOverColor))
	default:
		return tcell.StyleDefault.Background(rgb(config.CubeAliveColor))
	}
}

// renderer 把一帧画到字符网格上
//
// 最后一行是 HUD（分数、最好成绩、按键提示），其余行是场地。
// 每个字符格取其中心点反算场地坐标，再判断落在方块、柱子还是天空上。
type renderer struct {
	cfg *config.GameplayConfig

	score   int
	message string
	best    func() int
}

func newRenderer(cfg *config.GameplayConfig, best func() int) *renderer {
	return &renderer{cfg: cfg, best: best}
}

// ShowScore 实现 systems.Display
func (r *renderer) ShowScore(score int) {
	r.score = score
}

// ShowMessage 实现 systems.Display
func (r *renderer) ShowMessage(message string) {
	r.message = message
}

// Draw 绘制一帧，屏幕太小时什么都不画
func (r *renderer) Draw(screen cellScreen, frame systems.Frame) {
	width, height := screen.Size()
	rows := height - 1
	if width <= 0 || rows <= 0 {
		return
	}

	mapper := config.NewScreenMapper(r.cfg, float64(width), float64(rows))
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < width; cx++ {
			fx, fy := mapper.ToField(float64(cx)+0.5, float64(cy)+0.5)
			screen.SetContent(cx, cy, ' ', nil, r.styleAt(frame, fx, fy))
		}
	}

	if r.message != "" {
		drawText(screen, (width-len(r.message))/2, rows/4, r.message, messageStyle)
	}
	r.drawHUD(screen, frame.Phase, width, rows)
}

func (r *renderer) styleAt(frame systems.Frame, fx, fy float64) tcell.Style {
	cube := frame.Cube
	half := cube.Size / 2
	if math.Abs(fx-cube.X) <= half && math.Abs(fy-cube.Y) <= half {
		return cubeStyle(cube.Tint)
	}

	for _, ob := range frame.Obstacles {
		if math.Abs(fx-ob.X) > ob.Width/2 {
			continue
		}
		gapTop := ob.GapY + ob.Interspace/2
		gapBottom := ob.GapY - ob.Interspace/2
		if fy >= gapTop || fy <= gapBottom {
			return columnStyle
		}
	}
	return skyStyle
}

func (r *renderer) drawHUD(screen cellScreen, phase components.GamePhase, width, row int) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, row, ' ', nil, hudStyle)
	}

	score := fmt.Sprintf(" Score %d", r.score)
	x := drawText(screen, 0, row, score, hudScoreStyle)
	if r.best != nil {
		drawText(screen, x, row, fmt.Sprintf("  Best %d", r.best()), hudStyle)
	}

	hint := hintText(phase)
	drawText(screen, width-len(hint)-1, row, hint, hudStyle)
}

// hintText 各阶段的按键提示
func hintText(phase components.GamePhase) string {
	switch phase {
	case components.PhaseWaitingToStart:
		return "F/Space/Up: start  M: sound  Esc: quit"
	case components.PhasePlaying:
		return "F/Space/Up: flap  Esc: quit"
	case components.PhaseWaitingToRestart:
		return "F/Space/Up: restart  Esc: quit"
	default:
		return ""
	}
}

// drawText 从 (x, y) 开始写一行 ASCII 文本，超出屏幕的部分被裁掉
//
// 返回:
//   - int: 文本结束后的下一个列号
func drawText(screen cellScreen, x, y int, text string, style tcell.Style) int {
	width, _ := screen.Size()
	for _, ch := range text {
		if x >= 0 && x < width {
			screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
