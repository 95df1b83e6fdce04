package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/systems"
	"github.com/decker502/flappycube/pkg/utils"
)

const (
	hudMargin = 16.0

	// messagePopDuration 提示文本从上方滑入的时长（秒）
	messagePopDuration = 0.3
)

// drawHUD 分数（左上）、最高分（右上）、提示文本（顶部居中）、操作提示（底部）
func (s *GameScene) drawHUD(screen *ebiten.Image, frame systems.Frame) {
	drawShadowText(screen, fmt.Sprintf("%d", s.score), s.scoreFont, hudMargin, hudMargin, config.HUDTextColor)

	if s.records != nil {
		best := fmt.Sprintf("Best %d", s.records.BestScore())
		width := text.Advance(best, s.hintFont)
		drawShadowText(screen, best, s.hintFont, float64(config.GameWindowWidth)-width-hudMargin, hudMargin, config.HUDTextColor)
	}

	if s.message != "" {
		width := text.Advance(s.message, s.messageFont)
		x := (float64(config.GameWindowWidth) - width) / 2
		drawShadowText(screen, s.message, s.messageFont, x, s.messageY(), config.HUDTextColor)
	}

	if hint := s.hintText(frame.Phase); hint != "" {
		width := text.Advance(hint, s.hintFont)
		height := s.hintFont.Metrics().HAscent + s.hintFont.Metrics().HDescent
		x := (float64(config.GameWindowWidth) - width) / 2
		y := float64(config.GameWindowHeight) - height - hudMargin

		// 半透明背景提高可读性
		ebitenutil.DrawRect(screen, x-6, y-4, width+12, height+8, color.RGBA{A: 120})
		drawText(screen, hint, s.hintFont, x, y, config.HUDTextColor)
	}
}

// messageY 提示文本的纵坐标，刚出现时从上方缓出滑入
func (s *GameScene) messageY() float64 {
	t := utils.EaseOutCubic(utils.Progress(s.messageAge, messagePopDuration))
	return utils.Lerp(hudMargin-24, hudMargin+8, t)
}

// hintText 等待阶段显示操作提示
func (s *GameScene) hintText(phase components.GamePhase) string {
	action := "F / Space / Click"
	if utils.IsMobile() {
		action = "Tap"
	}
	switch phase {
	case components.PhaseWaitingToStart:
		return action + " to flap   M: sound on/off   F11: fullscreen"
	case components.PhaseWaitingToRestart:
		return action + " to play again"
	default:
		return ""
	}
}

func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawShadowText 先画 2 像素偏移的黑色阴影
func drawShadowText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	drawText(screen, str, face, x+2, y+2, color.RGBA{A: 160})
	drawText(screen, str, face, x, y, clr)
}
