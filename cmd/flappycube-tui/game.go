package main

import (
	"log"
	"time"

	"github.com/decker502/flappycube/pkg/save"
	"github.com/decker502/flappycube/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// frameInterval 终端端刷新间隔（约 60 FPS）
const frameInterval = 16 * time.Millisecond

// terminalGame 终端前端：tcell 负责输入与绘制，beep 负责音效
type terminalGame struct {
	screen   tcell.Screen
	loop     *systems.GameLoop
	renderer *renderer
	input    *holdInput
	settings *save.SettingsManager
}

// handleKey 处理一次按键
//
// 返回:
//   - bool: false 表示退出
func (g *terminalGame) handleKey(key tcell.Key, ch rune) bool {
	switch classifyKey(key, ch) {
	case actionQuit:
		return false
	case actionFlap:
		g.input.Press()
	case actionToggleSound:
		g.toggleSound()
	}
	return true
}

func (g *terminalGame) toggleSound() {
	enabled := !g.settings.GetSettings().SoundEnabled
	g.settings.SetSoundEnabled(enabled)
	if err := g.settings.Save(); err != nil {
		log.Printf("[TUI] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[TUI] 音效: %v", enabled)
}

// tick 推进一帧并重绘
func (g *terminalGame) tick(deltaTime float64) {
	g.loop.Tick(deltaTime, g.input)
	g.renderer.Draw(g.screen, g.loop.Snapshot())
	g.screen.Show()
}

// run 主循环：事件协程把 tcell 事件送进通道，定时器驱动游戏帧
func (g *terminalGame) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	g.tick(0)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.handleKey(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			last = now
			g.tick(deltaTime)
		}
	}
}
