package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// defaultHoldWindow 终端只上报按下事件，不上报松开事件。
// 最近一次按键在该窗口内视为"仍然按住"，需要覆盖终端自动重复的间隔。
const defaultHoldWindow = 150 * time.Millisecond

// holdInput 终端输入源
//
// 按键事件由事件协程写入，游戏循环在同一协程中查询，
// 两者都在主循环的 select 中处理，不需要加锁。
type holdInput struct {
	window  time.Duration
	now     func() time.Time
	last    time.Time
	pressed bool
}

func newHoldInput(window time.Duration) *holdInput {
	return newHoldInputWithClock(window, time.Now)
}

func newHoldInputWithClock(window time.Duration, now func() time.Time) *holdInput {
	if window <= 0 {
		window = defaultHoldWindow
	}
	return &holdInput{window: window, now: now}
}

// Press 记录一次飞行键按下
func (in *holdInput) Press() {
	in.last = in.now()
	in.pressed = true
}

// FlapPressed 实现 systems.InputSource
func (in *holdInput) FlapPressed() bool {
	if !in.pressed {
		return false
	}
	if in.now().Sub(in.last) > in.window {
		in.pressed = false
	}
	return in.pressed
}

// keyAction 终端按键对应的动作
type keyAction int

const (
	actionNone keyAction = iota
	actionFlap
	actionToggleSound
	actionQuit
)

// classifyKey 将 tcell 按键映射为动作，ch 只在 KeyRune 时有意义
func classifyKey(key tcell.Key, ch rune) keyAction {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp, tcell.KeyEnter:
		return actionFlap
	case tcell.KeyRune:
		switch ch {
		case 'f', 'F', ' ':
			return actionFlap
		case 'm', 'M':
			return actionToggleSound
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}
