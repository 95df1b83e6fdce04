// Package utils 提供 ebiten 端的输入、平台检测与缓动工具
package utils

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultFlapKeys 默认飞行键
var DefaultFlapKeys = []ebiten.Key{ebiten.KeyF, ebiten.KeySpace, ebiten.KeyArrowUp}

// FlapInput 轮询键盘、鼠标左键与触摸，实现 systems.InputSource
//
// 返回的是电平（是否按住），按下边沿由游戏状态机自行判断。
type FlapInput struct {
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID

	// 以下函数可替换，测试时不需要 ebiten 运行
	isKeyPressed   func(ebiten.Key) bool
	isMousePressed func() bool
	touchCount     func(buf []ebiten.TouchID) int
}

// NewFlapInput 创建飞行输入，keys 为空时使用 DefaultFlapKeys
func NewFlapInput(keys []ebiten.Key) *FlapInput {
	if len(keys) == 0 {
		keys = DefaultFlapKeys
	}
	fi := &FlapInput{
		keys:         keys,
		isKeyPressed: ebiten.IsKeyPressed,
		isMousePressed: func() bool {
			return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		},
	}
	fi.touchCount = func(buf []ebiten.TouchID) int {
		fi.touchIDs = ebiten.AppendTouchIDs(buf[:0])
		return len(fi.touchIDs)
	}
	return fi
}

// FlapPressed 任意飞行键、鼠标左键或触摸处于按下状态
func (fi *FlapInput) FlapPressed() bool {
	for _, key := range fi.keys {
		if fi.isKeyPressed(key) {
			return true
		}
	}
	if fi.isMousePressed() {
		return true
	}
	return fi.touchCount(fi.touchIDs) > 0
}

// Keys 返回当前绑定的飞行键
func (fi *FlapInput) Keys() []ebiten.Key {
	return fi.keys
}

// ParseKeys 将按键名称（如 "F"、"Space"、"ArrowUp"）解析为 ebiten.Key
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("unknown key %q: %w", name, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
