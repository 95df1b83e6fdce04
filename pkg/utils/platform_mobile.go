//go:build mobile

package utils

// IsMobile 移动端（gomobile/ebitenmobile 构建）始终为 true，
// HUD 据此把按键提示换成触屏提示
func IsMobile() bool {
	return true
}
