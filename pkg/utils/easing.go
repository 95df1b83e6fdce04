package utils

import "math"

// 缓动函数：接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]
// 用于 HUD 提示文本的弹出动画

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress 已用时间占总时长的比例，截断到 [0, 1]
// duration <= 0 时视为动画已完成
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, elapsed/duration))
}
