package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如计分冷却）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "scoring"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Advance 推进计时器并刷新 IsReady
func (t *TimerComponent) Advance(deltaTime float64) {
	t.CurrentTime += deltaTime
	t.IsReady = t.CurrentTime >= t.TargetTime
}

// Reset 将计时器归零
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = t.TargetTime <= 0
}

// Fill 将计时器直接置为完成状态
func (t *TimerComponent) Fill() {
	t.CurrentTime = t.TargetTime
	t.IsReady = true
}
