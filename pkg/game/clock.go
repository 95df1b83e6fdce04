package game

import "time"

// Clock 以真实时间计算帧间隔
//
// ebiten 的 Update 按 TPS 调用，但窗口被拖动、最小化或机器卡顿时调用间隔会变化。
// 游戏逻辑按实际经过的时间推进。
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// NewClock 创建使用系统时间的时钟
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource 创建使用指定时间源的时钟
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Delta 返回距上次调用经过的秒数，第一次调用返回 0
func (c *Clock) Delta() float64 {
	current := c.now()
	if !c.started {
		c.started = true
		c.last = current
		return 0
	}
	elapsed := current.Sub(c.last).Seconds()
	c.last = current
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Reset 下一次 Delta 重新从 0 开始
func (c *Clock) Reset() {
	c.started = false
}
