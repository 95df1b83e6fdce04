package config

import (
	"testing"
)

// TestScreenMapperToScreen 测试场地坐标到屏幕坐标的转换
func TestScreenMapperToScreen(t *testing.T) {
	cfg := DefaultGameplayConfig()

	tests := []struct {
		name         string
		screenW      float64
		screenH      float64
		x, y         float64
		wantX, wantY float64
	}{
		{
			name:    "场地中心",
			screenW: 1000, screenH: 500,
			x: 0, y: 0,
			wantX: 500, wantY: 250,
		},
		{
			name:    "左上角",
			screenW: 1000, screenH: 500,
			x: -500, y: 250,
			wantX: 0, wantY: 0,
		},
		{
			name:    "右下角",
			screenW: 1000, screenH: 500,
			x: 500, y: -250,
			wantX: 1000, wantY: 500,
		},
		{
			name:    "缩小到一半屏幕",
			screenW: 500, screenH: 250,
			x: 100, y: 50,
			wantX: 300, wantY: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScreenMapper(cfg, tt.screenW, tt.screenH)
			gotX, gotY := m.ToScreen(tt.x, tt.y)

			epsilon := 0.01
			if gotX < tt.wantX-epsilon || gotX > tt.wantX+epsilon {
				t.Errorf("ToScreen() x = %.2f, want %.2f", gotX, tt.wantX)
			}
			if gotY < tt.wantY-epsilon || gotY > tt.wantY+epsilon {
				t.Errorf("ToScreen() y = %.2f, want %.2f", gotY, tt.wantY)
			}
		})
	}
}

// TestScreenMapperRectToScreen 测试中心矩形转换为屏幕左上角矩形
func TestScreenMapperRectToScreen(t *testing.T) {
	cfg := DefaultGameplayConfig()
	m := NewScreenMapper(cfg, GameWindowWidth, GameWindowHeight)

	// 40x40 方块位于场地中心
	x, y, w, h := m.RectToScreen(0, 0, 40, 40)
	if x != 480 || y != 230 {
		t.Errorf("RectToScreen() origin = (%.1f, %.1f), want (480, 230)", x, y)
	}
	if w != 40 || h != 40 {
		t.Errorf("RectToScreen() size = (%.1f, %.1f), want (40, 40)", w, h)
	}
}

// TestScreenMapperToField 测试终端字符网格坐标反算回场地坐标
func TestScreenMapperToField(t *testing.T) {
	cfg := DefaultGameplayConfig()
	m := NewScreenMapper(cfg, 100, 25)

	x, y := m.ToField(50, 12.5)
	if x != 0 || y != 0 {
		t.Errorf("ToField(50, 12.5) = (%.2f, %.2f), want (0, 0)", x, y)
	}

	x, y = m.ToField(0, 0)
	if x != -500 || y != 250 {
		t.Errorf("ToField(0, 0) = (%.2f, %.2f), want (-500, 250)", x, y)
	}

	// 往返转换
	sx, sy := m.ToScreen(120, -80)
	x, y = m.ToField(sx, sy)
	if x < 119.99 || x > 120.01 || y < -80.01 || y > -79.99 {
		t.Errorf("round trip = (%.2f, %.2f), want (120, -80)", x, y)
	}
}
