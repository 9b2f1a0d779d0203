package utils

import "testing"

// TestShouldRepeat 测试按住按键的重复触发节奏
func TestShouldRepeat(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		interval int
		want     bool
	}{
		{name: "未按下", duration: 0, interval: 2, want: false},
		{name: "第一帧立即触发", duration: 1, interval: 2, want: true},
		{name: "间隔内不触发", duration: 2, interval: 2, want: false},
		{name: "到达间隔触发", duration: 3, interval: 2, want: true},
		{name: "间隔为1每帧触发", duration: 7, interval: 1, want: true},
		{name: "长间隔", duration: 6, interval: 5, want: true},
		{name: "长间隔未到", duration: 5, interval: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldRepeat(tt.duration, tt.interval); got != tt.want {
				t.Errorf("ShouldRepeat(%d, %d) = %v, want %v", tt.duration, tt.interval, got, tt.want)
			}
		})
	}
}

// TestPointInRect 测试点与矩形的包含关系
func TestPointInRect(t *testing.T) {
	tests := []struct {
		name   string
		px, py int
		want   bool
	}{
		{name: "左上角包含", px: 10, py: 20, want: true},
		{name: "内部", px: 25, py: 35, want: true},
		{name: "右边界不包含", px: 50, py: 30, want: false},
		{name: "下边界不包含", px: 30, py: 60, want: false},
		{name: "外部", px: 0, py: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, 10, 20, 40, 40); got != tt.want {
				t.Errorf("PointInRect(%d, %d) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}
