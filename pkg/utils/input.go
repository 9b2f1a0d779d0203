// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的指针输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 点击/触摸位置
	X, Y int
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		return state
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
	}
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// IsAnyKeyJustPressed 检查任一按键是否在本帧刚刚按下
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// IsAnyKeyRepeating 检查任一按键是否按住并到达重复触发的帧
func IsAnyKeyRepeating(interval int, keys ...ebiten.Key) bool {
	for _, key := range keys {
		if ShouldRepeat(inpututil.KeyPressDuration(key), interval) {
			return true
		}
	}
	return false
}

// ShouldRepeat 根据按住的帧数判断本帧是否触发
// 按下的第一帧立即触发，之后每隔 interval 帧触发一次
func ShouldRepeat(pressDuration, interval int) bool {
	if pressDuration <= 0 {
		return false
	}
	if pressDuration == 1 || interval <= 1 {
		return true
	}
	return (pressDuration-1)%interval == 0
}

// PointInRect 检查点 (px, py) 是否在矩形内（左闭右开）
func PointInRect(px, py, x, y, w, h int) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
