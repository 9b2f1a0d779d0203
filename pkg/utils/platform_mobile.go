//go:build mobile

package utils

// IsMobile 在 ebitenmobile 构建中始终返回 true
// 场景据此隐藏键盘提示，应用直接进入花盆构建器
func IsMobile() bool {
	return true
}
