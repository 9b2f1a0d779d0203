package config

// 布局配置常量
// 本文件定义了窗口逻辑尺寸和花盆构建器侧边工具栏的位置

const (
	// GameWindowWidth 是游戏逻辑屏幕宽度
	GameWindowWidth = 854

	// GameWindowHeight 是游戏逻辑屏幕高度
	GameWindowHeight = 480
)

// Sidebar Configuration (侧边工具栏配置)
// 工具图标为正方形，每行两个，从右上角向下排列
const (
	// SidebarRightOffset 是工具栏左边缘距离屏幕右边缘的距离
	SidebarRightOffset = 80

	// SidebarTop 是第一行图标的Y坐标
	SidebarTop = 40

	// SidebarIconSize 是图标边长
	SidebarIconSize = 40

	// SidebarColumns 是每行图标数
	SidebarColumns = 2
)

// SidebarIconRect 返回第 index 个工具图标的矩形（屏幕坐标）
// 返回值：x, y, size
func SidebarIconRect(index int) (int, int, int) {
	col := index % SidebarColumns
	row := index / SidebarColumns
	x := GameWindowWidth - SidebarRightOffset + col*SidebarIconSize
	y := SidebarTop + row*SidebarIconSize
	return x, y, SidebarIconSize
}
