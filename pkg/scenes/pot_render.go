package scenes

import (
	"image/color"

	"github.com/decker502/botaneer/pkg/pot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 花盆构建器配色
var (
	colorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBuildGrid  = color.RGBA{R: 50, G: 205, B: 50, A: 255}
	colorSlotFill   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorSlotBorder = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colorPot        = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	colorSoil       = color.RGBA{R: 196, G: 164, B: 132, A: 255}
	colorSidebar    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorHighlight  = color.RGBA{R: 255, G: 255, B: 0, A: 255}

	colorText        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorError       = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	colorSidebarText = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// fillCells 绘制实心格子
func fillCells(screen *ebiten.Image, cells []pot.Cell, clr color.Color) {
	for _, c := range cells {
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), clr, false)
	}
}

// strokeCells 绘制格子边框
func strokeCells(screen *ebiten.Image, cells []pot.Cell, width float32, clr color.Color) {
	for _, c := range cells {
		vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), width, clr, false)
	}
}
