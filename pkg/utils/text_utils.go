package utils

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// UIFontSize 是状态栏和侧边栏文字的默认字号
const UIFontSize = 12

var (
	uiFontOnce   sync.Once
	uiFontSource *text.GoTextFaceSource
	uiFontErr    error

	uiFaceCache = make(map[float64]*text.GoTextFace)
)

// UIFace 返回指定字号的界面字体（Go Regular），按字号缓存
func UIFace(size float64) (*text.GoTextFace, error) {
	uiFontOnce.Do(func() {
		uiFontSource, uiFontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if uiFontErr != nil {
			uiFontErr = fmt.Errorf("failed to create UI font source: %w", uiFontErr)
		}
	})
	if uiFontErr != nil {
		return nil, uiFontErr
	}

	if face, ok := uiFaceCache[size]; ok {
		return face, nil
	}
	face := &text.GoTextFace{
		Source:    uiFontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	uiFaceCache[size] = face
	return face, nil
}

// DrawText 在 (x, y) 处绘制一行文字，(x, y) 为文字左上角
// 字体不可用时退回到调试字体
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	drawAligned(screen, s, x, y, clr, text.AlignStart)
}

// DrawTextCentered 以 x 为水平中心绘制一行文字
func DrawTextCentered(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	drawAligned(screen, s, x, y, clr, text.AlignCenter)
}

func drawAligned(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	face, err := UIFace(UIFontSize)
	if err != nil {
		// 调试字体每个字符宽 6 像素
		if align == text.AlignCenter {
			x -= float64(len(s) * 3)
		}
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

// MeasureText 返回一行文字在界面字体下的宽高
func MeasureText(s string) (float64, float64) {
	face, err := UIFace(UIFontSize)
	if err != nil {
		return float64(len(s) * 6), 16
	}
	return text.Measure(s, face, 0)
}
