// Botaneer 花盆构建器
//
// 用法：
//
//	go run . [flags]
//
// 参数：
//
//	--verbose          输出详细日志
//	--config <path>    使用指定的花盆构建器配置文件（默认使用内嵌的 data/pot_builder.yaml）
//	--builder          启动后直接进入花盆构建器
//
// 操作：
//
//	Tab        - 在主视图与构建器之间切换
//	1-4        - 选择工具（放置 / 移除 / 放大 / 缩小）
//	= / -      - 放大 / 缩小
//	WASD/方向键 - 平移视图
//	G          - 显示/隐藏网格
//	M          - 开关背景音乐
//	F11        - 切换全屏
//	Esc        - 返回主视图 / 退出
package main

import (
	"flag"
	"log"

	"github.com/decker502/botaneer/pkg/app"
	"github.com/decker502/botaneer/pkg/config"
	"github.com/decker502/botaneer/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", "", "花盆构建器配置文件路径（默认使用内嵌配置）")
	builderFlag = flag.Bool("builder", false, "启动后直接进入花盆构建器")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verboseFlag,
		ConfigPath:     *configFlag,
		StartInBuilder: *builderFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Botaneer - 花盆构建器")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(gameApp)
	gameApp.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}
