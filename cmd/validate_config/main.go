// validate_config 检查花盆构建器配置文件
//
// 用法：
//
//	go run ./cmd/validate_config [path]
//
// 默认检查 data/pot_builder.yaml，输出解析后的参数以及生成的可建造区域大小。
package main

import (
	"fmt"
	"os"

	"github.com/decker502/botaneer/pkg/app"
	"github.com/decker502/botaneer/pkg/config"
	"github.com/decker502/botaneer/pkg/pot"
)

func main() {
	path := config.DefaultPotBuilderConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadPotBuilderConfig(path)
	if err != nil {
		fmt.Printf("❌ 配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确: %s\n", path)
	fmt.Printf("✅ 画布 %dx%d，格子 %dx%d，缩放 %d-%d\n",
		cfg.CanvasWidth, cfg.CanvasHeight, cfg.CellWidth, cfg.CellHeight, cfg.ZoomMin, cfg.ZoomMax)

	slots := pot.GenerateBuildArea(app.PotOptions(cfg))
	if len(slots) == 0 {
		fmt.Printf("❌ 可建造区域为空，请检查 buildArea 边距\n")
		os.Exit(1)
	}

	first, last := slots[0], slots[len(slots)-1]
	fmt.Printf("✅ 可建造区域 %d 格，从 (%d,%d) 到 (%d,%d)\n",
		len(slots), first.X, first.Y, last.X, last.Y)

	if cfg.Music.Dir != "" {
		if _, err := os.Stat(cfg.Music.Dir); err != nil {
			fmt.Printf("⚠️  音乐目录不可用: %v\n", err)
		}
	}
}
