package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/flappycube/pkg/app"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "玩法配置文件 (.yaml/.yml/.toml)，为空使用内置配置")
	seed := flag.Int64("seed", 0, "间隙高度随机种子，0 表示使用当前时间")
	fullscreen := flag.Bool("fullscreen", false, "全屏启动")
	keys := flag.String("keys", "", "飞行键，逗号分隔，如 F,Space,ArrowUp")
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Fullscreen: *fullscreen,
	}
	if *keys != "" {
		cfg.FlapKeys = strings.Split(*keys, ",")
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.InitialWindowWidth, config.InitialWindowHeight)
	ebiten.SetWindowTitle("Flappy Cube")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	// 窗口关闭或 RunGame 出错都保存最高分与设置
	gameApp.SaveOnExit()

	if runErr != nil {
		log.Fatal(runErr)
	}
}
