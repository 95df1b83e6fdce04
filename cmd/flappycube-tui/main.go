// flappycube-tui 在终端中运行 Flappy Cube
//
// 与桌面版共用核心逻辑、玩法配置和存档（最高分、音效设置），
// 用字符网格代替窗口绘制。
//
// 用法:
//
//	flappycube-tui [-config data/gameplay.yaml] [-seed 42] [-verbose -log flappycube-tui.log]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/save"
	"github.com/decker502/flappycube/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "玩法配置文件 (.yaml/.yml/.toml)，为空使用默认配置")
	seed := flag.Int64("seed", 0, "间隙高度随机种子，0 表示使用当前时间")
	verbose := flag.Bool("verbose", false, "把详细日志写入 -log 指定的文件")
	logPath := flag.String("log", "flappycube-tui.log", "日志文件路径（仅 -verbose 时使用）")
	hold := flag.Duration("hold", defaultHoldWindow, "按键视为按住的时长")
	flag.Parse()

	// 终端被游戏占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *verbose {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultGameplayConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameplayConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载玩法配置失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[TUI] 随机种子: %d", *seed)

	store := save.OpenStore(save.DefaultAppName)
	settings := save.NewSettingsManager(store)
	records := save.NewRecordManager(store)

	rend := newRenderer(cfg, records.BestScore)
	hooks := systems.Hooks{Display: rend, Recorder: records}

	sound, err := newBeepSound(settings)
	if err != nil {
		// 没有声卡时继续无声运行
		log.Printf("[TUI] Warning: %v", err)
	} else {
		hooks.Sound = sound
	}

	loop, err := systems.NewGameLoop(cfg, rand.New(rand.NewSource(*seed)), hooks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法创建终端屏幕: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "无法初始化终端: %v\n", err)
		os.Exit(1)
	}

	game := &terminalGame{
		screen:   screen,
		loop:     loop,
		renderer: rend,
		input:    newHoldInput(*hold),
		settings: settings,
	}
	game.run()

	screen.Fini()
	if sound != nil {
		sound.Close()
	}
	records.SaveOnExit()
	if err := settings.Save(); err != nil {
		log.Printf("[TUI] Warning: Failed to save settings: %v", err)
	}
	fmt.Println(recordSummary(records.Record()))
}

// recordSummary 退出后打印到终端的成绩摘要
func recordSummary(r save.Record) string {
	if r.GamesPlayed == 0 {
		return "还没有完成的对局"
	}
	return fmt.Sprintf("上一局 %d 分，最高分 %d，累计 %d 局", r.LastScore, r.BestScore, r.GamesPlayed)
}
