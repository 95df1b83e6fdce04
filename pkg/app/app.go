// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/embedded"
	"github.com/decker502/flappycube/pkg/game"
	"github.com/decker502/flappycube/pkg/save"
	"github.com/decker502/flappycube/pkg/scenes"
	"github.com/decker502/flappycube/pkg/utils"
)

// DefaultConfigPath 嵌入的默认玩法配置
const DefaultConfigPath = "data/gameplay.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 玩法配置文件（.yaml/.yml/.toml），为空时使用嵌入的默认配置
	ConfigPath string
	// Seed 间隙高度随机种子，0 表示使用当前时间
	Seed int64
	// Fullscreen 强制全屏启动（否则使用保存的设置）
	Fullscreen bool
	// FlapKeys 飞行键名称，为空使用默认按键
	FlapKeys []string
	// AppName gdata 存储名称，为空使用默认值
	AppName string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *save.SettingsManager
	clock                    *game.Clock
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplay, err := LoadGameplay(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	keys, err := utils.ParseKeys(cfg.FlapKeys)
	if err != nil {
		return nil, fmt.Errorf("invalid flap keys: %w", err)
	}

	store := save.OpenStore(cfg.AppName)
	settingsManager := save.NewSettingsManager(store)
	recordManager := save.NewRecordManager(store)

	audioContext := audio.NewContext(config.AudioSampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	input := utils.NewFlapInput(keys)
	log.Printf("[App] Flap keys: %v", input.Keys())

	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Gameplay: gameplay,
		Rand:     rand.New(rand.NewSource(seed)),
		Input:    input,
		Audio:    audioManager,
		Settings: settingsManager,
		Records:  recordManager,
		Fonts:    game.NewFontManager(),
	})
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		clock:           game.NewClock(),
	}, nil
}

// LoadGameplay 加载玩法配置
//
// path 为空时读取嵌入的 data/gameplay.yaml；嵌入资源未初始化时使用内置默认值。
func LoadGameplay(path string) (*config.GameplayConfig, error) {
	if path != "" {
		gameplay, err := config.LoadGameplayConfig(path)
		if err != nil {
			return nil, fmt.Errorf("玩法配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载玩法配置: %s", path)
		return gameplay, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] 使用内置默认玩法配置")
		return config.DefaultGameplayConfig(), nil
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置读取失败: %w", err)
	}
	gameplay, err := config.ParseGameplayConfig(data, config.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("玩法配置解析失败: %w", err)
	}
	log.Printf("[Config] 加载嵌入玩法配置: %s", DefaultConfigPath)
	return gameplay, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，逻辑按真实经过的时间推进
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.InitialWindowWidth, config.InitialWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(a.clock.Delta())
	return nil
}

// toggleFullscreen F11 切换全屏并记住设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 区域填充黑色，画面使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// SaveOnExit 保存当前场景与设置
func (a *App) SaveOnExit() {
	if !a.sceneManager.SaveOnExit() {
		log.Printf("[App] Warning: scene failed to save on exit")
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}
