package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/game"
	"github.com/decker502/flappycube/pkg/save"
	"github.com/decker502/flappycube/pkg/systems"
)

// GameSceneOptions 创建游戏场景所需的依赖
type GameSceneOptions struct {
	Gameplay *config.GameplayConfig
	Rand     *rand.Rand
	Input    systems.InputSource
	Audio    *game.AudioManager    // 可为 nil
	Settings *save.SettingsManager // 可为 nil
	Records  *save.RecordManager   // 可为 nil
	Fonts    *game.FontManager
}

// GameScene 游戏主场景
//
// 把 GameLoop 接到 ebiten：每帧把真实帧间隔和飞行输入交给游戏循环，
// 再按快照绘制天空、柱子、方块和 HUD。
// 分数与提示文本由游戏循环通过 Display 接口推送。
type GameScene struct {
	loop     *systems.GameLoop
	input    systems.InputSource
	mapper   config.ScreenMapper
	settings *save.SettingsManager
	records  *save.RecordManager

	scoreFont   *text.GoTextFace
	messageFont *text.GoTextFace
	hintFont    *text.GoTextFace

	// Display 推送的 HUD 内容
	score   int
	message string
	// messageAge 当前提示文本已显示的时间（秒），驱动弹出动画
	messageAge float64
}

// NewGameScene 创建游戏场景
func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Gameplay == nil {
		opts.Gameplay = config.DefaultGameplayConfig()
	}
	if opts.Fonts == nil {
		opts.Fonts = game.NewFontManager()
	}

	s := &GameScene{
		input:    opts.Input,
		mapper:   config.NewScreenMapper(opts.Gameplay, config.GameWindowWidth, config.GameWindowHeight),
		settings: opts.Settings,
		records:  opts.Records,
	}

	if err := s.loadFonts(opts.Fonts); err != nil {
		return nil, err
	}

	hooks := systems.Hooks{Display: s}
	// 避免把 nil 指针装进接口
	if opts.Audio != nil {
		hooks.Sound = opts.Audio
	}
	if opts.Records != nil {
		hooks.Recorder = opts.Records
	}

	loop, err := systems.NewGameLoop(opts.Gameplay, opts.Rand, hooks)
	if err != nil {
		return nil, fmt.Errorf("failed to create game loop: %w", err)
	}
	s.loop = loop

	log.Printf("[GameScene] 场景创建完成")
	return s, nil
}

func (s *GameScene) loadFonts(fonts *game.FontManager) error {
	var err error
	if s.scoreFont, err = fonts.LoadFont(game.FontBold, 36); err != nil {
		return fmt.Errorf("failed to load score font: %w", err)
	}
	if s.messageFont, err = fonts.LoadFont(game.FontBold, 28); err != nil {
		return fmt.Errorf("failed to load message font: %w", err)
	}
	if s.hintFont, err = fonts.LoadFont(game.FontRegular, 16); err != nil {
		return fmt.Errorf("failed to load hint font: %w", err)
	}
	return nil
}

// ShowScore 实现 systems.Display
func (s *GameScene) ShowScore(score int) {
	s.score = score
}

// ShowMessage 实现 systems.Display
func (s *GameScene) ShowMessage(message string) {
	s.message = message
	s.messageAge = 0
}

// Update 推进一帧游戏逻辑
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.ToggleSound()
	}
	s.loop.Tick(deltaTime, s.input)
	s.messageAge += deltaTime
}

// ToggleSound 切换音效开关并保存设置
func (s *GameScene) ToggleSound() {
	if s.settings == nil {
		return
	}
	enabled := !s.settings.GetSettings().SoundEnabled
	s.settings.SetSoundEnabled(enabled)
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[GameScene] 音效: %v", enabled)
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	frame := s.loop.Snapshot()

	screen.Fill(config.SkyColor)
	for _, ob := range frame.Obstacles {
		s.drawObstacle(screen, ob)
	}
	s.drawCube(screen, frame.Cube)
	s.drawHUD(screen, frame)
}

func (s *GameScene) drawObstacle(screen *ebiten.Image, ob systems.ObstacleView) {
	x, y, w, h := s.mapper.RectToScreen(ob.X, ob.UpperColumnY, ob.Width, ob.ColumnHeight)
	ebitenutil.DrawRect(screen, x, y, w, h, config.ColumnColor)

	x, y, w, h = s.mapper.RectToScreen(ob.X, ob.LowerColumnY, ob.Width, ob.ColumnHeight)
	ebitenutil.DrawRect(screen, x, y, w, h, config.ColumnColor)
}

func (s *GameScene) drawCube(screen *ebiten.Image, cube systems.CubeView) {
	x, y, w, h := s.mapper.RectToScreen(cube.X, cube.Y, cube.Size, cube.Size)
	ebitenutil.DrawRect(screen, x, y, w, h, cubeColor(cube.Tint))
}

// SaveOnExit 实现 game.Saveable：保存最高分
func (s *GameScene) SaveOnExit() bool {
	if s.records == nil {
		return true
	}
	if err := s.records.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save record: %v", err)
		return false
	}
	return true
}

// cubeColor 方块颜色
func cubeColor(tint components.CubeTint) color.RGBA {
	switch tint {
	case components.CubeTintDead:
		return config.CubeDeadColor
	case components.CubeTintGameOver:
		return config.CubeGameOverColor
	default:
		return config.CubeAliveColor
	}
}
