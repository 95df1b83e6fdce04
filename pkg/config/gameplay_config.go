package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// GameplayConfig 游戏玩法配置
//
// 所有坐标使用"场地坐标系"：原点在场地中心，X 向右，Y 向上。
//
// 配置文件位置: data/gameplay.yaml（也支持 .toml）
type GameplayConfig struct {
	Field      FieldConfig     `yaml:"field" toml:"field"`
	Cube       CubeConfig      `yaml:"cube" toml:"cube"`
	Obstacle   ObstacleConfig  `yaml:"obstacle" toml:"obstacle"`
	Physics    PhysicsConfig   `yaml:"physics" toml:"physics"`
	Messages   MessageConfig   `yaml:"messages" toml:"messages"`
	Milestones []MilestoneRule `yaml:"milestones" toml:"milestones"`
}

// FieldConfig 场地尺寸
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Depth  float64 `yaml:"depth" toml:"depth"`
}

// CubeConfig 玩家方块配置
type CubeConfig struct {
	Size float64 `yaml:"size" toml:"size"`
	// X 方块固定的水平位置
	X float64 `yaml:"x" toml:"x"`
}

// ObstacleConfig 障碍物配置
type ObstacleConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	ColumnHeight float64 `yaml:"columnHeight" toml:"columnHeight"`
	// Interspace 上下柱子之间的固定间隙高度
	Interspace float64 `yaml:"interspace" toml:"interspace"`
	// Distance 相邻障碍物的水平间距
	Distance float64 `yaml:"distance" toml:"distance"`
	// MovingSpeed 障碍物每秒向左移动的距离
	MovingSpeed float64 `yaml:"movingSpeed" toml:"movingSpeed"`
	// GapRangeFactor 间隙中心随机范围占可用高度的比例
	GapRangeFactor float64 `yaml:"gapRangeFactor" toml:"gapRangeFactor"`
}

// PhysicsConfig 方块运动参数
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity" toml:"gravity"`
	// InitialFallSpeed 开局/重开时的下落速度（正值向下）
	InitialFallSpeed float64 `yaml:"initialFallSpeed" toml:"initialFallSpeed"`
	// FlySpeed 按住飞行键时强制设置的上升速度
	FlySpeed float64 `yaml:"flySpeed" toml:"flySpeed"`
	// MaxDeltaTime 单帧最大时间步长（秒），防止后台恢复时穿透柱子
	MaxDeltaTime float64 `yaml:"maxDeltaTime" toml:"maxDeltaTime"`
}

// MessageConfig 状态提示文本
type MessageConfig struct {
	Start    string `yaml:"start" toml:"start"`
	GameOver string `yaml:"gameOver" toml:"gameOver"`
	Restart  string `yaml:"restart" toml:"restart"`
	// RestartPrompt 方块落地后提示重新开始，为空时保留 GameOver 文本
	RestartPrompt string `yaml:"restartPrompt" toml:"restartPrompt"`
}

// MilestoneRule 得分里程碑：分数达到 Score 后显示 Message
type MilestoneRule struct {
	Score   int    `yaml:"score" toml:"score"`
	Message string `yaml:"message" toml:"message"`
}

// DefaultGameplayConfig 返回默认玩法配置
func DefaultGameplayConfig() *GameplayConfig {
	const fieldWidth = 1000.0
	const cubeSize = 40.0
	return &GameplayConfig{
		Field: FieldConfig{
			Width:  fieldWidth,
			Height: 500,
			Depth:  100,
		},
		Cube: CubeConfig{
			Size: cubeSize,
			X:    -fieldWidth / 3,
		},
		Obstacle: ObstacleConfig{
			Width:          100,
			ColumnHeight:   500,
			Interspace:     cubeSize * 3.5,
			Distance:       300,
			MovingSpeed:    80,
			GapRangeFactor: 0.9,
		},
		Physics: PhysicsConfig{
			Gravity:          600,
			InitialFallSpeed: 15,
			FlySpeed:         270,
			MaxDeltaTime:     0.25,
		},
		Messages: MessageConfig{
			Start:    "Press F to start!",
			GameOver: "Game Over",
			Restart:  "Come on!",

			RestartPrompt: "Game Over! Press F to play again",
		},
		Milestones: []MilestoneRule{
			{Score: 10, Message: "Not Bad!"},
			{Score: 20, Message: "Very good!"},
			{Score: 50, Message: "Excellent!"},
			{Score: 100, Message: "You are the hero!"},
		},
	}
}

// LoadGameplayConfig 从文件加载玩法配置
//
// 文件中未出现的字段保留默认值。根据扩展名选择格式：
// .yaml/.yml 使用 YAML，.toml 使用 TOML。
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return ParseGameplayConfig(data, FormatFromPath(path))
}

// ConfigFormat 配置文件格式
type ConfigFormat string

const (
	FormatYAML ConfigFormat = "yaml"
	FormatTOML ConfigFormat = "toml"
)

// FormatFromPath 根据扩展名推断配置格式，未知扩展名按 YAML 处理
func FormatFromPath(path string) ConfigFormat {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// ParseGameplayConfig 解析配置内容并校验
func ParseGameplayConfig(data []byte, format ConfigFormat) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse gameplay config (toml): %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse gameplay config (yaml): %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}
	return cfg, nil
}

// EncodeGameplayConfig 按指定格式序列化配置，用于 YAML/TOML 互相转换
func EncodeGameplayConfig(cfg *GameplayConfig, format ConfigFormat) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode gameplay config (toml): %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode gameplay config (yaml): %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported config format: %q", format)
	}
}

// Validate 验证配置有效性
func (c *GameplayConfig) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"cube.size", c.Cube.Size},
		{"obstacle.width", c.Obstacle.Width},
		{"obstacle.columnHeight", c.Obstacle.ColumnHeight},
		{"obstacle.interspace", c.Obstacle.Interspace},
		{"obstacle.distance", c.Obstacle.Distance},
		{"obstacle.movingSpeed", c.Obstacle.MovingSpeed},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.maxDeltaTime", c.Physics.MaxDeltaTime},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%s must be > 0, got %.2f", p.name, p.value)
		}
	}

	if c.Physics.FlySpeed < 0 {
		return fmt.Errorf("physics.flySpeed must be >= 0, got %.2f", c.Physics.FlySpeed)
	}
	if c.Obstacle.Interspace <= c.Cube.Size {
		return fmt.Errorf("obstacle.interspace(%.1f) must be larger than cube.size(%.1f)",
			c.Obstacle.Interspace, c.Cube.Size)
	}
	if c.Obstacle.Interspace >= c.Field.Height {
		return fmt.Errorf("obstacle.interspace(%.1f) must be smaller than field.height(%.1f)",
			c.Obstacle.Interspace, c.Field.Height)
	}
	if c.Obstacle.GapRangeFactor < 0 || c.Obstacle.GapRangeFactor > 1 {
		return fmt.Errorf("obstacle.gapRangeFactor must be within [0, 1], got %.2f", c.Obstacle.GapRangeFactor)
	}
	if math.Abs(c.Cube.X) > c.Field.Width/2 {
		return fmt.Errorf("cube.x(%.1f) is outside the field", c.Cube.X)
	}

	if !sort.SliceIsSorted(c.Milestones, func(i, j int) bool {
		return c.Milestones[i].Score < c.Milestones[j].Score
	}) {
		return fmt.Errorf("milestones must be sorted by score")
	}
	for i := 1; i < len(c.Milestones); i++ {
		if c.Milestones[i].Score == c.Milestones[i-1].Score {
			return fmt.Errorf("duplicate milestone score %d", c.Milestones[i].Score)
		}
	}
	return nil
}

// PoolSize 障碍物池大小，保证障碍物始终铺满场地宽度
func (c *GameplayConfig) PoolSize() int {
	return int(math.Ceil(c.Field.Width/c.Obstacle.Distance)) + 1
}

// ScoringTimeInterval 障碍物移动一个间距所需的时间，作为计分冷却
func (c *GameplayConfig) ScoringTimeInterval() float64 {
	return c.Obstacle.Distance / c.Obstacle.MovingSpeed
}

// RecycleThresholdX 障碍物 X 小于此值时被回收到最右侧
func (c *GameplayConfig) RecycleThresholdX() float64 {
	return -c.Field.Width/2 - c.Obstacle.Width/2
}

// FloorY 方块中心能到达的最低位置
func (c *GameplayConfig) FloorY() float64 {
	return -c.Field.Height/2 + c.Cube.Size/2
}

// CeilingY 方块中心能到达的最高位置
func (c *GameplayConfig) CeilingY() float64 {
	return c.Field.Height/2 - c.Cube.Size/2
}

// GapCenterLimit 间隙中心随机范围的绝对值上限
func (c *GameplayConfig) GapCenterLimit() float64 {
	return c.Obstacle.GapRangeFactor * (c.Field.Height/2 - c.Obstacle.Interspace/2)
}

// MilestoneMessage 返回分数所在区间的里程碑提示
// 低于第一个里程碑时返回 false
func (c *GameplayConfig) MilestoneMessage(score int) (string, bool) {
	for i := len(c.Milestones) - 1; i >= 0; i-- {
		if score >= c.Milestones[i].Score {
			return c.Milestones[i].Message, true
		}
	}
	return "", false
}
