package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// TestDefaultGameplayConfig 验证默认值
func TestDefaultGameplayConfig(t *testing.T) {
	cfg := DefaultGameplayConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Obstacle.Interspace != 140 {
		t.Errorf("expected interspace = 140, got %f", cfg.Obstacle.Interspace)
	}
	if cfg.PoolSize() != 5 {
		t.Errorf("expected pool size = 5, got %d", cfg.PoolSize())
	}
	if cfg.ScoringTimeInterval() != 3.75 {
		t.Errorf("expected scoring interval = 3.75, got %f", cfg.ScoringTimeInterval())
	}
	if cfg.RecycleThresholdX() != -550 {
		t.Errorf("expected recycle threshold = -550, got %f", cfg.RecycleThresholdX())
	}
	if cfg.FloorY() != -230 || cfg.CeilingY() != 230 {
		t.Errorf("expected floor/ceiling = -230/230, got %f/%f", cfg.FloorY(), cfg.CeilingY())
	}
	if got := cfg.GapCenterLimit(); got < 161.99 || got > 162.01 {
		t.Errorf("expected gap center limit = 162, got %f", got)
	}
}

func TestMilestoneMessage(t *testing.T) {
	cfg := DefaultGameplayConfig()

	tests := []struct {
		score   int
		want    string
		wantHit bool
	}{
		{0, "", false},
		{9, "", false},
		{10, "Not Bad!", true},
		{19, "Not Bad!", true},
		{20, "Very good!", true},
		{49, "Very good!", true},
		{50, "Excellent!", true},
		{99, "Excellent!", true},
		{100, "You are the hero!", true},
		{1000, "You are the hero!", true},
	}

	for _, tt := range tests {
		got, ok := cfg.MilestoneMessage(tt.score)
		if ok != tt.wantHit || got != tt.want {
			t.Errorf("MilestoneMessage(%d) = (%q, %v), want (%q, %v)", tt.score, got, ok, tt.want, tt.wantHit)
		}
	}
}

func TestParseGameplayConfig(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		format      ConfigFormat
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameplayConfig)
	}{
		{
			name: "partial yaml keeps defaults",
			content: `
obstacle:
  movingSpeed: 120
physics:
  gravity: 900
`,
			format: FormatYAML,
			validate: func(t *testing.T, cfg *GameplayConfig) {
				if cfg.Obstacle.MovingSpeed != 120 {
					t.Errorf("expected movingSpeed = 120, got %f", cfg.Obstacle.MovingSpeed)
				}
				if cfg.Physics.Gravity != 900 {
					t.Errorf("expected gravity = 900, got %f", cfg.Physics.Gravity)
				}
				// 未配置字段保持默认
				if cfg.Obstacle.Distance != 300 {
					t.Errorf("expected distance = 300, got %f", cfg.Obstacle.Distance)
				}
				if cfg.ScoringTimeInterval() != 2.5 {
					t.Errorf("expected scoring interval = 2.5, got %f", cfg.ScoringTimeInterval())
				}
				if len(cfg.Milestones) != 4 {
					t.Errorf("expected 4 default milestones, got %d", len(cfg.Milestones))
				}
			},
		},
		{
			name: "toml overrides",
			content: `
[field]
width = 1200

[messages]
gameOver = "Crashed"

[[milestones]]
score = 5
message = "Warming up"
`,
			format: FormatTOML,
			validate: func(t *testing.T, cfg *GameplayConfig) {
				if cfg.Field.Width != 1200 {
					t.Errorf("expected field width = 1200, got %f", cfg.Field.Width)
				}
				if cfg.PoolSize() != 5 {
					t.Errorf("expected pool size = 5, got %d", cfg.PoolSize())
				}
				if cfg.Messages.GameOver != "Crashed" {
					t.Errorf("expected gameOver message = Crashed, got %q", cfg.Messages.GameOver)
				}
				if len(cfg.Milestones) != 1 || cfg.Milestones[0].Score != 5 {
					t.Errorf("expected a single milestone at 5, got %+v", cfg.Milestones)
				}
			},
		},
		{
			name: "interspace smaller than cube",
			content: `
obstacle:
  interspace: 30
`,
			format:      FormatYAML,
			wantErr:     true,
			errContains: "interspace",
		},
		{
			name: "unsorted milestones",
			content: `
milestones:
  - score: 20
    message: "b"
  - score: 10
    message: "a"
`,
			format:      FormatYAML,
			wantErr:     true,
			errContains: "sorted",
		},
		{
			name: "negative speed",
			content: `
obstacle:
  movingSpeed: -1
`,
			format:      FormatYAML,
			wantErr:     true,
			errContains: "movingSpeed",
		},
		{
			name:        "broken yaml",
			content:     "field: [",
			format:      FormatYAML,
			wantErr:     true,
			errContains: "yaml",
		},
		{
			name:        "unknown format",
			content:     "",
			format:      ConfigFormat("ini"),
			wantErr:     true,
			errContains: "unsupported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameplayConfig([]byte(tt.content), tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameplayConfigFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "gameplay.yaml")
	if err := os.WriteFile(yamlPath, []byte("cube:\n  size: 30\n"), 0644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}
	cfg, err := LoadGameplayConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadGameplayConfig(yaml) error: %v", err)
	}
	if cfg.Cube.Size != 30 {
		t.Errorf("expected cube size = 30, got %f", cfg.Cube.Size)
	}

	tomlPath := filepath.Join(dir, "gameplay.toml")
	if err := os.WriteFile(tomlPath, []byte("[cube]\nsize = 50\n"), 0644); err != nil {
		t.Fatalf("failed to write toml: %v", err)
	}
	cfg, err = LoadGameplayConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadGameplayConfig(toml) error: %v", err)
	}
	if cfg.Cube.Size != 50 {
		t.Errorf("expected cube size = 50, got %f", cfg.Cube.Size)
	}

	if _, err := LoadGameplayConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestShippedGameplayConfig 确保仓库内的默认配置文件可以通过校验
func TestShippedGameplayConfig(t *testing.T) {
	cfg, err := LoadGameplayConfig(filepath.Join("..", "..", "data", "gameplay.yaml"))
	if err != nil {
		t.Fatalf("data/gameplay.yaml should load: %v", err)
	}
	def := DefaultGameplayConfig()
	if cfg.PoolSize() != def.PoolSize() {
		t.Errorf("shipped pool size %d differs from default %d", cfg.PoolSize(), def.PoolSize())
	}
	if cfg.Messages != def.Messages {
		t.Errorf("shipped messages %+v differ from defaults %+v", cfg.Messages, def.Messages)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]ConfigFormat{
		"a.yaml":     FormatYAML,
		"a.yml":      FormatYAML,
		"a.TOML":     FormatTOML,
		"dir/b.toml": FormatTOML,
		"noext":      FormatYAML,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

// TestEncodeGameplayConfig YAML 与 TOML 互转后配置不变
func TestEncodeGameplayConfig(t *testing.T) {
	cfg := DefaultGameplayConfig()
	cfg.Obstacle.MovingSpeed = 120
	cfg.Milestones = append(cfg.Milestones, MilestoneRule{Score: 200, Message: "Legend"})

	for _, format := range []ConfigFormat{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := EncodeGameplayConfig(cfg, format)
			if err != nil {
				t.Fatalf("EncodeGameplayConfig() error: %v", err)
			}
			got, err := ParseGameplayConfig(data, format)
			if err != nil {
				t.Fatalf("ParseGameplayConfig() error: %v\n%s", err, data)
			}
			if !reflect.DeepEqual(got, cfg) {
				t.Errorf("config changed after %s round trip:\n%s", format, data)
			}
		})
	}

	if _, err := EncodeGameplayConfig(cfg, ConfigFormat("json")); err == nil {
		t.Error("expected error for unsupported format")
	}
}
