// validate_config 校验玩法配置文件并打印派生参数
//
// 用法:
//
//	go run ./cmd/validate_config [-convert toml|yaml] [配置文件...]
//
// 不带参数时校验 data/gameplay.yaml。-convert 把第一个配置文件转换为另一种格式输出到标准输出。
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/decker502/flappycube/pkg/config"
)

func main() {
	convert := flag.String("convert", "", "转换输出格式 (yaml 或 toml)，为空时只校验")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"data/gameplay.yaml"}
	}

	if *convert != "" {
		if err := convertConfig(os.Stdout, paths[0], config.ConfigFormat(*convert)); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		return
	}

	failed := 0
	for _, path := range paths {
		if !validateConfig(os.Stdout, path) {
			failed++
		}
	}
	if failed > 0 {
		fmt.Printf("❌ %d 个配置文件无效\n", failed)
		os.Exit(1)
	}
}

// validateConfig 加载并校验一个配置文件，打印派生参数
func validateConfig(w io.Writer, path string) bool {
	cfg, err := config.LoadGameplayConfig(path)
	if err != nil {
		fmt.Fprintf(w, "❌ %s: %v\n", path, err)
		return false
	}

	fmt.Fprintf(w, "✅ %s 格式正确 (%s)\n", path, config.FormatFromPath(path))
	printDerived(w, cfg)
	return true
}

func printDerived(w io.Writer, cfg *config.GameplayConfig) {
	fmt.Fprintf(w, "   场地: %.0f x %.0f\n", cfg.Field.Width, cfg.Field.Height)
	fmt.Fprintf(w, "   障碍物数量: %d (间距 %.0f)\n", cfg.PoolSize(), cfg.Obstacle.Distance)
	fmt.Fprintf(w, "   回收阈值 X: %.1f\n", cfg.RecycleThresholdX())
	fmt.Fprintf(w, "   间隙中心范围: ±%.1f\n", cfg.GapCenterLimit())
	fmt.Fprintf(w, "   地面/天花板 Y: %.1f / %.1f\n", cfg.FloorY(), cfg.CeilingY())
	fmt.Fprintf(w, "   计分冷却: %.3fs\n", cfg.ScoringTimeInterval())
	for _, m := range cfg.Milestones {
		fmt.Fprintf(w, "   里程碑 %d: %q\n", m.Score, m.Message)
	}
}

// convertConfig 读取配置并以目标格式写出
func convertConfig(w io.Writer, path string, format config.ConfigFormat) error {
	cfg, err := config.LoadGameplayConfig(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	data, err := config.EncodeGameplayConfig(cfg, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
