//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.flappycube -o build/android/flappycube.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/FlappyCube.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/flappycube/pkg/app"
	"github.com/decker502/flappycube/pkg/embedded"
)

var gameApp *app.App

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	var err error
	gameApp, err = app.NewApp(app.Config{
		Verbose: true,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}

// SaveOnPause 由宿主在应用进入后台时调用，保存最高分与设置
func SaveOnPause() {
	if gameApp != nil {
		gameApp.SaveOnExit()
	}
}
