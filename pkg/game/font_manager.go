package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle 内置字体样式
type FontStyle int

const (
	// FontRegular Go Regular
	FontRegular FontStyle = iota
	// FontBold Go Bold
	FontBold
)

// FontManager 基于 Go 字体族的字体缓存
//
// 字体数据随 golang.org/x/image 编译进程序，不需要外部文件。
type FontManager struct {
	sources   map[FontStyle]*text.GoTextFaceSource
	faceCache map[string]*text.GoTextFace
}

// NewFontManager 创建字体管理器
func NewFontManager() *FontManager {
	return &FontManager{
		sources:   make(map[FontStyle]*text.GoTextFaceSource),
		faceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadFont 返回指定样式和大小的字体
//
// 同一样式、大小只创建一次。
func (fm *FontManager) LoadFont(style FontStyle, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%d:%.1f", style, size)
	if cached, ok := fm.faceCache[cacheKey]; ok {
		return cached, nil
	}

	source, err := fm.source(style)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fm.faceCache[cacheKey] = face
	return face, nil
}

func (fm *FontManager) source(style FontStyle) (*text.GoTextFaceSource, error) {
	if source, ok := fm.sources[style]; ok {
		return source, nil
	}

	var data []byte
	switch style {
	case FontRegular:
		data = goregular.TTF
	case FontBold:
		data = gobold.TTF
	default:
		return nil, fmt.Errorf("unknown font style %d", style)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for style %d: %w", style, err)
	}
	fm.sources[style] = source
	return source, nil
}
