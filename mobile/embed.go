//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，构建前先复制配置：
//
//	go generate -tags mobile ./mobile
package mobile

import "embed"

//go:generate mkdir -p data
//go:generate cp ../data/gameplay.yaml data/gameplay.yaml

//go:embed data/gameplay.yaml
var dataFS embed.FS
