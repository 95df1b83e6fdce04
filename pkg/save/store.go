// Package save 持久化设置与最高分
//
// 数据通过 gdata 写入平台相关的用户数据目录（桌面为 ~/.local/share/<app>，
// 移动端为应用沙盒，浏览器为 localStorage），内容为 YAML。
// gdata 不可用时所有管理器退化为仅内存模式。
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "flappycube"

// OpenStore 打开 gdata 存储
//
// 打开失败时返回 nil（降级模式）并记录警告，不会中断启动。
func OpenStore(appName string) *gdata.Manager {
	if appName == "" {
		appName = DefaultAppName
	}
	if err := ensureStorageDir(); err != nil {
		log.Printf("[SaveManager] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[SaveManager] Warning: gdata unavailable: %v (running without persistence)", err)
		return nil
	}
	return manager
}

// loadYAML 读取一个对象属性并反序列化
//
// 返回:
//   - bool: 数据是否存在
//   - error: 读取或反序列化失败
func loadYAML(manager *gdata.Manager, object, property string, out interface{}) (bool, error) {
	if manager == nil || !manager.ObjectPropExists(object, property) {
		return false, nil
	}
	data, err := manager.LoadObjectProp(object, property)
	if err != nil {
		return true, fmt.Errorf("failed to load %s/%s: %w", object, property, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("failed to unmarshal %s/%s: %w", object, property, err)
	}
	return true, nil
}

// saveYAML 序列化并写入一个对象属性；manager 为 nil 时什么也不做
func saveYAML(manager *gdata.Manager, object, property string, in interface{}) error {
	if manager == nil {
		return nil
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", object, property, err)
	}
	if err := manager.SaveObjectProp(object, property, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", object, property, err)
	}
	return nil
}
